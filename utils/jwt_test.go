package utils

import (
	"testing"
	"time"

	"espuma/config"

	"github.com/stretchr/testify/require"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	token, err := GenerateSessionToken("sess-abc", time.Hour)
	require.NoError(t, err)

	sessionID, err := ExtractSessionID(token)
	require.NoError(t, err)
	require.Equal(t, "sess-abc", sessionID)
}

func TestExpiredSessionTokenRejected(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	token, err := GenerateSessionToken("sess-abc", -time.Minute)
	require.NoError(t, err)

	_, err = ExtractSessionID(token)
	require.Error(t, err)
}

func TestTamperedSessionTokenRejected(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"
	token, err := GenerateSessionToken("sess-abc", time.Hour)
	require.NoError(t, err)

	config.AppConfig.JWTSecret = "other-secret"
	_, err = ExtractSessionID(token)
	require.Error(t, err)
}
