// File: espuma/utils/constants.go
package utils

import "time"

// CartCachePrefix is the prefix used for Redis cart keys.
const CartCachePrefix = "cart:"

// CartCacheTTL is the time-to-live for a persisted cart. Carts are refreshed
// on every mutation, so this only bounds abandoned sessions.
const CartCacheTTL = 7 * 24 * time.Hour

// SessionTokenTTL is the lifetime of a guest session token.
const SessionTokenTTL = 24 * time.Hour
