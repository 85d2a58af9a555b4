package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	Env               string `mapstructure:"ENV"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCartDB   int    `mapstructure:"REDIS_CART_DB"`
	RedisSweepDB  int    `mapstructure:"REDIS_SWEEP_DB"`

	// Business-day schedule. Times are minutes from midnight; the slot grid is
	// generated at SlotIntervalMin granularity between open and close.
	OpenTime        int `mapstructure:"OPEN_TIME"`
	CloseTime       int `mapstructure:"CLOSE_TIME"`
	LunchStart      int `mapstructure:"LUNCH_START"`
	LunchEnd        int `mapstructure:"LUNCH_END"`
	SlotIntervalMin int `mapstructure:"SLOT_INTERVAL_MIN"`

	// Reservation hold window in minutes.
	HoldMinutes int `mapstructure:"HOLD_MINUTES"`

	// VAT rate baked into catalog prices (prices are VAT-inclusive).
	VATRate float64 `mapstructure:"VAT_RATE"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("JWT_SECRET", "espuma-dev-secret")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CART_DB", 0)
	viper.SetDefault("REDIS_SWEEP_DB", 1)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("OPEN_TIME", 8*60)
	viper.SetDefault("CLOSE_TIME", 18*60)
	viper.SetDefault("LUNCH_START", 12*60)
	viper.SetDefault("LUNCH_END", 13*60)
	viper.SetDefault("SLOT_INTERVAL_MIN", 30)
	viper.SetDefault("HOLD_MINUTES", 15)
	viper.SetDefault("VAT_RATE", 0.12)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
