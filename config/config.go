package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	Env      string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// Durable slot holding the serialized current-user session.
	SessionFile string `mapstructure:"SESSION_FILE"`

	// Artificial latency applied to sign-in and registration, emulating a
	// backend round trip.
	AuthLatencyMS int `mapstructure:"AUTH_LATENCY_MS"`
}

var AppConfig Config

// LoadConfig initializes Viper to load config values from env, file, or defaults.
func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("SESSION_FILE", ".marhaba/session.json")
	viper.SetDefault("AUTH_LATENCY_MS", 1000)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

// AuthLatency returns the configured artificial latency as a duration.
func AuthLatency() time.Duration {
	return time.Duration(AppConfig.AuthLatencyMS) * time.Millisecond
}

// GetEnv returns the application environment.
func GetEnv() string {
	return AppConfig.Env
}

// IsProduction checks if the environment is production.
func IsProduction() bool {
	return GetEnv() == "production"
}
