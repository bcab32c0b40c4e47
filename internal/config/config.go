package config

import (
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	MongoDB  MongoDBConfig
	JWT      JWTConfig
	GenAI    GenAIConfig
	Google   GoogleConfig
	Delivery DeliveryConfig
	Store    StoreConfig
	LogLevel string
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port         string
	AllowedHosts []string
}

// MongoDBConfig holds MongoDB-specific configuration
type MongoDBConfig struct {
	URI      string
	Database string
}

// JWTConfig holds JWT-specific configuration
type JWTConfig struct {
	Secret    string
	ExpiresIn int // seconds
}

// GenAIConfig holds text-generation service configuration
type GenAIConfig struct {
	BaseURL string
	APIKey  string
	MockAPI bool
}

// GoogleConfig holds Google sign-in configuration
type GoogleConfig struct {
	ClientID   string
	MockVerify bool
}

// DeliveryConfig holds the success-rate band used by the delivery simulator.
// The same band is applied on both the create and update paths.
type DeliveryConfig struct {
	MinSuccessRate float64
	MaxSuccessRate float64
}

// StoreConfig selects the repository implementation
type StoreConfig struct {
	UseMemory bool
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		// A missing config file is fine, environment variables still apply
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// setDefaults sets default values for configuration
func setDefaults() {
	viper.SetDefault("Server.Port", "4000")
	viper.SetDefault("Server.AllowedHosts", []string{"localhost:3000"})
	viper.SetDefault("MongoDB.URI", "mongodb://localhost:27017")
	viper.SetDefault("MongoDB.Database", "engage-crm")
	viper.SetDefault("JWT.ExpiresIn", 24*60*60) // 24 hours
	viper.SetDefault("GenAI.MockAPI", true)
	viper.SetDefault("Google.MockVerify", false)
	viper.SetDefault("Delivery.MinSuccessRate", 0.75)
	viper.SetDefault("Delivery.MaxSuccessRate", 0.95)
	viper.SetDefault("Store.UseMemory", false)
	viper.SetDefault("LogLevel", "info")
}
