package config

import (
	"os"
)

type Config struct {
	Port           string
	MongoDBURI     string
	WhatsAppNumber string
	Environment    string
	LogLevel       string
}

func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:           getEnvWithDefault("PORT", "5000"),
		MongoDBURI:     getEnvWithDefault("MONGODB_URI", "mongodb://localhost:27017/aradhya-travels"),
		WhatsAppNumber: getEnvWithDefault("WHATSAPP_NUMBER", "7675847434"),
		Environment:    getEnvWithDefault("ENVIRONMENT", "development"),
		LogLevel:       getEnvWithDefault("LOG_LEVEL", "info"),
	}

	return cfg, nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}
