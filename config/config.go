package config

import (
	"fmt"
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// Mapstructure tags are used to map environment variables and config file keys.
type Config struct {
	// Server Configuration
	ServerAddress string `mapstructure:"SERVER_ADDRESS"` // e.g., ":3001"

	// Inference Backend Configuration
	OllamaBaseURL string  `mapstructure:"OLLAMA_BASE_URL"` // e.g., "http://localhost:11434"
	ModelID       string  `mapstructure:"MODEL_ID"`        // e.g., "codellama"
	Temperature   float64 `mapstructure:"TEMPERATURE"`     // sampling temperature, kept low for code

	// Optional: use OpenAI instead of a local Ollama server when set.
	OpenAIKey string `mapstructure:"OPENAI_API_KEY"`
}

// LoadConfig reads configuration from file and environment variables.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)     // Path to look for the config file in
	viper.SetConfigName("config") // Name of config file (without extension)
	viper.SetConfigType("yaml")

	viper.SetDefault("SERVER_ADDRESS", ":3001")
	viper.SetDefault("OLLAMA_BASE_URL", "http://localhost:11434")
	viper.SetDefault("MODEL_ID", "codellama")
	viper.SetDefault("TEMPERATURE", 0.2)
	// Registers the key so AutomaticEnv picks it up during Unmarshal.
	viper.SetDefault("OPENAI_API_KEY", "")

	viper.AutomaticEnv() // Read environment variables that match keys

	// Attempt to read the config file
	err = viper.ReadInConfig()
	if err != nil {
		// If config file not found, log it but continue if env vars might be set
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Config file ('config.yaml') not found in specified path, relying solely on environment variables.")
		} else {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		log.Printf("Using configuration file: %s", viper.ConfigFileUsed())
	}

	// Unmarshal the configuration into the Config struct
	err = viper.Unmarshal(&config)
	if err != nil {
		return Config{}, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if config.ModelID == "" {
		return Config{}, fmt.Errorf("MODEL_ID must not be empty")
	}

	return
}
