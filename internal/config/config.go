package config

import (
	"github.com/spf13/viper"
)

// Config holds all runtime configuration, read from configs/app.env with
// environment-variable overrides.
type Config struct {
	ServerAddress  string `mapstructure:"SERVER_ADDRESS"`
	GinMode        string `mapstructure:"GIN_MODE"`
	LogLevel       string `mapstructure:"LOG_LEVEL"`
	MaxUploadBytes int64  `mapstructure:"MAX_UPLOAD_BYTES"`
	SeedFile       string `mapstructure:"SEED_FILE"`
}

// LoadConfig reads configuration from the app.env file in the given directory.
// Environment variables take precedence over file values.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")

	viper.SetDefault("SERVER_ADDRESS", "0.0.0.0:8080")
	viper.SetDefault("GIN_MODE", "release")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_UPLOAD_BYTES", int64(50*1024*1024))
	viper.SetDefault("SEED_FILE", "")

	viper.AutomaticEnv()

	if err = viper.ReadInConfig(); err != nil {
		return
	}

	err = viper.Unmarshal(&config)
	return
}
