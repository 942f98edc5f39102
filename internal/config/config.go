package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Config holds process-wide settings, loaded from the environment or an
// optional .env file in the given path.
type Config struct {
	DatabaseURL  string `mapstructure:"DATABASE_URL"`
	ServerPort   string `mapstructure:"SERVER_PORT"`
	ClientOrigin string `mapstructure:"CLIENT_ORIGIN"`
}

func LoadConfig(path string) (Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("CLIENT_ORIGIN", "http://localhost:5173")

	// Environment variables take precedence over the file.
	v.AutomaticEnv()
	for _, key := range []string{"DATABASE_URL", "SERVER_PORT", "CLIENT_ORIGIN"} {
		if err := v.BindEnv(key); err != nil {
			return Config{}, fmt.Errorf("config.LoadConfig.BindEnv: %w", err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		// A missing .env file is fine; everything can come from the environment.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("config.LoadConfig.ReadInConfig: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config.LoadConfig.Unmarshal: %w", err)
	}

	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("config: DATABASE_URL is required")
	}
	return cfg, nil
}
