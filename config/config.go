package config

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

const DefaultMaxConcurrency = 5

var ErrInvalidMaxConcurrency = errors.New("MAX_CONCURRENCY must be a positive integer")

type Config struct {
	MaxConcurrency int    `mapstructure:"-"`
	LogLevel       string `mapstructure:"LOG_LEVEL"`
	ServerPort     string `mapstructure:"SERVER_PORT"`
	PayloadPath    string `mapstructure:"PAYLOAD_PATH"`
}

func LoadEnvs() (*Config, error) {
	v := viper.New()
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			log.Printf("fail to load .env: %v", err)
		}
	}

	v.AutomaticEnv()

	v.SetDefault("MAX_CONCURRENCY", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("SERVER_PORT", "8083")
	v.SetDefault("PAYLOAD_PATH", "")

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	size, err := ParseMaxConcurrency(v.GetString("MAX_CONCURRENCY"))
	if err != nil {
		return nil, err
	}
	config.MaxConcurrency = size

	return &config, nil
}

// ParseMaxConcurrency resolves the group size override. An empty value means
// the default; anything else has to be a positive integer.
func ParseMaxConcurrency(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultMaxConcurrency, nil
	}

	size, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidMaxConcurrency, raw)
	}
	if size <= 0 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidMaxConcurrency, size)
	}

	return size, nil
}
