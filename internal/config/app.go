package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type HTTPServer struct {
	Port string `mapstructure:"port"`
}

type HTTPClient struct {
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}

type Rates struct {
	SourceURL           string `mapstructure:"source_url"`
	CacheTimeoutSeconds int    `mapstructure:"cache_timeout_seconds"`
	CacheMaxItems       int64  `mapstructure:"cache_max_items"`
}

type Logging struct {
	Level string `mapstructure:"level"`
}

type AppConfig struct {
	HTTPServer HTTPServer `mapstructure:"http_server"`
	HTTPClient HTTPClient `mapstructure:"http_client"`
	Rates      Rates      `mapstructure:"rates"`
	Logging    Logging    `mapstructure:"logging"`
}

func Init() (*AppConfig, error) {
	var cfg AppConfig

	// .env is optional; env vars may come from the environment directly.
	_ = godotenv.Load()

	viper.SetConfigFile("config.yaml")
	viper.SetConfigType("yaml")
	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	viper.SetDefault("http_server.port", "8080")
	viper.SetDefault("http_client.timeout_seconds", 10)
	viper.SetDefault("rates.source_url", "https://www.cbr-xml-daily.ru/daily_json.js")
	viper.SetDefault("rates.cache_timeout_seconds", 300)
	viper.SetDefault("rates.cache_max_items", 64)
	viper.SetDefault("logging.level", "info")

	_ = viper.BindEnv("http_server.port", "HTTP_SERVER_PORT")
	_ = viper.BindEnv("http_client.timeout_seconds", "HTTP_CLIENT_TIMEOUT_SECONDS")
	_ = viper.BindEnv("rates.source_url", "RATES_SOURCE_URL")
	_ = viper.BindEnv("rates.cache_timeout_seconds", "RATES_CACHE_TIMEOUT_SECONDS")
	_ = viper.BindEnv("logging.level", "LOGGING_LEVEL")

	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	return &cfg, nil
}
