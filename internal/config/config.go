package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Переменные окружения, перекрывающие значения из файла
const (
	envHTTPPort          = "HTTP_PORT"
	envLogLevel          = "LOG_LEVEL"
	envPricingServiceURL = "PRICING_SERVICE_URL"
	envBookingServiceURL = "BOOKING_SERVICE_URL"
)

// ErrInvalidConfig возвращается при некорректных значениях конфигурации
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Server         ServerConfig         `toml:"server"`
	Logs           LogsConfig           `toml:"logs"`
	Metrics        MetricsConfig        `toml:"metrics"`
	PricingService PricingServiceConfig `toml:"pricing_service"`
	BookingService BookingServiceConfig `toml:"booking_service"`
	Form           FormConfig           `toml:"form"`
	CORS           CORSConfig           `toml:"cors"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// PricingServiceConfig настройки клиента PricingService
type PricingServiceConfig struct {
	URL       string  `toml:"url"`
	Timeout   int     `toml:"timeout"`    // секунды
	RateLimit float64 `toml:"rate_limit"` // запросов в секунду, 0 - без ограничения
	Burst     int     `toml:"burst"`
}

// BookingServiceConfig настройки клиента BookingService
type BookingServiceConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
}

// FormConfig настройки сессий формы бронирования
type FormConfig struct {
	QuoteDebounceMs        int  `toml:"quote_debounce_ms"`
	KeepStaleQuote         bool `toml:"keep_stale_quote"`
	SessionTTLMinutes      int  `toml:"session_ttl_minutes"`
	CleanupIntervalSeconds int  `toml:"cleanup_interval_seconds"`
}

// CORSConfig настройки CORS для фронтенда формы
type CORSConfig struct {
	AllowedOrigins []string `toml:"allowed_origins"`
}

// Default возвращает конфигурацию по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    30,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "court-booking-form",
		},
		PricingService: PricingServiceConfig{
			URL:       "http://localhost:5000",
			Timeout:   5,
			RateLimit: 20,
			Burst:     5,
		},
		BookingService: BookingServiceConfig{
			URL:     "http://localhost:5000",
			Timeout: 10,
		},
		Form: FormConfig{
			QuoteDebounceMs:        250,
			KeepStaleQuote:         false,
			SessionTTLMinutes:      30,
			CleanupIntervalSeconds: 60,
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{"*"},
		},
	}
}

// Load загружает конфигурацию из TOML файла
// Значения по умолчанию перекрываются файлом, файл - переменными окружения (и .env, если он есть)
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	// .env необязателен
	_ = godotenv.Load()

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(envHTTPPort); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s must be a number: %v", ErrInvalidConfig, envHTTPPort, err)
		}
		c.Server.HTTPPort = port
	}
	if v := os.Getenv(envLogLevel); v != "" {
		c.Logs.Level = v
	}
	if v := os.Getenv(envPricingServiceURL); v != "" {
		c.PricingService.URL = v
	}
	if v := os.Getenv(envBookingServiceURL); v != "" {
		c.BookingService.URL = v
	}
	return nil
}

// Validate проверяет корректность конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port out of range: %d", ErrInvalidConfig, c.Server.HTTPPort)
	}
	if c.PricingService.URL == "" {
		return fmt.Errorf("%w: pricing_service.url is required", ErrInvalidConfig)
	}
	if c.BookingService.URL == "" {
		return fmt.Errorf("%w: booking_service.url is required", ErrInvalidConfig)
	}
	if c.PricingService.Timeout <= 0 || c.BookingService.Timeout <= 0 {
		return fmt.Errorf("%w: service timeouts must be positive", ErrInvalidConfig)
	}
	if c.PricingService.RateLimit < 0 {
		return fmt.Errorf("%w: pricing_service.rate_limit must not be negative", ErrInvalidConfig)
	}
	if c.PricingService.RateLimit > 0 && c.PricingService.Burst <= 0 {
		return fmt.Errorf("%w: pricing_service.burst must be positive when rate_limit is set", ErrInvalidConfig)
	}
	if c.Form.QuoteDebounceMs < 0 {
		return fmt.Errorf("%w: form.quote_debounce_ms must not be negative", ErrInvalidConfig)
	}
	if c.Form.SessionTTLMinutes <= 0 {
		return fmt.Errorf("%w: form.session_ttl_minutes must be positive", ErrInvalidConfig)
	}
	if c.Form.CleanupIntervalSeconds <= 0 {
		return fmt.Errorf("%w: form.cleanup_interval_seconds must be positive", ErrInvalidConfig)
	}
	if c.Metrics.Enabled && c.Metrics.Path == "" {
		return fmt.Errorf("%w: metrics.path is required when metrics are enabled", ErrInvalidConfig)
	}
	return nil
}
