package config

import (
	"log/slog"
	"time"
)

type LogLeveler string

func (l LogLeveler) Level() slog.Level {
	var level slog.Level

	_ = level.UnmarshalText([]byte(l))

	return level
}

// Config holds the server configuration.
type Config struct {
	LogLevel  LogLeveler `mapstructure:"LOG_LEVEL"`
	HTTP      HTTP       `mapstructure:",squash"`
	Itinerary Itinerary  `mapstructure:",squash"`
	Providers Provider   `mapstructure:",squash"`
	Redis     Redis      `mapstructure:",squash"`
}

type HTTP struct {
	Port    int           `mapstructure:"HTTP_PORT"`
	Timeout time.Duration `mapstructure:"HTTP_TIMEOUT"`
}

// Itinerary tunes the multi-leg search core.
type Itinerary struct {
	MinConnectionMinutes int    `mapstructure:"ITINERARY_MIN_CONNECTION_MINUTES"`
	MaxPathLength        int    `mapstructure:"ITINERARY_MAX_PATH_LENGTH"`
	MaxCombinations      int    `mapstructure:"ITINERARY_MAX_COMBINATIONS"`
	DisplayTimezone      string `mapstructure:"ITINERARY_DISPLAY_TIMEZONE"`
}

type Redis struct {
	Addr     string        `mapstructure:"REDIS_ADDR"`
	Password string        `mapstructure:"REDIS_PASSWORD"`
	DB       int           `mapstructure:"REDIS_DB"`
	Timeout  time.Duration `mapstructure:"REDIS_TIMEOUT"`
}

// Provider holds the provider configuration. url will route to mock provider
type LionAirProvider struct {
	SearchAPIURL string        `mapstructure:"LION_AIR_PROVIDER_SEARCH_API_URL"`
	Timeout      time.Duration `mapstructure:"LION_AIR_PROVIDER_TIMEOUT"`
	MaxRetries   int           `mapstructure:"LION_AIR_PROVIDER_MAX_RETRIES"`
	RateLimitRPS int           `mapstructure:"LION_AIR_PROVIDER_RATE_LIMIT"`
}

type BatikAirProvider struct {
	SearchAPIURL string        `mapstructure:"BATIK_AIR_PROVIDER_SEARCH_API_URL"`
	Timeout      time.Duration `mapstructure:"BATIK_AIR_PROVIDER_TIMEOUT"`
	MaxRetries   int           `mapstructure:"BATIK_AIR_PROVIDER_MAX_RETRIES"`
	RateLimitRPS int           `mapstructure:"BATIK_AIR_PROVIDER_RATE_LIMIT"`
}

type AirAsiaProvider struct {
	SearchAPIURL string        `mapstructure:"AIRASIA_PROVIDER_SEARCH_API_URL"`
	Timeout      time.Duration `mapstructure:"AIRASIA_PROVIDER_TIMEOUT"`
	MaxRetries   int           `mapstructure:"AIRASIA_PROVIDER_MAX_RETRIES"`
	RateLimitRPS int           `mapstructure:"AIRASIA_PROVIDER_RATE_LIMIT"`
}

type GarudaProvider struct {
	SearchAPIURL string        `mapstructure:"GARUDA_PROVIDER_SEARCH_API_URL"`
	Timeout      time.Duration `mapstructure:"GARUDA_PROVIDER_TIMEOUT"`
	MaxRetries   int           `mapstructure:"GARUDA_PROVIDER_MAX_RETRIES"`
	RateLimitRPS int           `mapstructure:"GARUDA_PROVIDER_RATE_LIMIT"`
}

type Provider struct {
	LionAirProvider  LionAirProvider  `mapstructure:",squash"`
	BatikAirProvider BatikAirProvider `mapstructure:",squash"`
	AirAsiaProvider  AirAsiaProvider  `mapstructure:",squash"`
	GarudaProvider   GarudaProvider   `mapstructure:",squash"`
	LockTimeout      time.Duration    `mapstructure:"PROVIDER_LOCK_TIMEOUT"`
	CacheExpiration  time.Duration    `mapstructure:"PROVIDER_CACHE_EXPIRATION"`
}
