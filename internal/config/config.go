package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultAppName        = "LogiSmart"
	defaultAppEnv         = "development"
	defaultPort           = "8080"
	defaultLogLevel       = "info"
	defaultMerchantName   = "LogiSmart Logistics"
	defaultMerchantIcon   = "https://ui-avatars.com/api/?name=L+S&background=0D8ABC&color=fff"
	defaultShutdownDelay  = 10 * time.Second
	defaultIdempotencyTTL = 24 * time.Hour
	defaultGatewayDelay   = 2 * time.Second
	defaultKYCDelay       = 3 * time.Second
)

// Config captures application runtime configuration loaded from environment variables.
type Config struct {
	AppName         string
	AppEnv          string
	Port            string
	LogLevel        string
	DatabaseURL     string
	RedisURL        string
	MerchantName    string
	MerchantIconURL string
	ShutdownPeriod  time.Duration
	IdempotencyTTL  time.Duration
	GatewayDelay    time.Duration
	KYCDelay        time.Duration
}

// Load reads configuration values from the environment and populates a
// Config instance. DATABASE_URL and REDIS_URL are both optional: when
// neither is set the service keeps profiles in memory, which is only
// allowed in development environments.
func Load() (Config, error) {
	cfg := Config{
		AppName:         getEnv("APP_NAME", defaultAppName),
		AppEnv:          getEnv("APP_ENV", defaultAppEnv),
		Port:            getEnv("PORT", defaultPort),
		LogLevel:        strings.ToLower(getEnv("LOG_LEVEL", defaultLogLevel)),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		RedisURL:        os.Getenv("REDIS_URL"),
		MerchantName:    getEnv("MERCHANT_NAME", defaultMerchantName),
		MerchantIconURL: getEnv("MERCHANT_ICON_URL", defaultMerchantIcon),
		ShutdownPeriod:  defaultShutdownDelay,
		IdempotencyTTL:  defaultIdempotencyTTL,
		GatewayDelay:    defaultGatewayDelay,
		KYCDelay:        defaultKYCDelay,
	}

	var err error
	if cfg.ShutdownPeriod, err = durationEnv("SHUTDOWN_TIMEOUT", cfg.ShutdownPeriod); err != nil {
		return Config{}, err
	}
	if cfg.IdempotencyTTL, err = durationEnv("IDEMPOTENCY_TTL", cfg.IdempotencyTTL); err != nil {
		return Config{}, err
	}
	if cfg.GatewayDelay, err = durationEnv("GATEWAY_DELAY", cfg.GatewayDelay); err != nil {
		return Config{}, err
	}
	if cfg.KYCDelay, err = durationEnv("KYC_DELAY", cfg.KYCDelay); err != nil {
		return Config{}, err
	}

	if !isDev(cfg.AppEnv) && cfg.DatabaseURL == "" && cfg.RedisURL == "" {
		return Config{}, fmt.Errorf("DATABASE_URL or REDIS_URL must be set when APP_ENV=%s", cfg.AppEnv)
	}

	return cfg, nil
}

// Address returns the listen address in the format Fiber expects.
func (c Config) Address() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return fmt.Sprintf(":%s", c.Port)
}

// IsDev reports whether the configured environment is a development one.
func (c Config) IsDev() bool {
	return isDev(c.AppEnv)
}

func isDev(env string) bool {
	switch strings.ToLower(env) {
	case "dev", "development", "local":
		return true
	default:
		return false
	}
}

// durationEnv reads NAME_SECONDS as an integer number of seconds, then
// falls back to NAME as a Go duration string.
func durationEnv(name string, fallback time.Duration) (time.Duration, error) {
	if v := os.Getenv(name + "_SECONDS"); v != "" {
		seconds, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("invalid %s_SECONDS: %w", name, err)
		}
		return time.Duration(seconds) * time.Second, nil
	}
	if v := os.Getenv(name); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %w", name, err)
		}
		return d, nil
	}
	return fallback, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
