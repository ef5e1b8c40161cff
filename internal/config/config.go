package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// It contains settings for the environment, HTTP server, request limits,
// optional authentication, the cracking engine and graceful shutdown.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`
	// LogLevel overrides the environment's default log level when set (debug, info, warn, error)
	LogLevel string `env:"LOG_LEVEL" env-default:"" yaml:"logLevel"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":5000" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"5m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request.
		// Bcrypt dictionary scans are slow, so this is generous by default.
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"4m" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MaxBodyBytes limits the size of request bodies
		MaxBodyBytes int64 `env:"HTTP_MAX_BODY_BYTES" env-default:"10485760" yaml:"maxBodyBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
		// EnablePprof mounts net/http/pprof handlers under /debug/pprof/
		EnablePprof bool `env:"HTTP_ENABLE_PPROF" env-default:"false" yaml:"enablePprof"`
	} `yaml:"http"`

	// CORS controls cross-origin access for the web client
	CORS struct {
		// AllowedOrigins lists origins allowed to call the API; "*" allows any origin
		AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" env-default:"http://localhost:3000" env-separator:"," yaml:"allowedOrigins"` //nolint: lll
	} `yaml:"cors"`

	// RateLimit throttles /api/ requests per client IP
	RateLimit struct {
		// Requests is the number of requests allowed per Window; zero disables rate limiting
		Requests int `env:"RATE_LIMIT_REQUESTS" env-default:"100" yaml:"requests"`
		// Window is the period over which Requests are allowed
		Window time.Duration `env:"RATE_LIMIT_WINDOW" env-default:"15m" yaml:"window"`
		// TrustForwardedFor keys clients by X-Forwarded-For / X-Real-IP; enable only behind a trusted proxy
		TrustForwardedFor bool `env:"RATE_LIMIT_TRUST_FORWARDED_FOR" env-default:"false" yaml:"trustForwardedFor"`
	} `yaml:"rateLimit"`

	// Auth configures optional bearer token authentication for crack requests
	Auth struct {
		// PublicKey is the PEM encoded RSA public key used to verify tokens; empty disables authentication
		PublicKey string `env:"AUTH_PUBLIC_KEY" env-default:"" yaml:"publicKey"`
		// PrivateKey is the PEM encoded RSA private key used by the jwt command to mint tokens
		PrivateKey string `env:"AUTH_PRIVATE_KEY" env-default:"" yaml:"privateKey"`
	} `yaml:"auth"`

	// Cracker contains dictionary attack settings
	Cracker struct {
		// Workers is the number of goroutines scanning disjoint ranges of one dictionary; 1 scans sequentially
		Workers int `env:"CRACKER_WORKERS" env-default:"1" yaml:"workers"`
		// ProgressInterval logs scan progress every N candidates; zero disables progress logs
		ProgressInterval int `env:"CRACKER_PROGRESS_INTERVAL" env-default:"100" yaml:"progressInterval"`
		// BcryptCost is the work factor used when generating bcrypt digests
		BcryptCost int `env:"CRACKER_BCRYPT_COST" env-default:"10" yaml:"bcryptCost"`
		// MaxDictionarySize rejects caller supplied dictionaries longer than this; zero means unlimited
		MaxDictionarySize int `env:"CRACKER_MAX_DICTIONARY_SIZE" env-default:"100000" yaml:"maxDictionarySize"`
	} `yaml:"cracker"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config struct.
// When the file does not exist, configuration is read from the environment only.
func Load(configPath string) (*Config, error) {
	var cfg Config

	if _, err := os.Stat(configPath); errors.Is(err, fs.ErrNotExist) {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("could not read config from env: %w", err)
		}

		return &cfg, nil
	}

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}
