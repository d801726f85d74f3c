package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress        string
	DatabaseURI       string
	ProviderAddress   string
	ProviderKeyID     string
	ProviderKeySecret string
	ProviderTimeout   time.Duration
	ShutdownTimeout   time.Duration
}

const (
	defaultRunAddress      = ":8080"
	defaultProviderAddress = "https://api.razorpay.com"
	defaultProviderTimeout = 10 * time.Second
	defaultShutdownTimeout = 10 * time.Second
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:        getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:       getString(lookup, "DATABASE_URI", ""),
		ProviderAddress:   getString(lookup, "PROVIDER_ADDRESS", defaultProviderAddress),
		ProviderKeyID:     getString(lookup, "RAZORPAY_KEY_ID", ""),
		ProviderKeySecret: getString(lookup, "RAZORPAY_KEY_SECRET", ""),
		ProviderTimeout:   getDuration(lookup, "PROVIDER_TIMEOUT", defaultProviderTimeout),
		ShutdownTimeout:   getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	fs := flag.NewFlagSet("checkout", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		providerTimeoutStr = cfg.ProviderTimeout.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN for the order log")
	fs.StringVar(&cfg.ProviderAddress, "r", cfg.ProviderAddress, "Payment provider base URL")
	fs.StringVar(&cfg.ProviderKeyID, "key-id", cfg.ProviderKeyID, "Payment provider public key identifier")
	fs.StringVar(&providerTimeoutStr, "provider-timeout", providerTimeoutStr, "Timeout for provider API calls")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.ProviderTimeout, err = time.ParseDuration(providerTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid provider timeout: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if secretFile, ok := lookup("RAZORPAY_KEY_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read provider secret file: %w", err)
		}
		cfg.ProviderKeySecret = strings.TrimSpace(string(content))
	}

	if cfg.ProviderTimeout <= 0 {
		cfg.ProviderTimeout = defaultProviderTimeout
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	if cfg.ProviderKeyID == "" || cfg.ProviderKeySecret == "" {
		return nil, fmt.Errorf("payment provider key pair must be provided")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
