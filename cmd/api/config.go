package main

import (
	"fmt"
	"os"
	"time"
)

type config struct {
	addr            string
	shutdownTimeout time.Duration
}

// loadConfig reads HTTP_ADDR and SHUTDOWN_TIMEOUT from the environment.
func loadConfig() (config, error) {
	cfg := config{
		addr:            ":8080",
		shutdownTimeout: 5 * time.Second,
	}

	if addr := os.Getenv("HTTP_ADDR"); addr != "" {
		cfg.addr = addr
	}

	if raw := os.Getenv("SHUTDOWN_TIMEOUT"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return config{}, fmt.Errorf("parse SHUTDOWN_TIMEOUT %q: %w", raw, err)
		}
		cfg.shutdownTimeout = d
	}

	return cfg, nil
}
