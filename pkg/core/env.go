package core

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables read by LoadEnv.
const (
	EnvAPIKey     = "BYBIT_API_KEY"
	EnvSecretKey  = "BYBIT_SECRET_KEY"
	EnvTestnet    = "BYBIT_TESTNET"
	EnvTimeout    = "BYBIT_TIMEOUT"
	EnvRecvWindow = "BYBIT_RECV_WINDOW"
	EnvLogLevel   = "BYBIT_LOG_LEVEL"
)

// LoadEnv builds a Config from the process environment on top of DefaultConfig.
// Each file in paths is loaded with godotenv first; missing files are ignored and
// variables already set in the environment win over file values.
func LoadEnv(paths ...string) (*Config, error) {
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", p, err)
		}
	}

	config := DefaultConfig()

	apiKey, secretKey := os.Getenv(EnvAPIKey), os.Getenv(EnvSecretKey)
	if apiKey != "" || secretKey != "" {
		config.WithCredentials(apiKey, secretKey)
	}

	if v := os.Getenv(EnvTestnet); v != "" {
		testnet, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", EnvTestnet, err)
		}
		config.Testnet = testnet
	}

	if v := os.Getenv(EnvTimeout); v != "" {
		timeout, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", EnvTimeout, err)
		}
		config.Timeout = timeout
	}

	if v := os.Getenv(EnvRecvWindow); v != "" {
		config.RecvWindow = v
	}

	if v := os.Getenv(EnvLogLevel); v != "" {
		config.LogLevel = v
	}

	return config, nil
}
