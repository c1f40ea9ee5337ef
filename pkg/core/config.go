package core

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// DefaultRecvWindow is the tolerance in milliseconds Bybit allows between
// the request timestamp and server time.
const DefaultRecvWindow = "50000"

// Credentials holds API authentication credentials.
type Credentials struct {
	// APIKey is the public API key identifier.
	APIKey string `json:"api_key" validate:"required"`
	// SecretKey is the private key used for signing requests. It is never sent.
	SecretKey string `json:"secret_key" validate:"required"`
}

// String masks the API key and omits the secret so credentials are safe to log.
func (c Credentials) String() string {
	return fmt.Sprintf("Credentials{APIKey:%s}", maskKey(c.APIKey))
}

func maskKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "****" + key[len(key)-4:]
}

// Config contains all configuration options for a Bybit REST client.
type Config struct {
	Credentials *Credentials `json:"credentials,omitempty"`
	Testnet     bool         `json:"testnet"`

	// Timeout is the maximum duration for a single HTTP request.
	Timeout time.Duration `json:"timeout" validate:"min=1ms"`

	// RecvWindow is sent verbatim in X-BAPI-RECV-WINDOW and mixed into the signature.
	RecvWindow string `json:"recv_window" validate:"required,numeric"`

	LogLevel string `json:"log_level" validate:"omitempty,oneof=trace debug info warn error disabled"`
}

// DefaultConfig returns a Config for production with a 10s timeout and a 50000ms receive window.
func DefaultConfig() *Config {
	return &Config{
		Testnet:    false,
		Timeout:    10 * time.Second,
		RecvWindow: DefaultRecvWindow,
		LogLevel:   "info",
	}
}

var validate = validator.New()

func (c *Config) Validate() error {
	return validate.Struct(c)
}

// Clone returns a deep copy of the config.
func (c *Config) Clone() *Config {
	cp := *c
	if c.Credentials != nil {
		creds := *c.Credentials
		cp.Credentials = &creds
	}
	return &cp
}

// WithCredentials sets the API credentials and returns the config for chaining.
func (c *Config) WithCredentials(apiKey, secretKey string) *Config {
	c.Credentials = &Credentials{APIKey: apiKey, SecretKey: secretKey}
	return c
}

// WithTestnet selects the test network and returns the config for chaining.
func (c *Config) WithTestnet(testnet bool) *Config {
	c.Testnet = testnet
	return c
}

// WithTimeout sets the request timeout and returns the config for chaining.
func (c *Config) WithTimeout(timeout time.Duration) *Config {
	c.Timeout = timeout
	return c
}

// WithRecvWindow sets the receive window in milliseconds and returns the config for chaining.
func (c *Config) WithRecvWindow(window string) *Config {
	c.RecvWindow = window
	return c
}

// WithLogLevel sets the log level and returns the config for chaining.
func (c *Config) WithLogLevel(level string) *Config {
	c.LogLevel = level
	return c
}
