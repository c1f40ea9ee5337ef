package core

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"
)

// ErrorType represents the category of a client error.
type ErrorType int

// Error type constants. None of them are retried by the client.
const (
	// ErrorTypeUnknown indicates an unclassified error.
	ErrorTypeUnknown ErrorType = iota
	// ErrorTypeConfiguration indicates invalid or missing client configuration.
	ErrorTypeConfiguration
	// ErrorTypeSigning indicates the request signature could not be produced.
	ErrorTypeSigning
	// ErrorTypeTransport indicates a DNS, connection, TLS or timeout failure.
	ErrorTypeTransport
	// ErrorTypeBadRequest indicates the request descriptor itself is invalid.
	ErrorTypeBadRequest
)

// String returns the string representation of the error type.
func (t ErrorType) String() string {
	switch t {
	case ErrorTypeConfiguration:
		return "CONFIGURATION"
	case ErrorTypeSigning:
		return "SIGNING"
	case ErrorTypeTransport:
		return "TRANSPORT"
	case ErrorTypeBadRequest:
		return "BAD_REQUEST"
	default:
		return "UNKNOWN"
	}
}

// Sentinel errors for common error conditions.
var (
	// ErrClientClosed is returned when attempting to use a closed client.
	ErrClientClosed = errors.New("client is closed")
	// ErrNoCredentials is returned when no API credentials are configured.
	ErrNoCredentials = errors.New("no credentials configured")
	// ErrEmptySecret is returned when the HMAC cannot be keyed.
	ErrEmptySecret = errors.New("secret key is required for signing")
)

// ExchangeError is a structured error produced by the client.
type ExchangeError struct {
	// Type categorizes the error for programmatic handling.
	Type ErrorType `json:"type"`
	// Code is a stable machine-readable identifier.
	Code string `json:"code"`
	// Message is the human-readable error description.
	Message string `json:"message"`
	// Method and Path identify the request, when there was one.
	Method string `json:"method,omitempty"`
	Path   string `json:"path,omitempty"`
	// Err is the underlying cause, if any.
	Err error `json:"-"`
	// Timestamp is when the error occurred.
	Timestamp time.Time `json:"timestamp"`
}

// Error implements the error interface for ExchangeError.
func (e *ExchangeError) Error() string {
	msg := e.Message
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	if e.Path != "" {
		return fmt.Sprintf("[bybit] %s (%s) %s %s: %s", e.Type, e.Code, e.Method, e.Path, msg)
	}
	return fmt.Sprintf("[bybit] %s (%s): %s", e.Type, e.Code, msg)
}

// Unwrap returns the underlying cause so errors.Is and errors.As reach it.
func (e *ExchangeError) Unwrap() error {
	return e.Err
}

// WithRequest records the request method and path and returns the error for chaining.
func (e *ExchangeError) WithRequest(method, path string) *ExchangeError {
	e.Method = method
	e.Path = path
	return e
}

// WithCause sets the underlying error and returns the error for chaining.
func (e *ExchangeError) WithCause(err error) *ExchangeError {
	e.Err = err
	return e
}

// NewExchangeError creates a new ExchangeError. The timestamp is set to the current time.
func NewExchangeError(errorType ErrorType, code ErrorCode, message string) *ExchangeError {
	return &ExchangeError{
		Type:      errorType,
		Code:      string(code),
		Message:   message,
		Timestamp: time.Now(),
	}
}

func errorTypeOf(err error) ErrorType {
	var e *ExchangeError
	if errors.As(err, &e) {
		return e.Type
	}
	return ErrorTypeUnknown
}

// IsSigningError returns true if the request could not be signed.
// Signing errors come from bad configuration and are never retryable.
func IsSigningError(err error) bool {
	return errorTypeOf(err) == ErrorTypeSigning
}

// IsTransportError returns true if the request failed before a response arrived.
func IsTransportError(err error) bool {
	return errorTypeOf(err) == ErrorTypeTransport
}

// IsConfigurationError returns true if the client was built from an invalid config.
func IsConfigurationError(err error) bool {
	return errorTypeOf(err) == ErrorTypeConfiguration
}

// IsTimeoutError returns true if a transport error was caused by a deadline.
func IsTimeoutError(err error) bool {
	if !IsTransportError(err) {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
