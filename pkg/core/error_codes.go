package core

import "errors"

// ErrorCode represents a stable client error identifier.
type ErrorCode string

const (
	// Configuration errors
	ErrCodeInvalidConfig ErrorCode = "INVALID_CONFIG"
	ErrCodeNoCredentials ErrorCode = "NO_CREDENTIALS"

	ErrCodeSigning   ErrorCode = "SIGNING_ERROR"
	ErrCodeTransport ErrorCode = "TRANSPORT_ERROR"

	// Request descriptor errors
	ErrCodeUnsupported    ErrorCode = "UNSUPPORTED_METHOD"
	ErrCodeInvalidRequest ErrorCode = "INVALID_REQUEST"

	ErrCodeClientClosed ErrorCode = "CLIENT_CLOSED"
)

// IsErrorCode checks if the error matches the specified error code.
func IsErrorCode(err error, code ErrorCode) bool {
	var exErr *ExchangeError
	if errors.As(err, &exErr) {
		return ErrorCode(exErr.Code) == code
	}
	return false
}
