package errors

import (
	stderrors "errors"
	"fmt"
)

// Client error types, one per failure origin

type ErrorType int

const (
	ErrorTypeUnknown ErrorType = iota

	// Raised before any network activity
	ErrorTypeConfiguration
	ErrorTypeValidation

	// Raised while talking to the provider
	ErrorTypeTransport
	ErrorTypeApplication
	ErrorTypeUnexpected
)

// String returns the string representation of error type
func (e ErrorType) String() string {
	switch e {
	case ErrorTypeConfiguration:
		return "CONFIGURATION_ERROR"
	case ErrorTypeValidation:
		return "VALIDATION_ERROR"
	case ErrorTypeTransport:
		return "TRANSPORT_ERROR"
	case ErrorTypeApplication:
		return "APPLICATION_ERROR"
	case ErrorTypeUnexpected:
		return "UNEXPECTED_ERROR"
	default:
		return "UNKNOWN_ERROR"
	}
}

// ClientError is the only error returned by the weather client.
// Status is the HTTP status code (0 when none was received) and Code is the
// provider-defined error code ("" when the provider reported none).
type ClientError struct {
	Type    ErrorType
	Message string
	Status  int
	Code    string
	Cause   error
}

func (e *ClientError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Type.String(), e.Message)
	if e.Status != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.Status)
	}
	if e.Code != "" {
		msg = fmt.Sprintf("%s (code %s)", msg, e.Code)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s (caused by: %v)", msg, e.Cause)
	}
	return msg
}

func (e *ClientError) Unwrap() error {
	return e.Cause
}

// HasStatus reports whether an HTTP status code was received
func (e *ClientError) HasStatus() bool {
	return e.Status != 0
}

// HasCode reports whether the provider supplied an error code
func (e *ClientError) HasCode() bool {
	return e.Code != ""
}

func New(errorType ErrorType, message string) *ClientError {
	return &ClientError{
		Type:    errorType,
		Message: message,
	}
}

func Wrap(errorType ErrorType, message string, cause error) *ClientError {
	return &ClientError{
		Type:    errorType,
		Message: message,
		Cause:   cause,
	}
}

// Pre-flight error constructors
func NewConfigurationError(message string, cause error) *ClientError {
	return Wrap(ErrorTypeConfiguration, message, cause)
}

func NewValidationError(message string) *ClientError {
	return New(ErrorTypeValidation, message)
}

// Provider error constructors
func NewTransportError(message string, cause error) *ClientError {
	return Wrap(ErrorTypeTransport, message, cause)
}

func NewHTTPStatusError(message string, status int) *ClientError {
	return &ClientError{
		Type:    ErrorTypeTransport,
		Message: message,
		Status:  status,
	}
}

func NewApplicationError(message, code string) *ClientError {
	return &ClientError{
		Type:    ErrorTypeApplication,
		Message: message,
		Code:    code,
	}
}

func NewUnexpectedError(message string, cause error) *ClientError {
	return Wrap(ErrorTypeUnexpected, message, cause)
}

// AsClientError extracts a *ClientError from err's chain
func AsClientError(err error) (*ClientError, bool) {
	var clientErr *ClientError
	if stderrors.As(err, &clientErr) {
		return clientErr, true
	}
	return nil, false
}

// Helper functions for error type checking
func IsConfigurationError(err error) bool {
	return isType(err, ErrorTypeConfiguration)
}

func IsValidationError(err error) bool {
	return isType(err, ErrorTypeValidation)
}

func IsTransportError(err error) bool {
	return isType(err, ErrorTypeTransport)
}

func IsApplicationError(err error) bool {
	return isType(err, ErrorTypeApplication)
}

func IsUnexpectedError(err error) bool {
	return isType(err, ErrorTypeUnexpected)
}

func isType(err error, errorType ErrorType) bool {
	if clientErr, ok := AsClientError(err); ok {
		return clientErr.Type == errorType
	}
	return false
}
