package errors

import "errors"

// Error codes shared across the service. The HTTP boundary translates each
// code into a status; everything below the boundary only deals in codes.
const (
	CodeInvalidLocation    = "invalid_location"
	CodeInvalidParameter   = "invalid_parameter"
	CodeLocationNotFound   = "location_not_found"
	CodeInvalidToken       = "invalid_token"
	CodeInvalidCredentials = "invalid_credentials"
	CodeUsernameExists     = "username_exists"
	CodeAuthError          = "auth_error"
	CodeUpstreamData       = "upstream_data"
	CodeWeatherProvider    = "weather_provider_error"
	CodeLLMProvider        = "llm_provider_error"
	CodeMalformedLLM       = "malformed_llm_response"
	CodeServiceUnavailable = "service_unavailable"
	CodeNoModelSelected    = "no_model_selected"
	CodeInternal           = "internal_error"
)

// AppError encodes domain specific error details. UpstreamStatus carries the
// HTTP status reported by an external provider, when one applies.
type AppError struct {
	Code           string
	Message        string
	UpstreamStatus int
	Err            error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Wrap produces a new AppError instance.
func Wrap(code, message string, err error) error {
	return &AppError{Code: code, Message: message, Err: err}
}

// WrapStatus is Wrap for failures reported by an upstream provider.
func WrapStatus(code, message string, upstreamStatus int, err error) error {
	return &AppError{Code: code, Message: message, UpstreamStatus: upstreamStatus, Err: err}
}

// IsCode helps handlers differentiate failures.
func IsCode(err error, code string) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// CodeOf extracts the error code, or CodeInternal for untyped errors.
func CodeOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeInternal
}

// UpstreamStatusOf returns the upstream HTTP status attached to err, or zero.
func UpstreamStatusOf(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.UpstreamStatus
	}
	return 0
}
