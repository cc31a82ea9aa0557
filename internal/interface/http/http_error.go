package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/yanqian/what-to-wear/pkg/errors"
)

// HTTPError captures the metadata required to serialize an error response consistently.
type HTTPError struct {
	Status  int
	Code    string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

// NewHTTPError is a helper to build an HTTPError instance.
func NewHTTPError(status int, code, message string, err error) *HTTPError {
	return &HTTPError{Status: status, Code: code, Message: message, Err: err}
}

func asHTTPError(err error) *HTTPError {
	if err == nil {
		return nil
	}
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}
	return fromAppError(err)
}

// fromAppError is the single place an error code becomes an HTTP status.
func fromAppError(err error) *HTTPError {
	code := apperrors.CodeOf(err)
	return NewHTTPError(statusForCode(code, err), code, errMessage(err), err)
}

func statusForCode(code string, err error) int {
	switch code {
	case apperrors.CodeInvalidLocation, apperrors.CodeInvalidParameter:
		return http.StatusUnprocessableEntity
	case apperrors.CodeLocationNotFound:
		return http.StatusNotFound
	case apperrors.CodeInvalidToken, apperrors.CodeInvalidCredentials:
		return http.StatusUnauthorized
	case apperrors.CodeUsernameExists:
		return http.StatusBadRequest
	case apperrors.CodeUpstreamData, apperrors.CodeMalformedLLM:
		return http.StatusBadGateway
	case apperrors.CodeWeatherProvider, apperrors.CodeLLMProvider:
		if status := apperrors.UpstreamStatusOf(err); status >= http.StatusBadRequest {
			return status
		}
		return http.StatusBadGateway
	case apperrors.CodeServiceUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func abortWithError(c *gin.Context, err *HTTPError) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func abortWithAppError(c *gin.Context, err error) {
	abortWithError(c, asHTTPError(err))
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
