package failure

import (
	"errors"
	"net/http"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var ForbiddenError = &Failure{Code: http.StatusForbidden, Message: "You don't have the required permissions"}
var SessionExpiredError = &Failure{Code: http.StatusUnauthorized, Message: "session expired, please log in again"}
var UpstreamUnavailableError = &Failure{Code: http.StatusBadGateway, Message: "marketplace service is unavailable"}

// Error returns the error code and message in a formatted string.
func (e *Failure) Error() string {
	return e.Message
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

// Unauthorized returns a new Failure with code for unauthorized requests.
func Unauthorized(msg string) error {
	return &Failure{
		Code:    http.StatusUnauthorized,
		Message: msg,
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		}
	}

	return nil
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: entityName,
	}
}

// Conflict returns a new Failure with code for conflict situations.
func Conflict(message string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Message: message,
	}
}

func Forbidden(msg string) error {
	return &Failure{
		Code:    http.StatusForbidden,
		Message: msg,
	}
}

// BadGateway returns a new Failure for transport errors talking to the marketplace backend.
func BadGateway(err error) error {
	if err == nil {
		return nil
	}

	return &Failure{
		Code:    http.StatusBadGateway,
		Message: err.Error(),
	}
}

// FromUpstream keeps the status and message reported by the marketplace backend.
// Server-side failures of the backend are reported as bad gateway so they are not
// mistaken for errors of this service.
func FromUpstream(status int, message string) error {
	if message == "" {
		message = http.StatusText(status)
	}

	if status >= http.StatusInternalServerError {
		status = http.StatusBadGateway
	}

	return &Failure{
		Code:    status,
		Message: message,
	}
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// Message returns what a client may see of err: the message of the carried Failure,
// or the generic status text for any other error.
func Message(err error) string {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Message
	}

	return http.StatusText(http.StatusInternalServerError)
}

// IsNotFound reports whether err carries a not found code.
func IsNotFound(err error) bool {
	return GetCode(err) == http.StatusNotFound
}
