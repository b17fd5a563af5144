// Package pkg carries cross-layer helpers shared by the HTTP adapters.
package pkg

import "fmt"

// AppError is a transport-facing error with a stable machine code and the
// HTTP status the adapters should answer with.
type AppError struct {
	Code       string
	Message    string
	Err        error
	HTTPStatus int
	Details    []string
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewDomainError builds an AppError wrapping an underlying cause.
func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

// NewDomainErrorSimple builds an AppError with no underlying cause.
func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

// WithDetails returns a copy of e carrying user-facing detail lines, e.g.
// the missing fields of a form step.
func (e *AppError) WithDetails(details ...string) *AppError {
	copied := *e
	copied.Details = details
	return &copied
}

// HTTPError is the JSON error body returned by the API.
type HTTPError struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

// ToHTTPError converts e into its response body.
func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{Code: e.Code, Message: e.Message, Details: e.Details}
}
