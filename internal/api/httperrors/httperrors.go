package httperrors

import (
	"fmt"
	"net/http"
)

// HTTPError is the uniform public error payload of the API.
type HTTPError struct {
	Code   int    `json:"status"`
	Type   string `json:"type"`
	Title  string `json:"title"`
	Detail string `json:"detail,omitempty"`
}

const (
	// TypeGeneric marks errors without a more specific public type.
	TypeGeneric = "generic"
	// TypeValidation marks request payload validation failures.
	TypeValidation = "validation"
)

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTPError %d (%s): %s", e.Code, e.Type, e.Title)
}

// NewHTTPError creates a new HTTPError.
func NewHTTPError(code int, errorType string, title string) *HTTPError {
	return &HTTPError{
		Code:  code,
		Type:  errorType,
		Title: title,
	}
}

// NewHTTPValidationError creates a validation HTTPError carrying detail.
func NewHTTPValidationError(title string, detail string) *HTTPError {
	return &HTTPError{
		Code:   http.StatusBadRequest,
		Type:   TypeValidation,
		Title:  title,
		Detail: detail,
	}
}
