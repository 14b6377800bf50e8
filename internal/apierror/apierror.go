// Package apierror defines the error envelope shared by the API client and
// the mock server. Every non-2xx response carries a human-readable `message`
// field which is surfaced to the user verbatim.
package apierror

import (
	"errors"
	"net/http"
)

// MensajeGenerico is shown when the server response carries no usable message.
const MensajeGenerico = "Ocurrió un error"

// APIError is the canonical error envelope for all 4xx/5xx responses.
type APIError struct {
	Status  int    `json:"-"`
	Message string `json:"message"`
}

func New(msg string) *APIError {
	return &APIError{Message: msg}
}

func NewStatus(status int, msg string) *APIError {
	return &APIError{Status: status, Message: msg}
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return MensajeGenerico
	}
	return e.Message
}

// SesionInvalida reports whether the server rejected the credential. The
// outer layer treats this as a global "log in again" signal; the view-model
// treats it like any other failed call.
func (e *APIError) SesionInvalida() bool {
	return e.Status == http.StatusUnauthorized
}

// ValidationError wraps multiple field errors (422 responses).
type ValidationError struct {
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Message: "Error de validación", Fields: fields}
}

// Mensaje extracts the user-facing text from any error: the server's message
// when an *APIError is anywhere in the chain, the generic fallback otherwise.
// Mirrors the response interceptor of the original transport layer.
func Mensaje(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return MensajeGenerico
}
