// Package httpapi defines the JSON wire shapes shared by all endpoints.
package httpapi

import "net/http"

// Failure is the uniform error envelope returned on any failed request.
type Failure struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// Error carries an HTTP status and a client-facing message through the
// gin error chain until the envelope middleware renders it.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func NewError(status int, message string) *Error {
	return &Error{Status: status, Message: message}
}

func BadRequest(message string) *Error {
	return NewError(http.StatusBadRequest, message)
}

func NotFound(message string) *Error {
	return NewError(http.StatusNotFound, message)
}

func Internal(message string) *Error {
	return NewError(http.StatusInternalServerError, message)
}
