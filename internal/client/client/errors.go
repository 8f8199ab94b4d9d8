package client

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrUnavailable     = errors.New("server unavailable")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrForbidden       = errors.New("forbidden")
	ErrNotFound        = errors.New("not found")
	ErrRejected        = errors.New("request rejected")
	ErrServer          = errors.New("server error")
	ErrInvalidResponse = errors.New("invalid response")
)

// APIError is a non-2xx response. Message is the server-provided text
// suitable for showing to the user.
type APIError struct {
	Method  string
	Path    string
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.Status, e.Message)
}

// Unwrap maps the status to its sentinel.
func (e *APIError) Unwrap() error {
	switch {
	case e.Status == http.StatusUnauthorized:
		return ErrUnauthorized
	case e.Status == http.StatusForbidden:
		return ErrForbidden
	case e.Status == http.StatusNotFound:
		return ErrNotFound
	case e.Status >= 400 && e.Status < 500:
		return ErrRejected
	default:
		return ErrServer
	}
}

// transportError wraps a failure that produced no response.
type transportError struct {
	method string
	path   string
	err    error
}

func (e *transportError) Error() string {
	return fmt.Sprintf("%s %s: %v: %v", e.method, e.path, ErrUnavailable, e.err)
}

func (e *transportError) Unwrap() []error {
	return []error{ErrUnavailable, e.err}
}

// Message returns the text a page should display for err: the server
// message for API errors, the error string otherwise.
func Message(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return err.Error()
}
