package backend

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is returned by every Client operation. StatusCode is 0 when no
// response was received.
type Error struct {
	Op         string
	StatusCode int
	Code       string
	Msg        string
	Err        error
}

func (e *Error) Error() string {
	switch {
	case e.StatusCode == 0 && e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	case e.Msg != "":
		return fmt.Sprintf("%s: status %d: %s", e.Op, e.StatusCode, e.Msg)
	default:
		return fmt.Sprintf("%s: status %d", e.Op, e.StatusCode)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Network reports a failure without any response from the backend.
func (e *Error) Network() bool {
	return e.StatusCode == 0
}

// Message returns the server-provided message carried by err, or fallback.
func Message(err error, fallback string) string {
	var be *Error
	if errors.As(err, &be) && be.Msg != "" {
		return be.Msg
	}

	return fallback
}

func StatusCode(err error) int {
	var be *Error
	if errors.As(err, &be) {
		return be.StatusCode
	}

	return 0
}

func IsNotFound(err error) bool {
	return StatusCode(err) == http.StatusNotFound
}

func IsUnauthorized(err error) bool {
	code := StatusCode(err)

	return code == http.StatusUnauthorized || code == http.StatusForbidden
}

// PageStatus is the status a page answers with after err: the backend's own
// 4xx, otherwise 502.
func PageStatus(err error) int {
	code := StatusCode(err)
	if code < http.StatusBadRequest || code >= http.StatusInternalServerError {
		return http.StatusBadGateway
	}

	return code
}
