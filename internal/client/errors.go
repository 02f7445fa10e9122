package client

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/bthakur/termfolio/internal/blog"
)

// ErrUnauthorized matches any response with status 401.
var ErrUnauthorized = errors.New("unauthorized")

// Error codes
const (
	ErrCodeTransport = "TRANSPORT_FAILED"
	ErrCodeResponse  = "REQUEST_FAILED"
	ErrCodeDecode    = "DECODE_FAILED"
	ErrCodeEncode    = "ENCODE_FAILED"
)

// Error is returned by every Client call that fails.
type Error struct {
	Code    string
	Status  int
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is maps HTTP statuses onto the sentinel errors callers compare against.
func (e *Error) Is(target error) bool {
	switch e.Status {
	case http.StatusUnauthorized:
		return target == ErrUnauthorized
	case http.StatusNotFound:
		return target == blog.ErrBlogNotFound
	case http.StatusConflict:
		return target == blog.ErrSlugExists
	}
	return false
}

// Message returns the human readable part of err.
func Message(err error) string {
	var clientErr *Error
	if errors.As(err, &clientErr) {
		return clientErr.Message
	}
	return err.Error()
}
