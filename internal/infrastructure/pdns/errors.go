package pdns

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
)

// Error is the client's failure type. StatusCode 0 means the request never
// produced an HTTP response (network failure, timeout, bad body).
type Error struct {
	Op         string
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("pdns: %s: %s", e.Op, e.Message)
	}
	return fmt.Sprintf("pdns: %s: status %d: %s", e.Op, e.StatusCode, e.Message)
}

// Temporary reports whether retrying the same request can succeed:
// no response at all, server errors, or rate limiting.
func (e *Error) Temporary() bool {
	return e.StatusCode == 0 ||
		e.StatusCode >= 500 ||
		e.StatusCode == http.StatusTooManyRequests
}

func (e *Error) NotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// IsNotFound reports whether err is a 404 from the API.
func IsNotFound(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.NotFound()
}

// IsTransient classifies an error as retry-eligible. Permanent API
// rejections (4xx) are requests the server will never accept unchanged and
// must not be retried.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Temporary()
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return netErr.Timeout()
	}
	return false
}
