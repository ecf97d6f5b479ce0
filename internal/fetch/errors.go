package fetch

import (
	"fmt"
	"time"
)

// HTTPError is a non-2xx response from the dataset host.
type HTTPError struct {
	StatusCode int
	URL        string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("download failed: status=%d url=%s", e.StatusCode, e.URL)
}

// NotFoundError indicates the dataset is no longer published at its URL.
type NotFoundError struct{ *HTTPError }

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("dataset not found: %s", e.HTTPError.Error())
}

// RateLimitError indicates 429 responses and may include a Retry-After.
type RateLimitError struct {
	*HTTPError
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("rate limited: wait about %ds before retrying: %s", int(e.RetryAfter.Seconds()), e.HTTPError.Error())
	}
	return fmt.Sprintf("rate limited: %s", e.HTTPError.Error())
}

// ServerError indicates 5xx errors from the dataset host.
type ServerError struct{ *HTTPError }

func (e *ServerError) Error() string { return fmt.Sprintf("host error: %s", e.HTTPError.Error()) }

// UnreachableError indicates the dataset host could not be reached at all.
type UnreachableError struct {
	URL string
	Err error
}

func (e *UnreachableError) Error() string {
	if e == nil {
		return "unreachable"
	}
	if e.URL != "" {
		return fmt.Sprintf("host unreachable at %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("host unreachable: %v", e.Err)
}
