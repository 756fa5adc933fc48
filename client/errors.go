package client

import (
	"errors"
	"fmt"
)

var ErrChangelogNotConfigured = errors.New("changelog path not configured")

// FetchError is a non-2xx answer from the backend.
type FetchError struct {
	What       string
	StatusCode int
	StatusText string
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("failed to fetch %s: %d %s", e.What, e.StatusCode, e.StatusText)
}

// ParseError is a response body that is not the JSON it claims to be.
type ParseError struct {
	Url string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse response from %s: %s", e.Url, e.Err.Error())
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
