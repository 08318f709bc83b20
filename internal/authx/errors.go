package authx

import (
	"errors"
	"fmt"
)

// APIError is the normalized form of a non-2xx response from the identity
// API. Message and Details come straight from the response body when it
// parses as JSON; otherwise a generic fallback message is substituted.
type APIError struct {
	Status  int
	Code    string
	Message string
	Details map[string]string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("authx: %s (status %d, code %s)", e.Message, e.Status, e.Code)
	}
	return fmt.Sprintf("authx: %s (status %d)", e.Message, e.Status)
}

// TransportError reports that no HTTP response was obtained at all
// (connection refused, DNS failure, timeout). It is a distinct type from
// APIError on purpose: the caller decides what total backend unavailability
// means, the client never conflates it with an HTTP error.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("authx: backend unreachable: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsUnreachable reports whether err is a transport-level failure.
func IsUnreachable(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// AsAPIError extracts an APIError from err, if it carries one.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
