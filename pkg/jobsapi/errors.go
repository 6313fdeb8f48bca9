package jobsapi

import (
	"errors"
	"fmt"
)

// Kind classifies a failed request
type Kind int

const (
	// KindTransport covers network errors, timeouts and undecodable bodies
	KindTransport Kind = iota
	// KindUnauthorized is a missing or rejected token (401/403)
	KindUnauthorized
	// KindHTTP is any other non-2xx response
	KindHTTP
)

func (k Kind) String() string {
	switch k {
	case KindUnauthorized:
		return "unauthorized"
	case KindHTTP:
		return "http_error"
	case KindTransport:
		return "transport_error"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Error is returned by Client.Execute for every failure
type Error struct {
	Kind   Kind
	Status int    // HTTP status, zero for transport errors
	Body   string // truncated response body, if any
	Err    error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindTransport:
		return fmt.Sprintf("jobsapi: transport error: %v", e.Err)
	default:
		if e.Body != "" {
			return fmt.Sprintf("jobsapi: %s (%d): %s", e.Kind, e.Status, e.Body)
		}
		return fmt.Sprintf("jobsapi: %s (%d)", e.Kind, e.Status)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf extracts the failure kind from err. Errors that did not come from
// this package are reported as transport errors.
func KindOf(err error) Kind {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return KindTransport
}

func transportError(err error) *Error {
	return &Error{Kind: KindTransport, Err: err}
}
