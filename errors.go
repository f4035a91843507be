package redfish

import (
	"errors"
	"fmt"
)

// ErrMissingHost is returned when no host was supplied.
var ErrMissingHost = errors.New("host is required. Provide it or set REDFISH_HOST")

// ErrorKind discriminates the failure classes a call can surface.
type ErrorKind int

const (
	// KindTransport covers network, connection, and TLS failures reported
	// by the underlying HTTP stack.
	KindTransport ErrorKind = iota
	// KindStatus covers responses with a status outside the 2xx range.
	// The body of such a response is discarded, never parsed.
	KindStatus
	// KindDecode covers success responses whose body is not valid JSON or
	// does not match the target schema.
	KindDecode
)

func (k ErrorKind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindStatus:
		return "status"
	case KindDecode:
		return "decode"
	default:
		return "unknown"
	}
}

// Error is the unified error returned by every call. Callers distinguish
// failure classes via Kind, or with errors.As:
//
//	var rerr *redfish.Error
//	if errors.As(err, &rerr) && rerr.Kind == redfish.KindStatus {
//		log.Printf("endpoint answered %d", rerr.StatusCode)
//	}
type Error struct {
	Kind ErrorKind
	// URL the request was issued against.
	URL string
	// StatusCode is set when Kind is KindStatus.
	StatusCode int
	// Err is the underlying cause; nil for KindStatus.
	Err error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	switch e.Kind {
	case KindStatus:
		return fmt.Sprintf("redfish: GET %s: unexpected status %d", e.URL, e.StatusCode)
	case KindDecode:
		return fmt.Sprintf("redfish: GET %s: decode response: %v", e.URL, e.Err)
	default:
		return fmt.Sprintf("redfish: GET %s: %v", e.URL, e.Err)
	}
}

func (e *Error) Unwrap() error { return e.Err }

// AsError unwraps err into *Error when the chain contains one.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

func transportError(url string, err error) *Error {
	return &Error{Kind: KindTransport, URL: url, Err: err}
}

func statusError(url string, code int) *Error {
	return &Error{Kind: KindStatus, URL: url, StatusCode: code}
}

func decodeError(url string, err error) *Error {
	return &Error{Kind: KindDecode, URL: url, Err: err}
}
