package providers

import (
	"errors"
	"fmt"
)

var (
	// ErrTransport marks failures reaching the collection (refused, reset, timeout).
	ErrTransport = errors.New("collection unreachable")
	// ErrDecode marks responses whose body could not be decoded.
	ErrDecode = errors.New("collection response not decodable")
	// ErrProviderUnavailable is returned when no collection is configured.
	ErrProviderUnavailable = errors.New("collection not configured")
)

// StatusError captures non-2xx responses from the collection.
type StatusError struct {
	Provider   string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	msg := fmt.Sprintf("%s: unexpected status %d", e.Provider, e.StatusCode)
	if e.Body != "" {
		msg += ": " + e.Body
	}
	return msg
}

// AsStatusError attempts to unwrap an error into a StatusError.
func AsStatusError(err error) (*StatusError, bool) {
	var stErr *StatusError
	if errors.As(err, &stErr) {
		return stErr, true
	}
	return nil, false
}

// Kind classifies an error for logs and metrics: "transport", "decode", "status" or "other".
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTransport):
		return "transport"
	case errors.Is(err, ErrDecode):
		return "decode"
	default:
		if _, ok := AsStatusError(err); ok {
			return "status"
		}
		return "other"
	}
}
