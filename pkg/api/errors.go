package api

import (
	"fmt"
	"net/http"
)

// RequestError is a non-2xx response from the platform. Message is taken
// from the conventional {"detail": "..."} error body when present.
type RequestError struct {
	Status  int
	Message string
}

func (e *RequestError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed: %s", http.StatusText(e.Status))
}

// NetworkError is a transport failure: the platform never answered.
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("unable to reach %s: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// IsNotFound reports whether err is a 404 from the platform.
func IsNotFound(err error) bool {
	re, ok := err.(*RequestError)
	return ok && re.Status == http.StatusNotFound
}
