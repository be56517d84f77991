package client

import "fmt"

// APIError is a failed backend call: a transport failure, a non-200
// status, or an unusable response body. Endpoint always names the call
// that failed; Status is zero when no HTTP response was received.
type APIError struct {
	Endpoint string
	Status   int
	Message  string
	Err      error
}

func (e *APIError) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Endpoint, e.Err)
	case e.Status != 0 && e.Message != "":
		return fmt.Sprintf("%s: HTTP %d: %s", e.Endpoint, e.Status, e.Message)
	case e.Status != 0:
		return fmt.Sprintf("%s: HTTP %d", e.Endpoint, e.Status)
	default:
		return fmt.Sprintf("%s: %s", e.Endpoint, e.Message)
	}
}

func (e *APIError) Unwrap() error {
	return e.Err
}
