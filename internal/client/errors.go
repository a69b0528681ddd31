package client

import "fmt"

// APIError is returned by every failed call. Status is zero when the request
// never got a response.
type APIError struct {
	Status  int
	Message string
	Field   string
	Err     error
}

func (e *APIError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s (%s)", e.Message, e.Field)
	}
	return e.Message
}

func (e *APIError) Unwrap() error { return e.Err }
