package repository

import (
	"fmt"

	"github.com/hungpv1995/datagrid/cmd/internal/models"
)

// NetworkError reports a request that did not complete or came back with a
// non-2xx status. StatusCode is zero when no response was received.
type NetworkError struct {
	Resource   models.Resource
	StatusCode int
	Err        error
}

func (e *NetworkError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("failed to fetch %s: unexpected status %d", e.Resource, e.StatusCode)
	}
	return fmt.Sprintf("failed to fetch %s: %v", e.Resource, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// DecodeError reports a response body that is not the expected JSON array
type DecodeError struct {
	Resource models.Resource
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode %s: %v", e.Resource, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
