package engine

import (
	"errors"
	"fmt"
)

// ErrEmptyTopic rejects a blank search topic before any I/O happens.
var ErrEmptyTopic = errors.New("topic is empty")

// ErrBadURL marks a malformed endpoint or candidate URL. Connector-internal;
// the orchestrator converts it to zero candidates for that branch.
var ErrBadURL = errors.New("bad url")

// statusError wraps a non-2xx HTTP response status.
type statusError struct {
	Code int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("unexpected status %d", e.Code)
}

// IsStatusError reports whether err is a non-2xx response error and returns
// the status code when it is.
func IsStatusError(err error) (int, bool) {
	var se *statusError
	if errors.As(err, &se) {
		return se.Code, true
	}
	return 0, false
}
