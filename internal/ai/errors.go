package ai

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable means the gateway could not be reached at all.
	ErrUnavailable = errors.New("inference gateway unreachable")
	// ErrInvalidResponse means the gateway answered 2xx with an unusable payload.
	ErrInvalidResponse = errors.New("invalid inference gateway response")
)

// StatusError is returned when the gateway answers with a non-2xx status.
type StatusError struct {
	Capability string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: inference gateway returned status %d", e.Capability, e.StatusCode)
}

// Outcome labels a gateway call result for metrics.
func Outcome(err error) string {
	var statusErr *StatusError
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrUnavailable):
		return "unavailable"
	case errors.As(err, &statusErr):
		return "status_error"
	case errors.Is(err, ErrInvalidResponse):
		return "invalid_response"
	default:
		return "error"
	}
}
