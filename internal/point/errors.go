package point

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrNotFound       = errors.New("not found")
	ErrInvalidAddress = errors.New("invalid address")
)

// HostError is returned when the point node answers with a non 2xx status.
type HostError struct {
	Op         string
	StatusCode int
	Body       string
}

func (e *HostError) Error() string {
	return fmt.Sprintf("%s: point node responded with status %d: %s", e.Op, e.StatusCode, e.Body)
}

func (e *HostError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}

// HTTPStatus maps an adapter error to the status the service answers with.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidAddress):
		return http.StatusBadRequest
	case errors.Is(err, context.Canceled):
		return http.StatusRequestTimeout
	default:
		return http.StatusBadGateway
	}
}
