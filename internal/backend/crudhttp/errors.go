package crudhttp

import (
	"fmt"
	"net/http"

	"todolist/internal/service"
)

// StatusError is returned for any non-2xx reply.
type StatusError struct {
	Method    string
	Path      string
	Code      int
	Body      string
	RequestID string
}

func (e *StatusError) Error() string {
	msg := fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.Code, http.StatusText(e.Code))
	if e.Body != "" {
		msg += ": " + e.Body
	}
	return msg
}

// Is reports 404 replies as service.ErrNotFound.
func (e *StatusError) Is(target error) bool {
	return target == service.ErrNotFound && e.Code == http.StatusNotFound
}

// SchemaError means the server replied 2xx with a payload of the wrong shape.
type SchemaError struct {
	Reason string
}

func (e *SchemaError) Error() string {
	return "unexpected response: " + e.Reason
}
