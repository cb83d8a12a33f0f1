// Package service defines the backend-agnostic interface for task operations.
package service

import (
	"context"
	"errors"
)

// ErrNotFound is matched (via errors.Is) by backend errors for a missing task.
var ErrNotFound = errors.New("not found")

// Service defines the interface for task backend operations.
// All calls to the remote CRUD endpoint go through this interface.
// The list view and commands never build HTTP requests themselves.
type Service interface {
	// ListTasks returns every task in server order.
	ListTasks(ctx context.Context) ([]Task, error)

	// CreateTask creates a task. The server assigns the ID.
	CreateTask(ctx context.Context, in TaskInput) (Task, error)

	// UpdateTask replaces the fields of the task with the given ID.
	UpdateTask(ctx context.Context, id int, in TaskInput) (Task, error)

	// DeleteTask removes the task with the given ID.
	DeleteTask(ctx context.Context, id int) error
}
