// Package task implements the rules for creating, reading, updating and
// deleting task records.
package task

import "context"

type Task struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Done        bool   `json:"done"`
}

// CreateInput carries the fields of a new task. Nil means the client omitted
// the field.
type CreateInput struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Done        *bool   `json:"done"`
}

// Patch is a partial update. Only non-nil fields are applied.
type Patch struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Done        *bool   `json:"done"`
}

func (p *Patch) apply(t *Task) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Done != nil {
		t.Done = *p.Done
	}
}

// Store persists tasks. Implementations return storage.ErrNotFound for
// unknown ids.
type Store interface {
	ListTasks(ctx context.Context) ([]Task, error)
	GetTask(ctx context.Context, id int64) (*Task, error)
	// InsertTask assigns t.ID.
	InsertTask(ctx context.Context, t *Task) error
	// UpdateTask loads the task, calls fn on it and saves the result in one
	// transaction. An error from fn aborts the transaction and is returned
	// unchanged.
	UpdateTask(ctx context.Context, id int64, fn func(*Task) error) (*Task, error)
	DeleteTask(ctx context.Context, id int64) error
}
