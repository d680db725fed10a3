package task

import (
	"context"
	"errors"

	"github.com/harlequingg/tasks-api/internal/apperr"
	"github.com/harlequingg/tasks-api/internal/storage"
	"github.com/harlequingg/tasks-api/internal/validator"
)

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// List returns every task in insertion order.
func (s *Service) List(ctx context.Context) ([]Task, error) {
	tasks, err := s.store.ListTasks(ctx)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	if tasks == nil {
		tasks = []Task{}
	}
	return tasks, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*Task, error) {
	t, err := s.store.GetTask(ctx, id)
	if err != nil {
		return nil, translate(err, id)
	}
	return t, nil
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*Task, error) {
	v := validator.New()
	v.Check(validator.Provided(in.Title), "title", "the 'title' field is required.")
	if !v.Valid() {
		return nil, apperr.Validation("%s", v.String())
	}

	t := &Task{Title: *in.Title}
	if in.Description != nil {
		t.Description = *in.Description
	}
	if in.Done != nil {
		t.Done = *in.Done
	}
	if err := s.store.InsertTask(ctx, t); err != nil {
		return nil, apperr.Storage(err)
	}
	return t, nil
}

// Update merges p into the task with the given id. A nil patch means the
// request carried no body and is rejected once the task is known to exist.
// Title is not re-validated, so a patch may set it to "".
func (s *Service) Update(ctx context.Context, id int64, p *Patch) (*Task, error) {
	t, err := s.store.UpdateTask(ctx, id, func(t *Task) error {
		if p == nil {
			return apperr.Validation("a JSON request body is required.")
		}
		p.apply(t)
		return nil
	})
	if err != nil {
		return nil, translate(err, id)
	}
	return t, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.store.DeleteTask(ctx, id); err != nil {
		return translate(err, id)
	}
	return nil
}

func translate(err error, id int64) error {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return apperr.NotFound("task with ID %d not found.", id)
	case apperr.KindOf(err) != apperr.KindUnknown:
		return err
	default:
		return apperr.Storage(err)
	}
}
