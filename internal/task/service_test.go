package task_test

import (
	"context"
	"errors"
	"testing"

	"github.com/harlequingg/tasks-api/internal/apperr"
	"github.com/harlequingg/tasks-api/internal/storage/sqlite"
	"github.com/harlequingg/tasks-api/internal/task"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func newService(t *testing.T) *task.Service {
	t.Helper()
	s, err := sqlite.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return task.NewService(s)
}

func TestService_CreateDefaults(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	created, err := svc.Create(ctx, task.CreateInput{Title: ptr("Buy milk")})
	require.NoError(t, err)
	assert.Equal(t, task.Task{ID: 1, Title: "Buy milk", Description: "", Done: false}, *created)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, *created, *got)
}

func TestService_CreateRequiresTitle(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	tests := []struct {
		name string
		in   task.CreateInput
	}{
		{"missing", task.CreateInput{Description: ptr("no title")}},
		{"empty", task.CreateInput{Title: ptr("")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tt.in)
			require.Error(t, err)
			assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
			assert.Contains(t, err.Error(), "'title' field is required")
		})
	}

	tasks, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, tasks)
	assert.NotNil(t, tasks)
}

func TestService_UnknownID(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	_, err := svc.Get(ctx, 999)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	assert.EqualError(t, err, "task with ID 999 not found.")

	_, err = svc.Update(ctx, 999, &task.Patch{Title: ptr("x")})
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	assert.Contains(t, err.Error(), "999")

	// Unknown id wins over a missing body.
	_, err = svc.Update(ctx, 999, nil)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	err = svc.Delete(ctx, 999)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	tasks, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestService_UpdatePartial(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	created, err := svc.Create(ctx, task.CreateInput{
		Title:       ptr("Old task"),
		Description: ptr("Old description"),
	})
	require.NoError(t, err)

	tests := []struct {
		name  string
		patch task.Patch
		want  task.Task
	}{
		{
			name:  "empty patch keeps everything",
			patch: task.Patch{},
			want:  task.Task{ID: created.ID, Title: "Old task", Description: "Old description"},
		},
		{
			name:  "done only",
			patch: task.Patch{Done: ptr(true)},
			want:  task.Task{ID: created.ID, Title: "Old task", Description: "Old description", Done: true},
		},
		{
			name:  "title and description",
			patch: task.Patch{Title: ptr("New task"), Description: ptr("")},
			want:  task.Task{ID: created.ID, Title: "New task", Description: "", Done: true},
		},
		{
			name:  "empty title is accepted",
			patch: task.Patch{Title: ptr(""), Done: ptr(false)},
			want:  task.Task{ID: created.ID, Title: "", Description: "", Done: false},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.patch
			updated, err := svc.Update(ctx, created.ID, &p)
			require.NoError(t, err)
			assert.Equal(t, tt.want, *updated)

			got, err := svc.Get(ctx, created.ID)
			require.NoError(t, err)
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestService_UpdateRequiresBody(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	created, err := svc.Create(ctx, task.CreateInput{Title: ptr("Stay")})
	require.NoError(t, err)

	_, err = svc.Update(ctx, created.ID, nil)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Stay", got.Title)
}

func TestService_DeleteIsTerminal(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	created, err := svc.Create(ctx, task.CreateInput{Title: ptr("Delete me")})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))
	_, err = svc.Get(ctx, created.ID)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(svc.Delete(ctx, created.ID)))
}

func TestService_ListInsertionOrder(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	for _, title := range []string{"one", "two", "three"} {
		_, err := svc.Create(ctx, task.CreateInput{Title: ptr(title)})
		require.NoError(t, err)
	}
	tasks, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	assert.Equal(t, "one", tasks[0].Title)
	assert.Equal(t, "three", tasks[2].Title)
}

type brokenStore struct {
	task.Store
	err error
}

func (b brokenStore) ListTasks(context.Context) ([]task.Task, error) { return nil, b.err }
func (b brokenStore) InsertTask(context.Context, *task.Task) error   { return b.err }
func (b brokenStore) GetTask(context.Context, int64) (*task.Task, error) {
	return nil, b.err
}

func TestService_StorageFaults(t *testing.T) {
	ctx := context.Background()
	cause := errors.New("database is locked")
	svc := task.NewService(brokenStore{err: cause})

	_, err := svc.List(ctx)
	assert.Equal(t, apperr.KindStorage, apperr.KindOf(err))
	assert.ErrorIs(t, err, cause)

	_, err = svc.Create(ctx, task.CreateInput{Title: ptr("x")})
	assert.Equal(t, apperr.KindStorage, apperr.KindOf(err))

	_, err = svc.Get(ctx, 1)
	assert.Equal(t, apperr.KindStorage, apperr.KindOf(err))
}
