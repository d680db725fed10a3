package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/harlequingg/tasks-api/internal/storage"
	"github.com/harlequingg/tasks-api/internal/task"
)

func (s *Store) ListTasks(ctx context.Context) ([]task.Task, error) {
	query := `SELECT id, title, description, done
			  FROM tasks
			  ORDER BY id`
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := []task.Task{}
	for rows.Next() {
		var t task.Task
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.Done); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (s *Store) GetTask(ctx context.Context, id int64) (*task.Task, error) {
	query := `SELECT id, title, description, done
			  FROM tasks
			  WHERE id = $1`
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var t task.Task
	err := s.db.QueryRowContext(ctx, query, id).Scan(&t.ID, &t.Title, &t.Description, &t.Done)
	if err != nil {
		return nil, translateError(err)
	}
	return &t, nil
}

func (s *Store) InsertTask(ctx context.Context, t *task.Task) error {
	query := `INSERT INTO tasks (title, description, done)
			  VALUES ($1, $2, $3)
			  RETURNING id`
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	return s.db.QueryRowContext(ctx, query, t.Title, t.Description, t.Done).Scan(&t.ID)
}

func (s *Store) UpdateTask(ctx context.Context, id int64, fn func(*task.Task) error) (*task.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	var t task.Task
	err = tx.QueryRowContext(ctx, `SELECT id, title, description, done
			  FROM tasks
			  WHERE id = $1
			  FOR UPDATE`, id).Scan(&t.ID, &t.Title, &t.Description, &t.Done)
	if err != nil {
		return nil, translateError(err)
	}

	if err := fn(&t); err != nil {
		return nil, err
	}

	_, err = tx.ExecContext(ctx, `UPDATE tasks SET title = $1, description = $2, done = $3
			  WHERE id = $4`, t.Title, t.Description, t.Done, t.ID)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return &t, nil
}

func (s *Store) DeleteTask(ctx context.Context, id int64) error {
	query := `DELETE FROM tasks
			  WHERE id = $1`
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	return checkAffected(res)
}

func checkAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return storage.ErrNotFound
	}
	return nil
}
