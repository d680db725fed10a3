package sqlite

import (
	"context"

	"github.com/harlequingg/tasks-api/internal/storage"
	"github.com/harlequingg/tasks-api/internal/task"
	"gorm.io/gorm"
)

func (m taskModel) toTask() task.Task {
	return task.Task{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Done:        m.Done,
	}
}

func (s *Store) ListTasks(ctx context.Context) ([]task.Task, error) {
	var models []taskModel
	if err := s.db.WithContext(ctx).Order("id").Find(&models).Error; err != nil {
		return nil, err
	}
	tasks := make([]task.Task, 0, len(models))
	for _, m := range models {
		tasks = append(tasks, m.toTask())
	}
	return tasks, nil
}

func (s *Store) GetTask(ctx context.Context, id int64) (*task.Task, error) {
	var m taskModel
	if err := s.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, translateError(err)
	}
	t := m.toTask()
	return &t, nil
}

func (s *Store) InsertTask(ctx context.Context, t *task.Task) error {
	m := taskModel{
		Title:       t.Title,
		Description: t.Description,
		Done:        t.Done,
	}
	if err := s.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	t.ID = m.ID
	return nil
}

func (s *Store) UpdateTask(ctx context.Context, id int64, fn func(*task.Task) error) (*task.Task, error) {
	var updated task.Task
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m taskModel
		if err := tx.First(&m, id).Error; err != nil {
			return translateError(err)
		}
		t := m.toTask()
		if err := fn(&t); err != nil {
			return err
		}
		m.Title, m.Description, m.Done = t.Title, t.Description, t.Done
		if err := tx.Save(&m).Error; err != nil {
			return err
		}
		updated = m.toTask()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *Store) DeleteTask(ctx context.Context, id int64) error {
	res := s.db.WithContext(ctx).Delete(&taskModel{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return storage.ErrNotFound
	}
	return nil
}
