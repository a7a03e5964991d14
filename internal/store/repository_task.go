// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/utils"
	"github.com/MKhiriev/go-todo-keeper/models"
)

// taskRepository is the PostgreSQL-backed implementation of
// [TaskRepository] over the "tasks" table.
type taskRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

// NewTaskRepository constructs a [TaskRepository] backed by db.
func NewTaskRepository(db *DB, logger *logger.Logger) TaskRepository {
	logger.Debug().Msg("creating task repository")
	return &taskRepository{
		DB:     db,
		logger: logger,
		now:    time.Now,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (models.Task, error) {
	var (
		task             models.Task
		priority, status string
	)

	err := row.Scan(
		&task.ID,
		&task.UserID,
		&task.Title,
		&task.Desc,
		&priority,
		&status,
		&task.DueDate,
		&task.Image,
		&task.DeletedAt,
		&task.CreatedAt,
		&task.UpdatedAt,
	)
	task.Priority = models.Priority(priority)
	task.Status = models.Status(status)

	return task, err
}

// Find returns the tasks matching filter ordered and paged by opts. The
// result is never nil.
func (t *taskRepository) Find(ctx context.Context, filter TaskFilter, opts FindOptions) ([]models.Task, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindTasksQuery(filter, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := t.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "taskRepository.Find").
			Str("user_id", filter.UserID).
			Msg("failed to execute query for finding tasks")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	tasks := make([]models.Task, 0, opts.Limit)
	for rows.Next() {
		task, scanErr := scanTask(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "taskRepository.Find").
				Str("user_id", filter.UserID).
				Msg("failed to scan task row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		tasks = append(tasks, task)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "taskRepository.Find").
			Str("user_id", filter.UserID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return tasks, nil
}

// Count returns the number of tasks matching filter.
func (t *taskRepository) Count(ctx context.Context, filter TaskFilter) (int64, error) {
	query, args, err := buildCountTasksQuery(filter)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int64
	if err = t.DB.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "taskRepository.Count").
			Str("user_id", filter.UserID).
			Msg("failed to count tasks")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return total, nil
}

// FindOne returns the first task matching filter or [ErrTaskNotFound].
func (t *taskRepository) FindOne(ctx context.Context, filter TaskFilter) (models.Task, error) {
	query, args, err := buildFindOneTaskQuery(filter)
	if err != nil {
		return models.Task{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	task, err := scanTask(t.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Task{}, ErrTaskNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "taskRepository.FindOne").
			Str("task_id", filter.ID).
			Msg("failed to select task")
		return models.Task{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return task, nil
}

// Insert assigns a fresh id and stores task. Timestamps come from the
// database defaults.
func (t *taskRepository) Insert(ctx context.Context, task models.Task) (models.Task, error) {
	task.ID = utils.NewObjectID()

	query, args, err := buildInsertTaskQuery(task)
	if err != nil {
		return models.Task{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = t.DB.QueryRowContext(ctx, query, args...).Scan(&task.CreatedAt, &task.UpdatedAt); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "taskRepository.Insert").
			Str("user_id", task.UserID).
			Str("class", t.classify(err)).
			Msg("failed to insert task")
		if cErr := constraintError(err); cErr != err {
			return models.Task{}, cErr
		}
		return models.Task{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return task, nil
}

// Save overwrites the mutable columns of the task identified by task.ID and
// task.UserID and bumps updated_at.
func (t *taskRepository) Save(ctx context.Context, task models.Task) (models.Task, error) {
	query, args, err := buildUpdateTaskQuery(task, t.now().UTC())
	if err != nil {
		return models.Task{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = t.DB.QueryRowContext(ctx, query, args...).Scan(&task.CreatedAt, &task.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Task{}, ErrTaskNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "taskRepository.Save").
			Str("task_id", task.ID).
			Str("class", t.classify(err)).
			Msg("failed to update task")
		if cErr := constraintError(err); cErr != err {
			return models.Task{}, cErr
		}
		return models.Task{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return task, nil
}
