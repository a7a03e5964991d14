// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/store"
	"github.com/MKhiriev/go-todo-keeper/internal/utils"
	"github.com/MKhiriev/go-todo-keeper/models"
)

// Paging defaults for [TaskService.List].
const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100
)

// dueDateLayouts are tried in order when parsing a due date. Values without
// a zone are read as UTC.
var dueDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
	time.RFC1123Z,
	time.RFC1123,
}

type taskService struct {
	taskRepository store.TaskRepository
	logger         *logger.Logger
	now            func() time.Time
}

// NewTaskService constructs a TaskService over taskRepository.
func NewTaskService(taskRepository store.TaskRepository, logger *logger.Logger) TaskService {
	return &taskService{
		taskRepository: taskRepository,
		logger:         logger,
		now:            time.Now,
	}
}

// List returns one page of the user's tasks, newest first.
//
// Page is clamped to at least 1 and limit to [1, MaxLimit]; zero values mean
// DefaultPage and DefaultLimit. TotalPages is 0 when there are no tasks.
func (s *taskService) List(ctx context.Context, userID string, query models.ListTasksQuery) (models.TaskPage, error) {
	log := logger.FromContext(ctx)

	owner, ok := utils.NormalizeObjectID(userID)
	if !ok {
		return models.TaskPage{}, store.ErrUserNotFound
	}

	page, limit := clampPage(query.Page, query.Limit)
	filter := store.TaskFilter{
		UserID:         owner,
		IncludeDeleted: query.IncludeDeleted,
		Status:         query.Status,
		Priority:       query.Priority,
		Search:         strings.TrimSpace(query.Search),
	}

	// pages whose offset does not fit a bigint are past the end anyway
	tasks := []models.Task{}
	if skip, ok := pageOffset(page, limit); ok {
		found, err := s.taskRepository.Find(ctx, filter, store.FindOptions{
			Skip:  skip,
			Limit: uint64(limit),
		})
		if err != nil {
			log.Err(err).Str("func", "taskService.List").Msg("error finding tasks")
			return models.TaskPage{}, fmt.Errorf("error finding tasks: %w", err)
		}
		tasks = found
	}

	total, err := s.taskRepository.Count(ctx, filter)
	if err != nil {
		log.Err(err).Str("func", "taskService.List").Msg("error counting tasks")
		return models.TaskPage{}, fmt.Errorf("error counting tasks: %w", err)
	}

	return models.TaskPage{
		Tasks: tasks,
		Pagination: models.Pagination{
			Total:      total,
			Page:       page,
			Limit:      limit,
			TotalPages: totalPages(total, limit),
		},
	}, nil
}

// Get returns the active task id owned by userID. Malformed, unknown,
// foreign and soft-deleted ids all yield store.ErrTaskNotFound.
func (s *taskService) Get(ctx context.Context, userID, id string) (models.Task, error) {
	filter, ok := ownedTaskFilter(userID, id)
	if !ok {
		return models.Task{}, store.ErrTaskNotFound
	}

	task, err := s.taskRepository.FindOne(ctx, filter)
	if err != nil {
		if !errors.Is(err, store.ErrTaskNotFound) {
			logger.FromContext(ctx).Err(err).Str("func", "taskService.Get").Msg("error loading task")
		}
		return models.Task{}, fmt.Errorf("error loading task: %w", err)
	}

	return task, nil
}

// Create stores a new task for userID with defaults low/waiting.
func (s *taskService) Create(ctx context.Context, userID string, req models.CreateTaskRequest) (models.Task, error) {
	owner, ok := utils.NormalizeObjectID(userID)
	if !ok {
		return models.Task{}, store.ErrUserNotFound
	}

	task := models.Task{
		UserID:   owner,
		Title:    strings.TrimSpace(req.Title),
		Desc:     trimmed(req.Desc),
		Priority: models.PriorityLow,
		Status:   models.StatusWaiting,
	}
	if req.Priority != nil {
		task.Priority = *req.Priority
	}
	if req.Status != nil {
		task.Status = *req.Status
	}
	if req.Image.HasValue() {
		task.Image = trimmed(&req.Image.Value)
	}

	dueDate, apply, err := parseDueDate(req.DueDate)
	if err != nil {
		return models.Task{}, err
	}
	if apply {
		task.DueDate = dueDate
	}

	if err = validateTask(task); err != nil {
		return models.Task{}, err
	}

	created, err := s.taskRepository.Insert(ctx, task)
	if err != nil {
		return models.Task{}, s.writeError(ctx, "taskService.Create", err)
	}

	return created, nil
}

// Update applies the fields present in req to the active task id owned by
// userID. An explicit null clears dueDate or image. A request without any
// field fails with a [*ValidationError].
func (s *taskService) Update(ctx context.Context, userID, id string, req models.UpdateTaskRequest) (models.Task, error) {
	task, err := s.Get(ctx, userID, id)
	if err != nil {
		return models.Task{}, err
	}
	if !req.HasChanges() {
		return models.Task{}, &ValidationError{Issues: []models.ValidationIssue{{
			Path:    "todo",
			Message: "At least one field must be provided",
		}}}
	}

	dueDate, apply, err := parseDueDate(req.DueDate)
	if err != nil {
		return models.Task{}, err
	}
	if apply {
		task.DueDate = dueDate
	}

	if req.Title != nil {
		task.Title = strings.TrimSpace(*req.Title)
	}
	if req.Desc != nil {
		task.Desc = trimmed(req.Desc)
	}
	if req.Priority != nil {
		task.Priority = *req.Priority
	}
	if req.Status != nil {
		task.Status = *req.Status
	}
	if req.Image.Set {
		task.Image = nil
		if !req.Image.Null {
			task.Image = trimmed(&req.Image.Value)
		}
	}

	if err = validateTask(task); err != nil {
		return models.Task{}, err
	}

	saved, err := s.taskRepository.Save(ctx, task)
	if err != nil {
		return models.Task{}, s.writeError(ctx, "taskService.Update", err)
	}

	return saved, nil
}

// Remove soft-deletes the active task id owned by userID.
func (s *taskService) Remove(ctx context.Context, userID, id string) error {
	task, err := s.Get(ctx, userID, id)
	if err != nil {
		return err
	}

	now := s.now().UTC()
	task.DeletedAt = &now

	if _, err = s.taskRepository.Save(ctx, task); err != nil {
		return s.writeError(ctx, "taskService.Remove", err)
	}

	return nil
}

// writeError turns constraint violations into a [ValidationError] and wraps
// everything else.
func (s *taskService) writeError(ctx context.Context, fn string, err error) error {
	var cErr *store.ConstraintError
	if errors.As(err, &cErr) {
		return constraintValidationError(cErr)
	}
	if errors.Is(err, store.ErrTaskNotFound) {
		return err
	}

	logger.FromContext(ctx).Err(err).Str("func", fn).Msg("error saving task")
	return fmt.Errorf("error saving task: %w", err)
}

func ownedTaskFilter(userID, id string) (store.TaskFilter, bool) {
	owner, ok := utils.NormalizeObjectID(userID)
	if !ok {
		return store.TaskFilter{}, false
	}
	taskID, ok := utils.NormalizeObjectID(strings.TrimSpace(id))
	if !ok {
		return store.TaskFilter{}, false
	}

	return store.TaskFilter{ID: taskID, UserID: owner}, true
}

func clampPage(page, limit int) (int, int) {
	if page == 0 {
		page = DefaultPage
	}
	if limit == 0 {
		limit = DefaultLimit
	}

	return max(page, DefaultPage), min(max(limit, 1), MaxLimit)
}

// pageOffset returns the number of rows before page, or false when it
// exceeds math.MaxInt64.
func pageOffset(page, limit int) (uint64, bool) {
	if uint64(page-1) > math.MaxInt64/uint64(limit) {
		return 0, false
	}

	return uint64(page-1) * uint64(limit), true
}

func totalPages(total int64, limit int) int {
	if total == 0 {
		return 0
	}

	return int((total + int64(limit) - 1) / int64(limit))
}

// parseDueDate resolves the tri-state due date. apply is false when the
// field was absent; a nil time with apply set clears the due date.
func parseDueDate(raw models.Nullable[string]) (*time.Time, bool, error) {
	if !raw.Set {
		return nil, false, nil
	}
	if raw.Null {
		return nil, true, nil
	}

	value := strings.TrimSpace(raw.Value)
	for _, layout := range dueDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			t = t.UTC()
			return &t, true, nil
		}
	}

	return nil, false, ErrInvalidDueDate
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}

	v := strings.TrimSpace(*s)
	return &v
}
