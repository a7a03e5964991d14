// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/mock"
	"github.com/MKhiriev/go-todo-keeper/internal/store"
	"github.com/MKhiriev/go-todo-keeper/internal/utils"
	"github.com/MKhiriev/go-todo-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ─────────────────────────────────────────────
// In-memory store.TaskRepository
// ─────────────────────────────────────────────

type memTaskRepository struct {
	mu    sync.Mutex
	tasks map[string]models.Task
	clock func() time.Time
}

func newMemTaskRepository(clock func() time.Time) *memTaskRepository {
	return &memTaskRepository{tasks: make(map[string]models.Task), clock: clock}
}

func (m *memTaskRepository) matches(task models.Task, f store.TaskFilter) bool {
	if f.ID != "" && task.ID != f.ID {
		return false
	}
	if f.UserID != "" && task.UserID != f.UserID {
		return false
	}
	if !f.IncludeDeleted && task.DeletedAt != nil {
		return false
	}
	if f.Status != nil && task.Status != *f.Status {
		return false
	}
	if f.Priority != nil && task.Priority != *f.Priority {
		return false
	}
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		desc := ""
		if task.Desc != nil {
			desc = *task.Desc
		}
		if !strings.Contains(strings.ToLower(task.Title), needle) && !strings.Contains(strings.ToLower(desc), needle) {
			return false
		}
	}
	return true
}

func (m *memTaskRepository) filtered(f store.TaskFilter) []models.Task {
	var out []models.Task
	for _, task := range m.tasks {
		if m.matches(task, f) {
			out = append(out, task)
		}
	}
	slices.SortFunc(out, func(a, b models.Task) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(b.ID, a.ID)
	})
	return out
}

func (m *memTaskRepository) Find(_ context.Context, f store.TaskFilter, opts store.FindOptions) ([]models.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	all := m.filtered(f)
	start := min(int(opts.Skip), len(all))
	end := len(all)
	if opts.Limit > 0 {
		end = min(start+int(opts.Limit), len(all))
	}
	return append([]models.Task{}, all[start:end]...), nil
}

func (m *memTaskRepository) Count(_ context.Context, f store.TaskFilter) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.filtered(f))), nil
}

func (m *memTaskRepository) FindOne(_ context.Context, f store.TaskFilter) (models.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	all := m.filtered(f)
	if len(all) == 0 {
		return models.Task{}, store.ErrTaskNotFound
	}
	return all[0], nil
}

func (m *memTaskRepository) Insert(_ context.Context, task models.Task) (models.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	task.ID = utils.NewObjectID()
	task.CreatedAt = m.clock()
	task.UpdatedAt = task.CreatedAt
	m.tasks[task.ID] = task
	return task, nil
}

func (m *memTaskRepository) Save(_ context.Context, task models.Task) (models.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	old, ok := m.tasks[task.ID]
	if !ok || old.UserID != task.UserID {
		return models.Task{}, store.ErrTaskNotFound
	}
	task.CreatedAt = old.CreatedAt
	task.UpdatedAt = m.clock()
	m.tasks[task.ID] = task
	return task, nil
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

const (
	ownerA = "65f1a2b3c4d5e6f708192a3b"
	ownerB = "65f1a2b3c4d5e6f708192b4c"
)

// tickingClock returns strictly increasing instants so that creation order
// is observable.
func tickingClock() func() time.Time {
	var mu sync.Mutex
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		now = now.Add(time.Second)
		return now
	}
}

func newTestTaskSvc(t *testing.T) (*taskService, *memTaskRepository) {
	t.Helper()
	clock := tickingClock()
	repo := newMemTaskRepository(clock)
	svc := NewTaskService(repo, logger.Nop()).(*taskService)
	svc.now = clock
	return svc, repo
}

func mustCreate(t *testing.T, svc TaskService, owner, title string) models.Task {
	t.Helper()
	task, err := svc.Create(context.Background(), owner, models.CreateTaskRequest{Title: title})
	require.NoError(t, err)
	return task
}

func ptr[T any](v T) *T { return &v }

// ── Create ───────────────────────────────────────────────────────────────────

func TestTaskService_Create_Defaults(t *testing.T) {
	svc, _ := newTestTaskSvc(t)

	task, err := svc.Create(context.Background(), ownerA, models.CreateTaskRequest{Title: "  Buy milk  "})
	require.NoError(t, err)

	assert.Equal(t, "Buy milk", task.Title)
	assert.Equal(t, models.StatusWaiting, task.Status)
	assert.Equal(t, models.PriorityLow, task.Priority)
	assert.Equal(t, ownerA, task.UserID)
	assert.Nil(t, task.DueDate)
	assert.Nil(t, task.DeletedAt)
	assert.True(t, utils.IsValidObjectID(task.ID))
}

func TestTaskService_Create_DueDate(t *testing.T) {
	svc, _ := newTestTaskSvc(t)
	ctx := context.Background()

	tests := []struct {
		name string
		raw  string
		want time.Time
	}{
		{"rfc3339", "2026-05-01T10:00:00Z", time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)},
		{"offset", "2026-05-01T12:00:00+02:00", time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)},
		{"date only", "2026-05-01", time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)},
		{"no zone", "2026-05-01T10:30", time.Date(2026, 5, 1, 10, 30, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task, err := svc.Create(ctx, ownerA, models.CreateTaskRequest{Title: "t", DueDate: models.NullableOf(tt.raw)})
			require.NoError(t, err)
			require.NotNil(t, task.DueDate)
			assert.True(t, task.DueDate.Equal(tt.want), "got %v", task.DueDate)
		})
	}

	_, err := svc.Create(ctx, ownerA, models.CreateTaskRequest{Title: "t", DueDate: models.NullableOf("tomorrow-ish")})
	assert.ErrorIs(t, err, ErrInvalidDueDate)

	task, err := svc.Create(ctx, ownerA, models.CreateTaskRequest{Title: "t", DueDate: models.NullValue[string]()})
	require.NoError(t, err)
	assert.Nil(t, task.DueDate)
}

func TestTaskService_Create_DocumentValidation(t *testing.T) {
	svc, repo := newTestTaskSvc(t)

	_, err := svc.Create(context.Background(), ownerA, models.CreateTaskRequest{
		Title:    strings.Repeat("a", 101),
		Priority: ptr(models.Priority("urgent")),
		Image:    models.NullableOf("ftp://example.com/a.png"),
	})
	require.ErrorIs(t, err, ErrTaskValidation)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	paths := make([]string, 0, len(vErr.Issues))
	for _, issue := range vErr.Issues {
		paths = append(paths, issue.Path)
	}
	assert.ElementsMatch(t, []string{"title", "priority", "image"}, paths)
	assert.Empty(t, repo.tasks, "invalid task must not be stored")
}

func TestTaskService_Create_InvalidOwner(t *testing.T) {
	svc, _ := newTestTaskSvc(t)

	_, err := svc.Create(context.Background(), "not-an-id", models.CreateTaskRequest{Title: "t"})
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestTaskService_Create_ConstraintViolation(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockTaskRepository(ctrl)
	svc := NewTaskService(repo, logger.Nop())

	repo.EXPECT().Insert(gomock.Any(), gomock.Any()).
		Return(models.Task{}, &store.ConstraintError{Constraint: "tasks_title_check", Err: errors.New("check")})

	_, err := svc.Create(context.Background(), ownerA, models.CreateTaskRequest{Title: "t"})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "title", vErr.Issues[0].Path)
}

// ── List ─────────────────────────────────────────────────────────────────────

func TestTaskService_List_PaginationLaw(t *testing.T) {
	svc, _ := newTestTaskSvc(t)
	ctx := context.Background()

	for i := range 45 {
		mustCreate(t, svc, ownerA, fmt.Sprintf("task %02d", i))
	}

	seen := make(map[string]bool)
	for page := 1; page <= 3; page++ {
		res, err := svc.List(ctx, ownerA, models.ListTasksQuery{Page: page, Limit: 20})
		require.NoError(t, err)

		assert.Equal(t, int64(45), res.Pagination.Total)
		assert.Equal(t, 3, res.Pagination.TotalPages)
		assert.Equal(t, min(20, 45-(page-1)*20), len(res.Tasks))
		for _, task := range res.Tasks {
			assert.False(t, seen[task.ID], "task %s returned twice", task.ID)
			seen[task.ID] = true
		}
	}
	assert.Len(t, seen, 45)

	first, err := svc.List(ctx, ownerA, models.ListTasksQuery{})
	require.NoError(t, err)
	assert.Equal(t, "task 44", first.Tasks[0].Title, "newest first")
}

func TestTaskService_List_Clamping(t *testing.T) {
	svc, _ := newTestTaskSvc(t)
	ctx := context.Background()

	res, err := svc.List(ctx, ownerA, models.ListTasksQuery{})
	require.NoError(t, err)
	assert.Equal(t, models.Pagination{Total: 0, Page: 1, Limit: 20, TotalPages: 0}, res.Pagination)
	assert.NotNil(t, res.Tasks)

	res, err = svc.List(ctx, ownerA, models.ListTasksQuery{Page: -3, Limit: 1000})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Pagination.Page)
	assert.Equal(t, MaxLimit, res.Pagination.Limit)

	res, err = svc.List(ctx, ownerA, models.ListTasksQuery{Limit: -5})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Pagination.Limit)
}

func TestTaskService_List_Filters(t *testing.T) {
	svc, _ := newTestTaskSvc(t)
	ctx := context.Background()

	mustCreate(t, svc, ownerA, "Buy milk")
	_, err := svc.Create(ctx, ownerA, models.CreateTaskRequest{
		Title: "Write report", Desc: ptr("quarterly MILK numbers"), Priority: ptr(models.PriorityHigh),
	})
	require.NoError(t, err)
	_, err = svc.Create(ctx, ownerA, models.CreateTaskRequest{Title: "Gym", Status: ptr(models.StatusFinished)})
	require.NoError(t, err)

	res, err := svc.List(ctx, ownerA, models.ListTasksQuery{Search: "milk"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), res.Pagination.Total)

	res, err = svc.List(ctx, ownerA, models.ListTasksQuery{Priority: ptr(models.PriorityHigh)})
	require.NoError(t, err)
	require.Len(t, res.Tasks, 1)
	assert.Equal(t, "Write report", res.Tasks[0].Title)

	res, err = svc.List(ctx, ownerA, models.ListTasksQuery{Status: ptr(models.StatusFinished)})
	require.NoError(t, err)
	require.Len(t, res.Tasks, 1)
	assert.Equal(t, "Gym", res.Tasks[0].Title)
}

func TestTaskService_List_InvalidOwner(t *testing.T) {
	svc, _ := newTestTaskSvc(t)

	_, err := svc.List(context.Background(), "nope", models.ListTasksQuery{})
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestTaskService_List_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockTaskRepository(ctrl)
	svc := NewTaskService(repo, logger.Nop())

	dbErr := errors.New("db down")
	repo.EXPECT().Find(gomock.Any(), gomock.Any(), store.FindOptions{Skip: 20, Limit: 20}).Return(nil, dbErr)

	_, err := svc.List(context.Background(), ownerA, models.ListTasksQuery{Page: 2})
	assert.ErrorIs(t, err, dbErr)
}

func TestTaskService_List_PageOffsetOverflow(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockTaskRepository(ctrl)
	svc := NewTaskService(repo, logger.Nop())

	repo.EXPECT().Find(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(int64(5), nil)

	res, err := svc.List(context.Background(), ownerA, models.ListTasksQuery{Page: 100000000000000000, Limit: 100})

	require.NoError(t, err)
	assert.Empty(t, res.Tasks)
	assert.NotNil(t, res.Tasks)
	assert.Equal(t, models.Pagination{Total: 5, Page: 100000000000000000, Limit: 100, TotalPages: 1}, res.Pagination)
}

func TestTaskService_List_PastLastPage(t *testing.T) {
	svc, _ := newTestTaskSvc(t)
	mustCreate(t, svc, ownerA, "only")

	res, err := svc.List(context.Background(), ownerA, models.ListTasksQuery{Page: 2147483647, Limit: 100})

	require.NoError(t, err)
	assert.Empty(t, res.Tasks)
	assert.Equal(t, int64(1), res.Pagination.Total)
}

func TestPageOffset(t *testing.T) {
	skip, ok := pageOffset(3, 20)
	assert.True(t, ok)
	assert.Equal(t, uint64(40), skip)

	skip, ok = pageOffset(2147483647, 100)
	assert.True(t, ok)
	assert.Equal(t, uint64(214748364600), skip)

	_, ok = pageOffset(math.MaxInt, 2)
	assert.False(t, ok)
}

// ── Soft delete & ownership ──────────────────────────────────────────────────

func TestTaskService_SoftDeleteVisibility(t *testing.T) {
	svc, _ := newTestTaskSvc(t)
	ctx := context.Background()

	task := mustCreate(t, svc, ownerA, "Buy milk")
	require.NoError(t, svc.Remove(ctx, ownerA, task.ID))

	_, err := svc.Get(ctx, ownerA, task.ID)
	assert.ErrorIs(t, err, store.ErrTaskNotFound)

	_, err = svc.Update(ctx, ownerA, task.ID, models.UpdateTaskRequest{Title: ptr("x")})
	assert.ErrorIs(t, err, store.ErrTaskNotFound)

	assert.ErrorIs(t, svc.Remove(ctx, ownerA, task.ID), store.ErrTaskNotFound)

	res, err := svc.List(ctx, ownerA, models.ListTasksQuery{})
	require.NoError(t, err)
	assert.Zero(t, res.Pagination.Total)

	res, err = svc.List(ctx, ownerA, models.ListTasksQuery{IncludeDeleted: true})
	require.NoError(t, err)
	require.Len(t, res.Tasks, 1)
	require.NotNil(t, res.Tasks[0].DeletedAt)
}

func TestTaskService_OwnershipIsolation(t *testing.T) {
	svc, _ := newTestTaskSvc(t)
	ctx := context.Background()

	task := mustCreate(t, svc, ownerA, "private")

	_, err := svc.Get(ctx, ownerB, task.ID)
	assert.ErrorIs(t, err, store.ErrTaskNotFound)

	_, err = svc.Update(ctx, ownerB, task.ID, models.UpdateTaskRequest{Title: ptr("stolen")})
	assert.ErrorIs(t, err, store.ErrTaskNotFound)

	assert.ErrorIs(t, svc.Remove(ctx, ownerB, task.ID), store.ErrTaskNotFound)

	res, err := svc.List(ctx, ownerB, models.ListTasksQuery{IncludeDeleted: true})
	require.NoError(t, err)
	assert.Empty(t, res.Tasks)

	got, err := svc.Get(ctx, ownerA, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "private", got.Title)
}

func TestTaskService_Get_MalformedID(t *testing.T) {
	svc, _ := newTestTaskSvc(t)

	_, err := svc.Get(context.Background(), ownerA, "xyz")
	assert.ErrorIs(t, err, store.ErrTaskNotFound)

	task := mustCreate(t, svc, ownerA, "t")
	got, err := svc.Get(context.Background(), ownerA, strings.ToUpper(task.ID))
	require.NoError(t, err)
	assert.Equal(t, task.ID, got.ID)
}

// ── Update ───────────────────────────────────────────────────────────────────

func TestTaskService_Update_PartialLaw(t *testing.T) {
	svc, _ := newTestTaskSvc(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, ownerA, models.CreateTaskRequest{
		Title:   "Buy milk",
		Desc:    ptr("2 liters"),
		DueDate: models.NullableOf("2026-05-01"),
		Image:   models.NullableOf("https://cdn.example.com/milk.png"),
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, ownerA, created.ID, models.UpdateTaskRequest{Status: ptr(models.StatusInProgress)})
	require.NoError(t, err)

	assert.Equal(t, models.StatusInProgress, updated.Status)
	assert.Equal(t, created.Title, updated.Title)
	assert.Equal(t, created.Desc, updated.Desc)
	assert.Equal(t, created.Priority, updated.Priority)
	assert.Equal(t, created.DueDate, updated.DueDate)
	assert.Equal(t, created.Image, updated.Image)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))
}

func TestTaskService_Update_NullClears(t *testing.T) {
	svc, _ := newTestTaskSvc(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, ownerA, models.CreateTaskRequest{
		Title:   "Buy milk",
		DueDate: models.NullableOf("2026-05-01"),
		Image:   models.NullableOf("https://cdn.example.com/milk.png"),
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, ownerA, created.ID, models.UpdateTaskRequest{
		DueDate: models.NullValue[string](),
		Image:   models.NullValue[string](),
	})
	require.NoError(t, err)
	assert.Nil(t, updated.DueDate)
	assert.Nil(t, updated.Image)
}

func TestTaskService_Update_Validation(t *testing.T) {
	svc, _ := newTestTaskSvc(t)
	ctx := context.Background()

	created := mustCreate(t, svc, ownerA, "Buy milk")

	_, err := svc.Update(ctx, ownerA, created.ID, models.UpdateTaskRequest{Title: ptr("   ")})
	assert.ErrorIs(t, err, ErrTaskValidation)

	_, err = svc.Update(ctx, ownerA, created.ID, models.UpdateTaskRequest{DueDate: models.NullableOf("32/13/2026")})
	assert.ErrorIs(t, err, ErrInvalidDueDate)
}

// ── Example scenario ─────────────────────────────────────────────────────────

func TestTaskService_Update_NoChanges(t *testing.T) {
	svc, repo := newTestTaskSvc(t)
	task := mustCreate(t, svc, ownerA, "keep")

	_, err := svc.Update(context.Background(), ownerA, task.ID, models.UpdateTaskRequest{})

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "At least one field must be provided", vErr.Issues[0].Message)
	assert.Equal(t, task.UpdatedAt, repo.tasks[task.ID].UpdatedAt, "nothing is saved")

	_, err = svc.Update(context.Background(), ownerB, task.ID, models.UpdateTaskRequest{})
	assert.ErrorIs(t, err, store.ErrTaskNotFound)
}

func TestTaskService_CreateThenList(t *testing.T) {
	svc, _ := newTestTaskSvc(t)
	ctx := context.Background()

	task := mustCreate(t, svc, ownerA, "Buy milk")
	assert.Equal(t, models.StatusWaiting, task.Status)
	assert.Equal(t, models.PriorityLow, task.Priority)

	res, err := svc.List(ctx, ownerA, models.ListTasksQuery{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.Pagination.Total)
	assert.Equal(t, 1, res.Pagination.TotalPages)
	require.Len(t, res.Tasks, 1)
	assert.Equal(t, task.ID, res.Tasks[0].ID)
}
