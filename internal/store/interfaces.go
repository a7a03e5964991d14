// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

package store

import (
	"context"
	"io"

	"github.com/MKhiriev/go-todo-keeper/models"
)

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser hashes user.Password, assigns an id and inserts the row.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByPhone(ctx context.Context, phone string) (models.User, error)
	FindUserByID(ctx context.Context, id string) (models.User, error)
	DeleteUserByID(ctx context.Context, id string) error
}

// TaskRepository persists todo items. Every read goes through a [TaskFilter].
type TaskRepository interface {
	Find(ctx context.Context, filter TaskFilter, opts FindOptions) ([]models.Task, error)
	Count(ctx context.Context, filter TaskFilter) (int64, error)
	FindOne(ctx context.Context, filter TaskFilter) (models.Task, error)
	// Insert assigns an id and timestamps and stores task.
	Insert(ctx context.Context, task models.Task) (models.Task, error)
	// Save overwrites every mutable column of an existing task.
	Save(ctx context.Context, task models.Task) (models.Task, error)
}

// ImageStorage stores uploaded image files under a flat directory.
type ImageStorage interface {
	// Save writes at most maxBytes from r into a file named name and returns
	// the number of bytes written. Larger payloads fail with
	// [ErrImageTooLarge] and leave no file behind.
	Save(ctx context.Context, name string, r io.Reader, maxBytes int64) (int64, error)
	// Dir is the directory files are written to.
	Dir() string
}

// TaskFilter selects tasks. Zero fields do not constrain the result, except
// IncludeDeleted: soft-deleted tasks are excluded unless it is true.
type TaskFilter struct {
	ID             string
	UserID         string
	IncludeDeleted bool
	Status         *models.Status
	Priority       *models.Priority
	// Search is matched case-insensitively as a substring of the title or
	// the description.
	Search string
}

// FindOptions controls ordering and paging of [TaskRepository.Find].
type FindOptions struct {
	// Sort is a list of ORDER BY expressions; empty means newest first.
	Sort  []string
	Skip  uint64
	Limit uint64
}
