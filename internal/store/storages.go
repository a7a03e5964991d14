// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"github.com/MKhiriev/go-todo-keeper/internal/config"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
)

// Storages groups every persistence component used by the service layer.
type Storages struct {
	UserRepository UserRepository
	TaskRepository TaskRepository
	ImageStorage   ImageStorage
}

// NewStorages wires the PostgreSQL repositories on top of db and the image
// storage on top of the configured uploads directory.
func NewStorages(db *DB, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	images, err := NewImageFileStorage(cfg.Files.UploadsDir, logger)
	if err != nil {
		return nil, err
	}

	return &Storages{
		UserRepository: NewUserRepository(db, logger),
		TaskRepository: NewTaskRepository(db, logger),
		ImageStorage:   images,
	}, nil
}
