// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business logic of the todo API: the session
// flow, the stateless token pair, per-user todos and image uploads.
package service

import (
	"github.com/MKhiriev/go-todo-keeper/internal/config"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/store"
)

type Services struct {
	AuthService   AuthService
	TokenService  TokenService
	TaskService   TaskService
	UploadService UploadService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	tokenService := NewTokenService(cfg.App, logger)

	return &Services{
		AuthService:   NewAuthService(storages.UserRepository, tokenService, logger),
		TokenService:  tokenService,
		TaskService:   NewTaskService(storages.TaskRepository, logger),
		UploadService: NewUploadService(storages.ImageStorage, logger),
	}
}
