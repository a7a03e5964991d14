// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/go-todo-keeper/internal/config"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/service"
)

type Handler struct {
	services *service.Services

	// uploadsDir is served read-only under /uploads/.
	uploadsDir     string
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().
		Str("uploads_dir", cfg.Storage.Files.UploadsDir).
		Dur("request_timeout", cfg.Server.RequestTimeout).
		Msg("http handler created")

	return &Handler{
		services:       services,
		uploadsDir:     cfg.Storage.Files.UploadsDir,
		requestTimeout: cfg.Server.RequestTimeout,
		logger:         logger,
	}
}
