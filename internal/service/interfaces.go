// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"io"

	"github.com/MKhiriev/go-todo-keeper/models"
)

// TokenService issues and verifies the stateless access/refresh pair.
type TokenService interface {
	IssueTokenPair(ctx context.Context, user models.AuthUser) (models.TokenPair, error)
	VerifyAccessToken(ctx context.Context, token string) (*models.Claims, error)
	VerifyRefreshToken(ctx context.Context, token string) (*models.Claims, error)
}

// AuthService drives registration, login, token refresh and profile lookup.
type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (models.AuthResult, error)
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResult, error)
	Refresh(ctx context.Context, req models.RefreshRequest) (models.AuthResult, error)
	Profile(ctx context.Context, userID string) (models.UserProfile, error)
}

// TaskService manages the todos of a single owner. Every method is scoped
// by userID; tasks of other users behave as if they did not exist.
type TaskService interface {
	List(ctx context.Context, userID string, query models.ListTasksQuery) (models.TaskPage, error)
	Get(ctx context.Context, userID, id string) (models.Task, error)
	Create(ctx context.Context, userID string, req models.CreateTaskRequest) (models.Task, error)
	Update(ctx context.Context, userID, id string, req models.UpdateTaskRequest) (models.Task, error)
	Remove(ctx context.Context, userID, id string) error
}

// ImageUpload is one file received from a multipart form.
type ImageUpload struct {
	OriginalName string
	MimeType     string
	Content      io.Reader
}

// UploadService stores uploaded images and returns their public location.
type UploadService interface {
	UploadImage(ctx context.Context, upload ImageUpload) (models.UploadedImage, error)
}
