// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is a typed client for the todo REST API.
//
// [NewHTTPTodoClient] speaks the JSON envelope protocol over resty, keeps
// the current token pair and maps error envelopes to the sentinel errors of
// this package so callers can use [errors.Is] (e.g. [ErrConflict] for 409,
// [ErrUnauthorized] for 401). Rejected requests also carry an [*APIError]
// with the server's message and details.
package adapter

import (
	"context"
	"io"

	"github.com/MKhiriev/go-todo-keeper/models"
)

// TodoClient is the client side of the todo API. Register, Login and
// Refresh store the returned pair; authenticated calls send its access
// token.
type TodoClient interface {
	SetTokens(tokens models.TokenPair)
	Tokens() models.TokenPair

	Health(ctx context.Context) error

	Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error)
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)
	// Refresh exchanges the stored refresh token for a new pair.
	Refresh(ctx context.Context) (models.AuthResponse, error)
	Profile(ctx context.Context) (models.UserProfile, error)

	ListTodos(ctx context.Context, params ListParams) ([]models.TaskView, models.Pagination, error)
	GetTodo(ctx context.Context, id string) (models.TaskView, error)
	CreateTodo(ctx context.Context, req models.CreateTaskRequest) (models.TaskView, error)
	UpdateTodo(ctx context.Context, id string, req models.UpdateTaskRequest) (models.TaskView, error)
	DeleteTodo(ctx context.Context, id string) error

	UploadImage(ctx context.Context, fileName string, content io.Reader) (models.UploadedImage, error)
}
