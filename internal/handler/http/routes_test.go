// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-todo-keeper/internal/service"
	"github.com/MKhiriev/go-todo-keeper/internal/store"
	"github.com/MKhiriev/go-todo-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoutes_Health(t *testing.T) {
	h := newTestHandler(t, nil)

	rr := serve(h, http.MethodGet, "/api/health", "", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
	assert.NotEmpty(t, rr.Header().Get(traceIDHeader))
}

func TestRoutes_NotFound(t *testing.T) {
	tests := []struct {
		name   string
		method string
		target string
	}{
		{name: "unknown api route", method: http.MethodGet, target: "/api/nope"},
		{name: "unknown top-level route", method: http.MethodGet, target: "/nope"},
		{name: "method not registered", method: http.MethodPatch, target: "/api/health"},
		{name: "get on post-only route", method: http.MethodGet, target: "/api/auth/login"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := serve(newTestHandler(t, nil), tt.method, tt.target, "", "")

			assert.Equal(t, http.StatusNotFound, rr.Code)
			resp := decodeResponse(t, rr)
			assert.False(t, resp.Success)
			assert.Equal(t, "Resource not found", resp.Message)
		})
	}
}

func TestRoutes_TrailingSlash(t *testing.T) {
	rr := serve(newTestHandler(t, nil), http.MethodGet, "/api/health/", "", "")
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestRoutes_MalformedJSON(t *testing.T) {
	h := newTestHandler(t, nil)

	// reported before authentication, like any other body
	rr := serve(h, http.MethodPost, "/api/todos", `{"title":`, "")

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Invalid JSON was passed", decodeResponse(t, rr).Message)
}

func TestRoutes_GuardRunsBeforeValidation(t *testing.T) {
	h := newTestHandler(t, nil)

	rr := serve(h, http.MethodPost, "/api/todos", `{}`, "")

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	resp := decodeResponse(t, rr)
	assert.Equal(t, "Unauthorized", resp.Message)
	assert.Nil(t, resp.Meta)
}

func TestRoutes_ValidationFailed(t *testing.T) {
	h := newTestHandler(t, nil)

	rr := serve(h, http.MethodPut, "/api/todos/"+testTaskID, `{"title":""}`, testGoodToken)

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	resp := decodeResponse(t, rr)
	assert.Equal(t, "Validation failed", resp.Message)

	details, ok := resp.Meta["details"].([]any)
	require.True(t, ok)
	require.Len(t, details, 1)
	assert.Equal(t, map[string]any{
		"location": "body",
		"path":     "title",
		"message":  "String must contain at least 1 character(s)",
	}, details[0])
}

func TestRoutes_MalformedTodoID(t *testing.T) {
	var seen []string
	taskSvc := &mockTaskService{
		getFn: func(_ context.Context, _, id string) (models.Task, error) {
			seen = append(seen, id)
			return models.Task{}, store.ErrTaskNotFound
		},
		updateFn: func(_ context.Context, _, id string, _ models.UpdateTaskRequest) (models.Task, error) {
			seen = append(seen, id)
			return models.Task{}, store.ErrTaskNotFound
		},
		removeFn: func(_ context.Context, _, id string) error {
			seen = append(seen, id)
			return store.ErrTaskNotFound
		},
	}
	h := newTestHandler(t, &service.Services{TaskService: taskSvc})

	tests := []struct {
		method string
		body   string
	}{
		{method: http.MethodGet},
		{method: http.MethodPut, body: `{"title":"x"}`},
		{method: http.MethodDelete},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			rr := serve(h, tt.method, "/api/todos/not-an-id", tt.body, testGoodToken)

			assert.Equal(t, http.StatusNotFound, rr.Code)
			assert.Equal(t, "Todo not found", decodeResponse(t, rr).Message)
		})
	}
	assert.Equal(t, []string{"not-an-id", "not-an-id", "not-an-id"}, seen)
}

func TestRoutes_Uploads(t *testing.T) {
	h := newTestHandler(t, nil)
	require.NoError(t, os.WriteFile(filepath.Join(h.uploadsDir, "1-abc.png"), []byte("png-bytes"), 0o600))
	require.NoError(t, os.Mkdir(filepath.Join(h.uploadsDir, "nested"), 0o750))

	t.Run("stored file is served", func(t *testing.T) {
		rr := serve(h, http.MethodGet, "/uploads/1-abc.png", "", "")
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "png-bytes", rr.Body.String())
	})

	for _, target := range []string{"/uploads/missing.png", "/uploads/nested", "/uploads/", "/uploads/../secret"} {
		t.Run("404 for "+target, func(t *testing.T) {
			rr := serve(h, http.MethodGet, target, "", "")
			assert.Equal(t, http.StatusNotFound, rr.Code)
		})
	}
}
