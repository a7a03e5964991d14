// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-todo-keeper/internal/service"
	"github.com/MKhiriev/go-todo-keeper/internal/store"
	"github.com/MKhiriev/go-todo-keeper/internal/validators"
	"github.com/MKhiriev/go-todo-keeper/models"
	"github.com/stretchr/testify/assert"
)

func TestResponseFromError(t *testing.T) {
	issues := []models.ValidationIssue{{Location: "body", Path: "title", Message: "Required"}}

	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
		wantMeta    map[string]any
	}{
		{
			name:        "wrapped sentinel",
			err:         fmt.Errorf("find: %w", store.ErrTaskNotFound),
			wantStatus:  http.StatusNotFound,
			wantMessage: "Todo not found",
		},
		{
			name:        "request validation carries details",
			err:         &validators.Error{Issues: issues},
			wantStatus:  http.StatusUnprocessableEntity,
			wantMessage: "Validation failed",
			wantMeta:    map[string]any{"details": issues},
		},
		{
			name:        "token verification hides the cause",
			err:         &service.TokenError{Name: models.AccessToken, Kind: service.TokenVerification, Err: errors.New("no subject")},
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Unauthorized",
		},
		{
			name:        "rejected user row",
			err:         fmt.Errorf("user creation ended with error: %w", &store.ConstraintError{Column: "experience_years", Err: errors.New("22003")}),
			wantStatus:  http.StatusUnprocessableEntity,
			wantMessage: "Validation failed",
		},
		{
			name:        "internal errors are not leaked",
			err:         fmt.Errorf("%w: pq: relation missing", store.ErrExecutingQuery),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "Internal server error",
		},
		{
			name:        "unknown error",
			err:         errors.New("boom"),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, message, meta := responseFromError(tt.err)

			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMessage, message)
			assert.Equal(t, tt.wantMeta, meta)
		})
	}
}
