// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-todo-keeper/internal/service"
	"github.com/MKhiriev/go-todo-keeper/internal/store"
	"github.com/MKhiriev/go-todo-keeper/internal/validators"
)

type errorResponse struct {
	status  int
	message string
}

var errorResponseMap = map[error]errorResponse{
	ErrInvalidJSON:      {http.StatusBadRequest, "Invalid JSON was passed"},
	ErrBodyTooLarge:     {http.StatusRequestEntityTooLarge, "Request body is too large"},
	ErrResourceNotFound: {http.StatusNotFound, "Resource not found"},
	ErrUnauthorized:     {http.StatusUnauthorized, "Unauthorized"},

	validators.ErrValidationFailed: {http.StatusUnprocessableEntity, "Validation failed"},

	service.ErrTaskValidation:         {http.StatusBadRequest, "Todo validation failed"},
	service.ErrInvalidCredentials:     {http.StatusUnauthorized, "Invalid credentials"},
	service.ErrUserNoLongerExists:     {http.StatusUnauthorized, "User no longer exists"},
	service.ErrTokenExpired:           {http.StatusUnauthorized, "Token expired"},
	service.ErrTokenInvalid:           {http.StatusUnauthorized, "Token invalid"},
	service.ErrTokenVerification:      {http.StatusUnauthorized, "Unauthorized"},
	service.ErrInvalidDueDate:         {http.StatusBadRequest, "Invalid due date"},
	service.ErrNoImageProvided:        {http.StatusBadRequest, "No image provided"},
	service.ErrUnsupportedImageFormat: {http.StatusUnsupportedMediaType, "Unsupported image format"},

	store.ErrPhoneAlreadyExists:  {http.StatusConflict, "Phone number already registered"},
	store.ErrUserNotFound:        {http.StatusNotFound, "User not found"},
	store.ErrTaskNotFound:        {http.StatusNotFound, "Todo not found"},
	store.ErrImageTooLarge:       {http.StatusRequestEntityTooLarge, "Image is too large"},
	store.ErrConstraintViolation: {http.StatusUnprocessableEntity, "Validation failed"},
}

// responseFromError resolves the status, outward message and meta of err.
// Anything not in errorResponseMap is reported as a bare 500.
func responseFromError(err error) (int, string, map[string]any) {
	resp := errorResponse{http.StatusInternalServerError, "Internal server error"}
	for target, r := range errorResponseMap {
		if errors.Is(err, target) {
			resp = r
			break
		}
	}

	var (
		requestErr *validators.Error
		taskErr    *service.ValidationError
		tokenErr   *service.TokenError
	)
	switch {
	case errors.As(err, &requestErr):
		return resp.status, resp.message, map[string]any{"details": requestErr.Issues}
	case errors.As(err, &taskErr):
		return resp.status, resp.message, map[string]any{"details": taskErr.Issues}
	case errors.As(err, &tokenErr) && tokenErr.Kind != service.TokenVerification:
		// "refreshToken expired", "refreshToken invalid"
		return resp.status, tokenErr.Error(), map[string]any{"details": tokenErr.Details()}
	}

	return resp.status, resp.message, nil
}
