// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, password
// hashing, identifiers, HTTP response writing, HTTP client initialization,
// and JWT token generation and validation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-todo-keeper/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// AuthUserCtxKey is the key under which the auth middleware stores the
// authenticated [models.AuthUser].
var AuthUserCtxKey = contextKey("authUser")

// WithAuthUser returns a copy of ctx carrying user.
func WithAuthUser(ctx context.Context, user models.AuthUser) context.Context {
	return context.WithValue(ctx, AuthUserCtxKey, user)
}

// GetAuthUserFromContext retrieves the authenticated user from the context.
// ok is false when the value is missing, has an unexpected type or has an
// empty id.
func GetAuthUserFromContext(ctx context.Context) (models.AuthUser, bool) {
	user, ok := ctx.Value(AuthUserCtxKey).(models.AuthUser)
	if !ok || user.ID == "" {
		return models.AuthUser{}, false
	}
	return user, true
}
