// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-todo-keeper/models"
)

var (
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrUserNoLongerExists  = errors.New("user no longer exists")
	ErrTokenCreationFailed = errors.New("token creation failed")

	ErrTokenExpired      = errors.New("token expired")
	ErrTokenInvalid      = errors.New("token invalid")
	ErrTokenVerification = errors.New("token verification failed")

	ErrInvalidDueDate = errors.New("invalid due date")
	ErrTaskValidation = errors.New("todo validation failed")

	ErrNoImageProvided        = errors.New("no image provided")
	ErrUnsupportedImageFormat = errors.New("unsupported image format")
)

// TokenErrorKind tells apart the ways a token can fail verification.
type TokenErrorKind int

const (
	TokenExpired TokenErrorKind = iota
	TokenInvalid
	TokenVerification
)

// TokenError is returned by [TokenService] when a presented token is
// rejected. errors.Is matches [ErrTokenExpired], [ErrTokenInvalid] or
// [ErrTokenVerification] depending on Kind.
type TokenError struct {
	Name models.TokenName
	Kind TokenErrorKind
	// ExpiredAt is set for expired tokens.
	ExpiredAt time.Time
	// Reason is the verifier's description of an invalid token.
	Reason string
	Err    error
}

func (e *TokenError) Error() string {
	switch e.Kind {
	case TokenExpired:
		return fmt.Sprintf("%s expired", e.Name)
	case TokenInvalid:
		return fmt.Sprintf("%s invalid", e.Name)
	default:
		return fmt.Sprintf("%s verification failed: %v", e.Name, e.Err)
	}
}

func (e *TokenError) Is(target error) bool {
	switch e.Kind {
	case TokenExpired:
		return target == ErrTokenExpired
	case TokenInvalid:
		return target == ErrTokenInvalid
	default:
		return target == ErrTokenVerification
	}
}

func (e *TokenError) Unwrap() error {
	return e.Err
}

// Details is the outward meta.details of the error.
func (e *TokenError) Details() map[string]any {
	details := map[string]any{"tokenName": e.Name}
	switch e.Kind {
	case TokenExpired:
		details["expiredAt"] = e.ExpiredAt
	case TokenInvalid:
		details["reason"] = e.Reason
	}
	return details
}

// ValidationError reports a task that breaks a document-level rule.
type ValidationError struct {
	Issues []models.ValidationIssue
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		parts = append(parts, issue.Path+": "+issue.Message)
	}
	return fmt.Sprintf("%s: %s", ErrTaskValidation, strings.Join(parts, "; "))
}

// Is makes errors.Is(err, ErrTaskValidation) match.
func (e *ValidationError) Is(target error) bool {
	return target == ErrTaskValidation
}
