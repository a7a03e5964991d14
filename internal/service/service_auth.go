// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/store"
	"github.com/MKhiriev/go-todo-keeper/models"
)

// authService is the concrete implementation of AuthService.
// It handles registration, credential verification and token refresh using a
// UserRepository for persistence and a TokenService for the token pair.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// tokenService signs and verifies the access/refresh pair.
	tokenService TokenService

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and TokenService.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, tokenService TokenService, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenService:   tokenService,
		logger:         logger,
	}
}

// Register creates a new account and signs a token pair for it.
//
// Level defaults to fresh and experience to 0. The phone is looked up first so
// that the common duplicate case does not reach the insert; the UNIQUE
// constraint still decides under concurrent registrations.
//
// Returns the new principal with its tokens or:
//   - store.ErrPhoneAlreadyExists if the phone is taken.
//   - A wrapped storage or token error otherwise.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResult, error) {
	log := logger.FromContext(ctx)

	_, err := a.userRepository.FindUserByPhone(ctx, req.Phone)
	switch {
	case err == nil:
		log.Info().Str("func", "authService.Register").Msg("phone already registered")
		return models.AuthResult{}, store.ErrPhoneAlreadyExists
	case !errors.Is(err, store.ErrUserNotFound):
		log.Err(err).Str("func", "authService.Register").Msg("user search by phone failed")
		return models.AuthResult{}, fmt.Errorf("user search by phone failed: %w", err)
	}

	user := models.User{
		Phone:       req.Phone,
		Password:    req.Password,
		DisplayName: strings.TrimSpace(req.DisplayName),
		Address:     req.Address,
		Level:       models.LevelFresh,
	}
	if req.ExperienceYears != nil {
		user.ExperienceYears = *req.ExperienceYears
	}
	if req.Level != nil {
		user.Level = *req.Level
	}

	created, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("func", "authService.Register").Msg("user creation ended with error")
		return models.AuthResult{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return a.issue(ctx, created.AuthUser())
}

// Login authenticates an existing user by phone and password.
//
// An unknown phone and a wrong password both return [ErrInvalidCredentials]
// so that callers cannot tell which one failed.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.AuthResult, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByPhone(ctx, req.Phone)
	if errors.Is(err, store.ErrUserNotFound) {
		log.Info().Str("func", "authService.Login").Msg("unknown phone")
		return models.AuthResult{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("func", "authService.Login").Msg("user search by phone failed")
		return models.AuthResult{}, fmt.Errorf("user search by phone failed: %w", err)
	}

	if !user.ComparePassword(req.Password) {
		log.Info().Str("func", "authService.Login").Str("id", user.ID).Msg("wrong password")
		return models.AuthResult{}, ErrInvalidCredentials
	}

	return a.issue(ctx, user.AuthUser())
}

// Refresh verifies the refresh token and signs a new pair for its subject.
//
// Phone, display name and level are taken from the stored user rather than
// from the presented token. The presented token stays valid until it expires.
func (a *authService) Refresh(ctx context.Context, req models.RefreshRequest) (models.AuthResult, error) {
	log := logger.FromContext(ctx)

	claims, err := a.tokenService.VerifyRefreshToken(ctx, req.RefreshToken)
	if err != nil {
		return models.AuthResult{}, err
	}

	user, err := a.userRepository.FindUserByID(ctx, claims.Subject)
	if errors.Is(err, store.ErrUserNotFound) {
		log.Info().Str("func", "authService.Refresh").Str("id", claims.Subject).Msg("token subject no longer exists")
		return models.AuthResult{}, ErrUserNoLongerExists
	}
	if err != nil {
		log.Err(err).Str("func", "authService.Refresh").Msg("user search by id failed")
		return models.AuthResult{}, fmt.Errorf("user search by id failed: %w", err)
	}

	principal := user.AuthUser()
	principal.ID = claims.Subject

	return a.issue(ctx, principal)
}

// Profile returns the public profile of userID or store.ErrUserNotFound.
func (a *authService) Profile(ctx context.Context, userID string) (models.UserProfile, error) {
	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, store.ErrUserNotFound) {
			logger.FromContext(ctx).Err(err).Str("func", "authService.Profile").Msg("user search by id failed")
		}
		return models.UserProfile{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return user.Profile(), nil
}

func (a *authService) issue(ctx context.Context, user models.AuthUser) (models.AuthResult, error) {
	tokens, err := a.tokenService.IssueTokenPair(ctx, user)
	if err != nil {
		return models.AuthResult{}, err
	}

	return models.AuthResult{User: user, Tokens: tokens}, nil
}
