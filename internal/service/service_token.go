// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-todo-keeper/internal/config"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/utils"
	"github.com/MKhiriev/go-todo-keeper/models"
	"github.com/golang-jwt/jwt/v5"
)

// tokenService signs access and refresh tokens with distinct secrets and
// lifetimes. It keeps no state: a token is valid as long as its signature
// and expiry hold.
type tokenService struct {
	accessSecret  string
	refreshSecret string
	accessTTL     time.Duration
	refreshTTL    time.Duration
	issuer        string

	logger *logger.Logger
}

// NewTokenService constructs a TokenService from the token settings in cfg.
func NewTokenService(cfg config.App, logger *logger.Logger) TokenService {
	return &tokenService{
		accessSecret:  cfg.AccessTokenSecret,
		refreshSecret: cfg.RefreshTokenSecret,
		accessTTL:     cfg.AccessTokenTTL,
		refreshTTL:    cfg.RefreshTokenTTL,
		issuer:        cfg.TokenIssuer,
		logger:        logger,
	}
}

// IssueTokenPair signs an access and a refresh token for user. Both carry
// the same claims; only the secret and the lifetime differ.
func (s *tokenService) IssueTokenPair(ctx context.Context, user models.AuthUser) (models.TokenPair, error) {
	claims := models.Claims{
		Phone:       user.Phone,
		DisplayName: user.DisplayName,
		Level:       user.Level,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: user.ID,
		},
	}

	access, err := utils.GenerateJWTToken(claims, s.accessTTL, s.accessSecret, s.issuer)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "tokenService.IssueTokenPair").Msg("error signing access token")
		return models.TokenPair{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	refresh, err := utils.GenerateJWTToken(claims, s.refreshTTL, s.refreshSecret, s.issuer)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "tokenService.IssueTokenPair").Msg("error signing refresh token")
		return models.TokenPair{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return models.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *tokenService) VerifyAccessToken(ctx context.Context, token string) (*models.Claims, error) {
	return s.verify(ctx, token, s.accessSecret, models.AccessToken)
}

func (s *tokenService) VerifyRefreshToken(ctx context.Context, token string) (*models.Claims, error) {
	return s.verify(ctx, token, s.refreshSecret, models.RefreshToken)
}

func (s *tokenService) verify(ctx context.Context, token, secret string, name models.TokenName) (*models.Claims, error) {
	claims, err := utils.ValidateAndParseJWTToken(token, secret, s.issuer)
	if err == nil {
		return claims, nil
	}

	logger.FromContext(ctx).Debug().Err(err).Str("token", string(name)).Msg("token rejected")
	return nil, classifyTokenError(name, claims, err)
}

// classifyTokenError sorts a verification failure into expired, invalid and
// everything else.
func classifyTokenError(name models.TokenName, claims *models.Claims, err error) *TokenError {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		tokenErr := &TokenError{Name: name, Kind: TokenExpired, Err: err}
		if claims != nil && claims.ExpiresAt != nil {
			tokenErr.ExpiredAt = claims.ExpiresAt.Time.UTC()
		}
		return tokenErr

	case errors.Is(err, jwt.ErrTokenMalformed),
		errors.Is(err, jwt.ErrTokenSignatureInvalid),
		errors.Is(err, jwt.ErrTokenUnverifiable),
		errors.Is(err, jwt.ErrTokenInvalidIssuer),
		errors.Is(err, jwt.ErrTokenNotValidYet),
		errors.Is(err, jwt.ErrTokenRequiredClaimMissing),
		errors.Is(err, jwt.ErrTokenInvalidClaims):
		return &TokenError{Name: name, Kind: TokenInvalid, Reason: tokenErrorReason(err), Err: err}

	default:
		return &TokenError{Name: name, Kind: TokenVerification, Err: err}
	}
}

func tokenErrorReason(err error) string {
	switch {
	case errors.Is(err, jwt.ErrTokenMalformed):
		return "jwt malformed"
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return "invalid signature"
	case errors.Is(err, jwt.ErrTokenInvalidIssuer):
		return "jwt issuer invalid"
	case errors.Is(err, jwt.ErrTokenNotValidYet):
		return "jwt not active"
	default:
		return "invalid token"
	}
}
