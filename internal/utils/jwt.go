// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-todo-keeper/models"
	"github.com/golang-jwt/jwt/v5"
)

// Errors returned by the JWT and bearer-header helpers.
var (
	ErrInvalidJWTParams           = errors.New("invalid params for generating JWT token")
	ErrEmptySubject               = errors.New("empty subject in JWT token")
	ErrEmptyAuthorizationHeader   = errors.New("empty `Authorization` header")
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")
	ErrEmptyToken                 = errors.New("empty token in `Authorization` header")
)

const bearerPrefix = "Bearer "

// GenerateJWTToken signs claims with HMAC-SHA256.
//
// The registered claims are filled in as follows:
//   - IssuedAt  (iat): now
//   - ExpiresAt (exp): now plus ttl
//   - ID        (jti): a fresh UUID, so two tokens issued within the same
//     second never collide
//   - Issuer    (iss): issuer, omitted when empty
//
// The subject (user id), ttl and signKey are required.
func GenerateJWTToken(claims models.Claims, ttl time.Duration, signKey, issuer string) (string, error) {
	if claims.Subject == "" || ttl <= 0 || signKey == "" {
		return "", ErrInvalidJWTParams
	}

	now := time.Now()
	claims.IssuedAt = jwt.NewNumericDate(now)
	claims.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))
	claims.ID = NewTokenID()
	claims.Issuer = issuer

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return "", fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return tokenString, nil
}

// ValidateAndParseJWTToken verifies the signature and expiry of tokenString
// and returns its claims.
//
// Only HS256 is accepted, "exp" must be present, and when issuer is
// non-empty the "iss" claim must equal it. Failures wrap the jwt/v5 sentinel
// errors (jwt.ErrTokenExpired, jwt.ErrTokenSignatureInvalid, ...) so callers
// can classify them with errors.Is. A token without a subject fails with
// [ErrEmptySubject].
func ValidateAndParseJWTToken(tokenString, signKey, issuer string) (*models.Claims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}

	claims := &models.Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	}, opts...)
	if err != nil {
		return claims, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.Subject == "" {
		return claims, ErrEmptySubject
	}

	return claims, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <jwt>"
// header value. The scheme is matched case-sensitively.
func ParseBearerToken(authorizationHeader string) (string, error) {
	if authorizationHeader == "" {
		return "", ErrEmptyAuthorizationHeader
	}

	token, ok := strings.CutPrefix(authorizationHeader, bearerPrefix)
	if !ok {
		return "", ErrInvalidAuthorizationHeader
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrEmptyToken
	}

	return token, nil
}
