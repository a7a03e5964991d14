// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenName identifies which of the two tokens of a pair is meant. Its value
// is used verbatim in outward error messages ("accessToken expired").
type TokenName string

const (
	AccessToken  TokenName = "accessToken"
	RefreshToken TokenName = "refreshToken"
)

// TokenPair is a freshly issued access/refresh pair.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// Claims is the JWT payload of both access and refresh tokens. The user id
// travels in the registered "sub" claim.
type Claims struct {
	Phone       string `json:"phone"`
	DisplayName string `json:"displayName"`
	Level       Level  `json:"level"`

	jwt.RegisteredClaims
}

// AuthUser converts verified claims into the authenticated principal.
func (c *Claims) AuthUser() AuthUser {
	return AuthUser{
		ID:          c.Subject,
		Phone:       c.Phone,
		DisplayName: c.DisplayName,
		Level:       c.Level,
	}
}

// AuthResult is returned by register, login and refresh.
type AuthResult struct {
	User   AuthUser
	Tokens TokenPair
}

// AuthResponse is the outward payload of register, login and refresh.
type AuthResponse struct {
	ID           string `json:"id"`
	DisplayName  string `json:"displayName"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// NewAuthResponse flattens an [AuthResult] into its outward shape.
func NewAuthResponse(res AuthResult) AuthResponse {
	return AuthResponse{
		ID:           res.User.ID,
		DisplayName:  res.User.DisplayName,
		AccessToken:  res.Tokens.AccessToken,
		RefreshToken: res.Tokens.RefreshToken,
	}
}
