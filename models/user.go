// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Level is the self-declared seniority of a user.
type Level string

const (
	LevelFresh    Level = "fresh"
	LevelJunior   Level = "junior"
	LevelMidLevel Level = "midLevel"
	LevelSenior   Level = "senior"
)

// Levels lists every accepted [Level] in ascending order.
var Levels = []Level{LevelFresh, LevelJunior, LevelMidLevel, LevelSenior}

// Valid reports whether l is one of [Levels].
func (l Level) Valid() bool {
	for _, level := range Levels {
		if l == level {
			return true
		}
	}
	return false
}

// User represents an account entity used for authentication and authorization.
// Password holds the bcrypt hash once the user has been persisted and is
// never serialized.
type User struct {
	// ID is the 24-hex-character identifier of the user.
	ID string `json:"id"`

	// Phone is the unique login identifier.
	Phone string `json:"phone"`

	// Password is the plaintext password before CreateUser and the bcrypt
	// hash afterwards.
	Password string `json:"-"`

	DisplayName     string  `json:"displayName"`
	ExperienceYears int     `json:"experienceYears"`
	Address         *string `json:"address,omitempty"`
	Level           Level   `json:"level"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// MaxPasswordBytes is the longest password prefix bcrypt takes into account.
const MaxPasswordBytes = 72

// PasswordBytes returns the part of password that is hashed and compared:
// its first [MaxPasswordBytes] bytes. Longer passwords, including short ones
// made of multibyte runes, are truncated rather than rejected.
func PasswordBytes(password string) []byte {
	b := []byte(password)
	if len(b) > MaxPasswordBytes {
		b = b[:MaxPasswordBytes]
	}

	return b
}

// ComparePassword reports whether candidate matches the stored bcrypt hash.
// It returns false when no hash is set or the hash is malformed.
func (u *User) ComparePassword(candidate string) bool {
	if u.Password == "" {
		return false
	}

	return bcrypt.CompareHashAndPassword([]byte(u.Password), PasswordBytes(candidate)) == nil
}

// Profile returns the public projection of the user.
func (u *User) Profile() UserProfile {
	return UserProfile{
		ID:              u.ID,
		Phone:           u.Phone,
		DisplayName:     u.DisplayName,
		ExperienceYears: u.ExperienceYears,
		Address:         u.Address,
		Level:           u.Level,
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
	}
}

// AuthUser returns the identity embedded into issued tokens.
func (u *User) AuthUser() AuthUser {
	return AuthUser{
		ID:          u.ID,
		Phone:       u.Phone,
		DisplayName: u.DisplayName,
		Level:       u.Level,
	}
}

// UserProfile is the outward view of a [User]; it has no password field.
type UserProfile struct {
	ID              string    `json:"id"`
	Phone           string    `json:"phone"`
	DisplayName     string    `json:"displayName"`
	ExperienceYears int       `json:"experienceYears"`
	Address         *string   `json:"address,omitempty"`
	Level           Level     `json:"level"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// AuthUser is the authenticated principal resolved from a verified token.
type AuthUser struct {
	ID          string
	Phone       string
	DisplayName string
	Level       Level
}
