// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NewObjectID returns a new 24-hex-character identifier for users and tasks.
func NewObjectID() string {
	return primitive.NewObjectID().Hex()
}

// IsValidObjectID reports whether id is a 24-hex-character identifier.
// Upper-case hex digits are accepted.
func IsValidObjectID(id string) bool {
	return primitive.IsValidObjectID(id)
}

// NormalizeObjectID returns the canonical lower-case form of id, or false
// when id is not a valid identifier.
func NormalizeObjectID(id string) (string, bool) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return "", false
	}

	return oid.Hex(), true
}

// NewTokenID returns a time-ordered UUID for the "jti" claim and trace ids.
func NewTokenID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
