// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"fmt"

	"github.com/MKhiriev/go-todo-keeper/models"
	"golang.org/x/crypto/bcrypt"
)

// PasswordHashCost is the bcrypt work factor used for every stored password.
const PasswordHashCost = 12

// HashPassword returns the bcrypt hash of password at [PasswordHashCost].
// Only the first [models.MaxPasswordBytes] bytes are hashed.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(models.PasswordBytes(password), PasswordHashCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}
