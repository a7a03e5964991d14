// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"regexp"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

var hex24 = regexp.MustCompile(`^[0-9a-f]{24}$`)

func TestNewObjectID(t *testing.T) {
	a, b := NewObjectID(), NewObjectID()
	if !hex24.MatchString(a) {
		t.Errorf("expected 24 hex characters, got %q", a)
	}
	if a == b {
		t.Error("expected distinct ids")
	}
}

func TestIsValidObjectID(t *testing.T) {
	valid := []string{"65f1c2a9e4b0a1b2c3d4e5f6", "65F1C2A9E4B0A1B2C3D4E5F6"}
	invalid := []string{"", "65f1c2a9e4b0a1b2c3d4e5f", "zzf1c2a9e4b0a1b2c3d4e5f6", "65f1c2a9e4b0a1b2c3d4e5f6a"}

	for _, id := range valid {
		if !IsValidObjectID(id) {
			t.Errorf("expected %q to be valid", id)
		}
	}
	for _, id := range invalid {
		if IsValidObjectID(id) {
			t.Errorf("expected %q to be invalid", id)
		}
	}
}

func TestNormalizeObjectID(t *testing.T) {
	got, ok := NormalizeObjectID("65F1C2A9E4B0A1B2C3D4E5F6")
	if !ok || got != "65f1c2a9e4b0a1b2c3d4e5f6" {
		t.Errorf("unexpected result %q %v", got, ok)
	}
	if _, ok := NormalizeObjectID("nope"); ok {
		t.Error("expected invalid id to be rejected")
	}
}

func TestNewTokenID(t *testing.T) {
	if NewTokenID() == NewTokenID() {
		t.Error("expected distinct token ids")
	}
}

func TestHashPassword_Basic(t *testing.T) {
	hash, err := HashPassword("Password123!")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if hash == "Password123!" {
		t.Fatal("password stored in plaintext")
	}
	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil || cost != PasswordHashCost {
		t.Errorf("expected cost %d, got %d (%v)", PasswordHashCost, cost, err)
	}
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte("Password123!")) != nil {
		t.Error("hash does not verify")
	}
}
