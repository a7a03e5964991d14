// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrPhoneAlreadyExists is returned when an attempt to create a user
	// violates the unique phone constraint.
	ErrPhoneAlreadyExists = errors.New("phone already exists")

	// ErrUserNotFound is returned when a lookup by phone or id matches no row.
	ErrUserNotFound = errors.New("user was not found")

	// ErrTaskNotFound is returned when a task lookup or update matches no row
	// for the given filter.
	ErrTaskNotFound = errors.New("task was not found")

	// ErrConstraintViolation is returned (wrapped in [*ConstraintError]) when
	// a write breaks a CHECK or NOT NULL constraint.
	ErrConstraintViolation = errors.New("constraint violation")

	// ErrImageTooLarge is returned by the image storage when the payload
	// exceeds the size limit.
	ErrImageTooLarge = errors.New("image is too large")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when a single result row cannot be scanned.
	ErrScanningRow = errors.New("error scanning row")

	// ErrScanningRows is returned when iterating a multi-row result set fails.
	ErrScanningRows = errors.New("error scanning rows")
)

// ConstraintError describes a rejected write. Column and Constraint come
// from the PostgreSQL error report and may be empty.
type ConstraintError struct {
	Constraint string
	Column     string
	Err        error
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("%s: constraint=%q column=%q: %v", ErrConstraintViolation, e.Constraint, e.Column, e.Err)
}

// Is makes errors.Is(err, ErrConstraintViolation) match.
func (e *ConstraintError) Is(target error) bool {
	return target == ErrConstraintViolation
}

func (e *ConstraintError) Unwrap() error {
	return e.Err
}
