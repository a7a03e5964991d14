// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-todo-keeper/models"
)

var ErrValidationFailed = errors.New("validation failed")

// Error lists every issue found in a request. errors.Is matches
// [ErrValidationFailed].
type Error struct {
	Issues []models.ValidationIssue
}

func (e *Error) Error() string {
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		parts = append(parts, fmt.Sprintf("%s.%s: %s", issue.Location, issue.Path, issue.Message))
	}

	return fmt.Sprintf("%s: %s", ErrValidationFailed, strings.Join(parts, "; "))
}

func (e *Error) Is(target error) bool {
	return target == ErrValidationFailed
}
