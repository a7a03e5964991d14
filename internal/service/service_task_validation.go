// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-todo-keeper/internal/store"
	"github.com/MKhiriev/go-todo-keeper/models"
)

const (
	maxTitleLength = 100
	maxDescLength  = 1000
	maxImageLength = 500
)

var imageURLPattern = regexp.MustCompile(`^https?://.+`)

// validateTask checks a task document right before it is written. Every
// broken rule is reported.
func validateTask(task models.Task) error {
	var issues []models.ValidationIssue
	add := func(path, format string, args ...any) {
		issues = append(issues, models.ValidationIssue{Path: path, Message: fmt.Sprintf(format, args...)})
	}

	switch n := utf8.RuneCountInString(task.Title); {
	case strings.TrimSpace(task.Title) == "":
		add("title", "Path `title` is required.")
	case n > maxTitleLength:
		add("title", "Path `title` is longer than the maximum allowed length (%d).", maxTitleLength)
	}

	if task.Desc != nil && utf8.RuneCountInString(*task.Desc) > maxDescLength {
		add("desc", "Path `desc` is longer than the maximum allowed length (%d).", maxDescLength)
	}

	if !task.Priority.Valid() {
		add("priority", "`%s` is not a valid enum value for path `priority`.", task.Priority)
	}
	if !task.Status.Valid() {
		add("status", "`%s` is not a valid enum value for path `status`.", task.Status)
	}

	if task.Image != nil && *task.Image != "" {
		if utf8.RuneCountInString(*task.Image) > maxImageLength {
			add("image", "Path `image` is longer than the maximum allowed length (%d).", maxImageLength)
		}
		if !imageURLPattern.MatchString(*task.Image) {
			add("image", "Image must be a valid URL")
		}
	}

	if len(issues) == 0 {
		return nil
	}

	return &ValidationError{Issues: issues}
}

// constraintPaths maps table constraints to the task field they guard.
var constraintPaths = map[string]string{
	"tasks_title_check":       "title",
	"tasks_description_check": "desc",
	"tasks_priority_check":    "priority",
	"tasks_status_check":      "status",
	"tasks_image_check":       "image",
}

func constraintValidationError(err *store.ConstraintError) *ValidationError {
	path, ok := constraintPaths[err.Constraint]
	if !ok {
		path = err.Column
	}
	if path == "description" {
		path = "desc"
	}
	if path == "" {
		path = "todo"
	}

	return &ValidationError{Issues: []models.ValidationIssue{{
		Path:    path,
		Message: fmt.Sprintf("Path `%s` failed the %q constraint.", path, err.Constraint),
	}}}
}
