// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RegisterRequest is the payload of POST /auth/register.
type RegisterRequest struct {
	Phone           string  `json:"phone"`
	Password        string  `json:"password"`
	DisplayName     string  `json:"displayName"`
	ExperienceYears *int    `json:"experienceYears,omitempty"`
	Address         *string `json:"address,omitempty"`
	Level           *Level  `json:"level,omitempty"`
}

// LoginRequest is the payload of POST /auth/login.
type LoginRequest struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// RefreshRequest is the payload of POST /auth/refresh.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// ListTasksQuery holds the decoded query string of GET /todos. Zero Page and
// Limit mean "use the default".
type ListTasksQuery struct {
	Page           int
	Limit          int
	Status         *Status
	Priority       *Priority
	Search         string
	IncludeDeleted bool
}

// CreateTaskRequest is the payload of POST /todos.
type CreateTaskRequest struct {
	Title    string           `json:"title"`
	Desc     *string          `json:"desc,omitempty"`
	Priority *Priority        `json:"priority,omitempty"`
	Status   *Status          `json:"status,omitempty"`
	DueDate  Nullable[string] `json:"dueDate,omitzero"`
	Image    Nullable[string] `json:"image,omitzero"`
}

// UpdateTaskRequest is the payload of PUT /todos/{id}. Nil pointers and
// unset Nullables leave the stored value untouched. A deletedAt key in the
// payload is not decoded.
type UpdateTaskRequest struct {
	Title    *string          `json:"title,omitempty"`
	Desc     *string          `json:"desc,omitempty"`
	Priority *Priority        `json:"priority,omitempty"`
	Status   *Status          `json:"status,omitempty"`
	DueDate  Nullable[string] `json:"dueDate,omitzero"`
	Image    Nullable[string] `json:"image,omitzero"`
}

// HasChanges reports whether at least one field is present.
func (r *UpdateTaskRequest) HasChanges() bool {
	return r.Title != nil || r.Desc != nil || r.Priority != nil || r.Status != nil ||
		r.DueDate.Set || r.Image.Set
}
