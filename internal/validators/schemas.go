// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"regexp"

	"github.com/MKhiriev/go-todo-keeper/models"
)

// StatusAll is accepted by the list filter and means "any status".
const StatusAll = "all"

var phonePattern = regexp.MustCompile(`^\+?[1-9]\d{9,14}$`)

func passwordField(name string) Field {
	return Field{Name: name, Rules: []Rule{String(false, 8, 100)}}
}

func enumValues[T ~string](values []T) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, string(v))
	}
	return out
}

// todoIDParams only requires the id to be present; malformed ids are
// resolved as unknown todos by the service.
var todoIDParams = &Object{Fields: []Field{
	{Name: "id", Rules: []Rule{String(true, 1, -1)}},
}}

// RegisterSchema guards POST /auth/register.
var RegisterSchema = Schema{Body: &Object{Fields: []Field{
	{Name: "phone", Rules: []Rule{Matches(phonePattern, "Phone must be 10-15 digits, optionally starting with +")}},
	passwordField("password"),
	{Name: "displayName", Rules: []Rule{String(false, 1, 100)}},
	{Name: "experienceYears", Optional: true, Rules: []Rule{Integer(Bound(0), nil)}},
	{Name: "address", Optional: true, Rules: []Rule{String(false, -1, 255)}},
	{Name: "level", Optional: true, Rules: []Rule{OneOf(enumValues(models.Levels)...)}},
}}}

// LoginSchema guards POST /auth/login.
var LoginSchema = Schema{Body: &Object{Fields: []Field{
	{Name: "phone", Rules: []Rule{Matches(phonePattern, "Invalid phone number")}},
	passwordField("password"),
}}}

// RefreshSchema guards POST /auth/refresh.
var RefreshSchema = Schema{Body: &Object{Fields: []Field{
	{Name: "refreshToken", Rules: []Rule{String(false, 1, -1)}},
}}}

// ListTodosSchema guards the query string of GET /todos.
var ListTodosSchema = Schema{Query: &Object{Fields: []Field{
	{Name: "page", Optional: true, Rules: []Rule{Integer(Bound(1), nil)}},
	{Name: "limit", Optional: true, Rules: []Rule{Integer(Bound(1), Bound(100))}},
	{Name: "status", Optional: true, Rules: []Rule{OneOf(append(enumValues(models.Statuses), StatusAll)...)}},
	{Name: "priority", Optional: true, Rules: []Rule{OneOf(enumValues(models.Priorities)...)}},
	{Name: "search", Optional: true, Rules: []Rule{String(true, 1, -1)}},
	{Name: "includeDeleted", Optional: true, Default: false, Rules: []Rule{Boolish()}},
}}}

// CreateTodoSchema guards POST /todos.
var CreateTodoSchema = Schema{Body: &Object{Fields: []Field{
	{Name: "title", Rules: []Rule{String(true, 1, 100)}},
	{Name: "desc", Optional: true, Rules: []Rule{String(true, -1, 1000)}},
	{Name: "priority", Optional: true, Rules: []Rule{OneOf(enumValues(models.Priorities)...)}},
	{Name: "status", Optional: true, Rules: []Rule{OneOf(enumValues(models.Statuses)...)}},
	{Name: "dueDate", Optional: true, Nullable: true, Rules: []Rule{String(false, -1, -1)}},
	{Name: "image", Optional: true, Rules: []Rule{String(true, -1, 500)}},
}}}

// UpdateTodoSchema guards PUT /todos/{id}. At least one known body field
// must be present; dueDate and image may be null.
var UpdateTodoSchema = Schema{
	Params: todoIDParams,
	Body: &Object{
		Fields: []Field{
			{Name: "title", Optional: true, Rules: []Rule{String(true, 1, 100)}},
			{Name: "desc", Optional: true, Rules: []Rule{String(true, -1, 1000)}},
			{Name: "priority", Optional: true, Rules: []Rule{OneOf(enumValues(models.Priorities)...)}},
			{Name: "status", Optional: true, Rules: []Rule{OneOf(enumValues(models.Statuses)...)}},
			{Name: "dueDate", Optional: true, Nullable: true, Rules: []Rule{String(false, -1, -1)}},
			{Name: "image", Optional: true, Nullable: true, Rules: []Rule{String(true, -1, 500)}},
		},
		AtLeastOne: "At least one field must be provided",
	},
}

// TodoIDSchema guards GET and DELETE /todos/{id}.
var TodoIDSchema = Schema{Params: todoIDParams}
