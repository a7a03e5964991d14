// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-todo-keeper/models"
)

// Request locations a Schema can check.
const (
	LocationBody   = "body"
	LocationQuery  = "query"
	LocationParams = "params"
)

// Input is the raw data of one request.
//
// Body is the JSON body decoded into an untyped value (normally
// map[string]any). Query and Params hold the first value of every query
// string key and the path parameters.
type Input struct {
	Body   any
	Query  map[string]string
	Params map[string]string
}

// Rule checks one value. It returns the possibly coerced value, or a
// non-empty message when the value is rejected.
type Rule func(value any) (any, string)

// Field describes one key of a location.
type Field struct {
	Name string
	// Optional fields may be absent.
	Optional bool
	// Nullable fields accept an explicit JSON null, kept as nil.
	Nullable bool
	Rules    []Rule
	// Default is used when an optional field is absent. Nil means no default.
	Default any
}

// Object is the rule set of one location.
type Object struct {
	Fields []Field
	// AtLeastOne, when set, is reported if none of the fields is present.
	AtLeastOne string
}

// Schema holds the rules for every location of a request. A nil location is
// not checked and passes through as nil.
type Schema struct {
	Body   *Object
	Query  *Object
	Params *Object
}

// Parsed holds the values that passed validation. Unknown keys are dropped
// and coercions (numbers from query strings, trimming) are applied.
type Parsed struct {
	Body   map[string]any
	Query  map[string]any
	Params map[string]any
}

// Parse implements [Validator]. It checks every location and returns the
// sanitized values, or an [*Error] holding all issues.
func (s Schema) Parse(_ context.Context, in Input) (Parsed, error) {
	var (
		out    Parsed
		issues []models.ValidationIssue
	)

	if s.Params != nil {
		var found []models.ValidationIssue
		out.Params, found = s.Params.parse(LocationParams, stringMap(in.Params))
		issues = append(issues, found...)
	}
	if s.Query != nil {
		var found []models.ValidationIssue
		out.Query, found = s.Query.parse(LocationQuery, stringMap(in.Query))
		issues = append(issues, found...)
	}
	if s.Body != nil {
		body, ok := in.Body.(map[string]any)
		if !ok && in.Body == nil {
			body, ok = map[string]any{}, true
		}
		if !ok {
			issues = append(issues, models.ValidationIssue{
				Location: LocationBody,
				Path:     LocationBody,
				Message:  fmt.Sprintf("Expected object, received %s", typeName(in.Body)),
			})
		} else {
			var found []models.ValidationIssue
			out.Body, found = s.Body.parse(LocationBody, body)
			issues = append(issues, found...)
		}
	}

	if len(issues) > 0 {
		return Parsed{}, &Error{Issues: issues}
	}

	return out, nil
}

func (o *Object) parse(location string, values map[string]any) (map[string]any, []models.ValidationIssue) {
	out := make(map[string]any, len(o.Fields))
	var issues []models.ValidationIssue

	for _, field := range o.Fields {
		value, present := values[field.Name]

		switch {
		case !present && field.Optional:
			if field.Default != nil {
				out[field.Name] = field.Default
			}
			continue
		case !present:
			issues = append(issues, models.ValidationIssue{Location: location, Path: field.Name, Message: "Required"})
			continue
		case value == nil && field.Nullable:
			out[field.Name] = nil
			continue
		}

		ok := true
		for _, rule := range field.Rules {
			coerced, msg := rule(value)
			if msg != "" {
				issues = append(issues, models.ValidationIssue{Location: location, Path: field.Name, Message: msg})
				ok = false
				break
			}
			value = coerced
		}
		if ok {
			out[field.Name] = value
		}
	}

	if o.AtLeastOne != "" && len(issues) == 0 && !o.anyPresent(values) {
		issues = append(issues, models.ValidationIssue{Location: location, Path: location, Message: o.AtLeastOne})
	}

	return out, issues
}

func (o *Object) anyPresent(values map[string]any) bool {
	for _, field := range o.Fields {
		if _, ok := values[field.Name]; ok {
			return true
		}
	}
	return false
}

func stringMap(m map[string]string) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
