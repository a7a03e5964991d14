// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks raw request input against declarative schemas
// before it reaches the handlers.
//
// Core concepts:
//   - Input: the decoded body, query string and path parameters of a request.
//   - Schema: a set of Field rules per location. Every field is checked and
//     every violation is reported, not just the first one.
//   - Validator: the interface a Schema satisfies; the HTTP layer depends on it.
//
// Usage patterns:
//  1. Declare a Schema for an endpoint (see schemas.go).
//  2. Call Parse with the request Input to obtain the coerced values with
//     unknown keys removed, or an *Error listing every issue.
//  3. Decode the parsed values into the typed request model.
package validators

import "context"

// Validator checks the raw input of one request and returns the sanitized
// values. Implementations report every violation at once.
type Validator interface {
	Parse(ctx context.Context, in Input) (Parsed, error)
}
