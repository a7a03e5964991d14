// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	ErrBadRequest           = errors.New("bad request")
	ErrUnauthorized         = errors.New("client unauthorized")
	ErrNotFound             = errors.New("not found")
	ErrConflict             = errors.New("conflict")
	ErrPayloadTooLarge      = errors.New("payload too large")
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrValidation           = errors.New("validation failed")
	ErrInternalServerError  = errors.New("internal server error")

	ErrNoRefreshToken = errors.New("no refresh token stored")
)

// APIError is an error envelope returned by the server.
type APIError struct {
	Status  int
	Message string
	// Details is meta.details of the envelope, if any.
	Details json.RawMessage

	kind error
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("http %d", e.Status)
	}
	return fmt.Sprintf("http %d: %s", e.Status, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.kind
}
