// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	ErrInvalidJSON       = errors.New("invalid JSON was passed")
	ErrBodyTooLarge      = errors.New("request body is too large")
	ErrResourceNotFound  = errors.New("resource not found")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrInternal          = errors.New("internal server error")
	errRequestNotChecked = errors.New("request reached handler without validation")
)
