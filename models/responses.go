// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Response is the uniform JSON envelope of every API response except the
// health probe.
type Response struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Data    any            `json:"data,omitempty"`
	Meta    map[string]any `json:"meta,omitempty"`
}

// DefaultSuccessMessage is used when a handler does not supply one.
const DefaultSuccessMessage = "OK"

// Success builds a success envelope. An empty message becomes
// [DefaultSuccessMessage].
func Success(message string, data any, meta map[string]any) Response {
	if message == "" {
		message = DefaultSuccessMessage
	}

	return Response{Success: true, Message: message, Data: data, Meta: meta}
}

// Failure builds an error envelope.
func Failure(message string, meta map[string]any) Response {
	return Response{Success: false, Message: message, Meta: meta}
}

// ValidationIssue is one violation found while validating a request or a
// task document. Location is empty for document-level issues.
type ValidationIssue struct {
	Location string `json:"location,omitempty"`
	Path     string `json:"path"`
	Message  string `json:"message"`
}

// HealthResponse is returned by GET /api/health.
type HealthResponse struct {
	Status string `json:"status"`
}

// UploadedImage describes a stored image upload.
type UploadedImage struct {
	URL          string `json:"url"`
	FileName     string `json:"fileName"`
	OriginalName string `json:"originalName"`
	Size         int64  `json:"size"`
	MimeType     string `json:"mimeType"`
}
