// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-todo-keeper/models"
)

func TestWriteJSON_Envelope(t *testing.T) {
	w := httptest.NewRecorder()

	n, err := WriteJSON(w, models.Success("Todo created successfully.", map[string]string{"id": "x"}, nil), http.StatusCreated)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if n == 0 {
		t.Error("expected non-zero bytes written")
	}
	if w.Code != http.StatusCreated {
		t.Errorf("expected status %d, got %d", http.StatusCreated, w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
		t.Errorf("unexpected Content-Type '%s'", ct)
	}
	want := `{"success":true,"message":"Todo created successfully.","data":{"id":"x"}}`
	if w.Body.String() != want {
		t.Errorf("expected body %s, got %s", want, w.Body.String())
	}
}

func TestWriteJSON_InvalidData(t *testing.T) {
	w := httptest.NewRecorder()

	// channels cannot be marshaled to JSON
	_, err := WriteJSON(w, make(chan int), http.StatusOK)

	if err == nil {
		t.Fatal("expected error for non-serializable data, got nil")
	}
	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}
}

func TestWriteJSON_Health(t *testing.T) {
	w := httptest.NewRecorder()

	if _, err := WriteJSON(w, models.HealthResponse{Status: "ok"}, http.StatusOK); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if w.Body.String() != `{"status":"ok"}` {
		t.Errorf("unexpected body '%s'", w.Body.String())
	}
}
