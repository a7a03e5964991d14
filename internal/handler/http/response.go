// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/utils"
	"github.com/MKhiriev/go-todo-keeper/models"
)

func writeSuccess(w http.ResponseWriter, r *http.Request, status int, message string, data any, meta map[string]any) {
	if _, err := utils.WriteJSON(w, models.Success(message, data, meta), status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}

// writeError logs err and answers with the envelope mapped from it.
// Server-side failures keep their detail in the log only.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status, message, meta := responseFromError(err)

	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	if _, wErr := utils.WriteJSON(w, models.Failure(message, meta), status); wErr != nil {
		log.Err(wErr).Msg("error writing error response")
	}
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, ErrResourceNotFound)
}
