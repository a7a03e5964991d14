// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-todo-keeper/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	req, err := bindBody[models.RegisterRequest](r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	res, err := h.services.AuthService.Register(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeSuccess(w, r, http.StatusCreated, "Account created successfully.", models.NewAuthResponse(res), nil)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	req, err := bindBody[models.LoginRequest](r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	res, err := h.services.AuthService.Login(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeSuccess(w, r, http.StatusOK, "Authentication successful.", models.NewAuthResponse(res), nil)
}

func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	req, err := bindBody[models.RefreshRequest](r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	res, err := h.services.AuthService.Refresh(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeSuccess(w, r, http.StatusOK, "Tokens refreshed.", models.NewAuthResponse(res), nil)
}

func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	user, err := authUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	profile, err := h.services.AuthService.Profile(r.Context(), user.ID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeSuccess(w, r, http.StatusOK, "Profile retrieved successfully.", profile, nil)
}
