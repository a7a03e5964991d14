// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/utils"
	"github.com/MKhiriev/go-todo-keeper/models"
	"github.com/rs/zerolog"
)

// auth admits requests carrying a valid access token and stores its
// principal in the context. Every failure is answered with the same 401;
// the cause only goes to the log.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.FromRequest(r)

		token, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
		if err != nil {
			log.Debug().Err(err).Msg("rejected authorization header")
			writeError(w, r, ErrUnauthorized)
			return
		}

		claims, err := h.services.TokenService.VerifyAccessToken(ctx, token)
		if err != nil {
			log.Debug().Err(err).Msg("rejected access token")
			writeError(w, r, ErrUnauthorized)
			return
		}

		user := claims.AuthUser()
		l := log.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("user_id", user.ID)
		})

		ctx = utils.WithAuthUser(l.WithContext(ctx), user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// authUser returns the principal stored by auth.
func authUser(r *http.Request) (models.AuthUser, error) {
	user, ok := utils.GetAuthUserFromContext(r.Context())
	if !ok {
		return models.AuthUser{}, ErrUnauthorized
	}
	return user, nil
}
