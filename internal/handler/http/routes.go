// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-todo-keeper/internal/validators"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.notFound)

	middlewares := []func(http.Handler) http.Handler{h.withTraceID, h.withLogging, h.withRecovery}
	if h.requestTimeout > 0 {
		middlewares = append(middlewares, middleware.Timeout(h.requestTimeout))
	}
	middlewares = append(middlewares, middleware.Compress(5, "application/json"), withGZipBody)
	router.Use(middlewares...)

	router.Get("/uploads/*", h.serveUpload)

	router.Route("/api", func(r chi.Router) {
		r.Use(middleware.StripSlashes, h.withJSONBody)

		r.Get("/health", h.health)

		r.Route("/auth", func(r chi.Router) {
			r.With(h.validate(validators.RegisterSchema)).Post("/register", h.register)
			r.With(h.validate(validators.LoginSchema)).Post("/login", h.login)
			r.With(h.validate(validators.RefreshSchema)).Post("/refresh", h.refresh)
			r.With(h.auth).Get("/profile", h.profile)
		})

		// the guard runs before validation on every todo route
		r.Route("/todos", func(r chi.Router) {
			r.Use(h.auth)
			r.With(h.validate(validators.ListTodosSchema)).Get("/", h.listTodos)
			r.With(h.validate(validators.CreateTodoSchema)).Post("/", h.createTodo)
			r.With(h.validate(validators.TodoIDSchema)).Get("/{id}", h.getTodo)
			r.With(h.validate(validators.UpdateTodoSchema)).Put("/{id}", h.updateTodo)
			r.With(h.validate(validators.TodoIDSchema)).Delete("/{id}", h.deleteTodo)
		})

		r.With(h.auth).Post("/upload/image", h.uploadImage)
	})

	return router
}
