// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-todo-keeper/internal/validators"
	"github.com/MKhiriev/go-todo-keeper/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listTodos(w http.ResponseWriter, r *http.Request) {
	user, err := authUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	parsed, err := parsedRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	page, err := h.services.TaskService.List(r.Context(), user.ID, listQuery(parsed.Query))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeSuccess(w, r, http.StatusOK, "Todos retrieved successfully.",
		models.NewTaskViews(page.Tasks, time.Now()),
		map[string]any{"pagination": page.Pagination},
	)
}

// listQuery maps the validated query string onto the service filter.
// status=all is the same as no status filter.
func listQuery(q map[string]any) models.ListTasksQuery {
	var query models.ListTasksQuery

	query.Page, _ = q["page"].(int)
	query.Limit, _ = q["limit"].(int)
	query.Search, _ = q["search"].(string)
	query.IncludeDeleted, _ = q["includeDeleted"].(bool)

	if s, ok := q["status"].(string); ok && s != validators.StatusAll {
		status := models.Status(s)
		query.Status = &status
	}
	if p, ok := q["priority"].(string); ok {
		priority := models.Priority(p)
		query.Priority = &priority
	}

	return query
}

func (h *Handler) getTodo(w http.ResponseWriter, r *http.Request) {
	user, err := authUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	task, err := h.services.TaskService.Get(r.Context(), user.ID, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeSuccess(w, r, http.StatusOK, "Todo retrieved successfully.", models.NewTaskView(task, time.Now()), nil)
}

func (h *Handler) createTodo(w http.ResponseWriter, r *http.Request) {
	user, err := authUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	req, err := bindBody[models.CreateTaskRequest](r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	task, err := h.services.TaskService.Create(r.Context(), user.ID, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeSuccess(w, r, http.StatusCreated, "Todo created successfully.", models.NewTaskView(task, time.Now()), nil)
}

func (h *Handler) updateTodo(w http.ResponseWriter, r *http.Request) {
	user, err := authUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	req, err := bindBody[models.UpdateTaskRequest](r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	task, err := h.services.TaskService.Update(r.Context(), user.ID, chi.URLParam(r, "id"), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeSuccess(w, r, http.StatusOK, "Todo updated successfully.", models.NewTaskView(task, time.Now()), nil)
}

func (h *Handler) deleteTodo(w http.ResponseWriter, r *http.Request) {
	user, err := authUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.TaskService.Remove(r.Context(), user.ID, chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}

	writeSuccess(w, r, http.StatusOK, "Todo deleted successfully.", nil, nil)
}
