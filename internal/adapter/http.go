// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/utils"
	"github.com/MKhiriev/go-todo-keeper/models"
	"github.com/go-resty/resty/v2"
)

// ListParams is the query of GET /todos. Zero values are not sent.
type ListParams struct {
	Page           int
	Limit          int
	Status         string
	Priority       string
	Search         string
	IncludeDeleted bool
}

func (p ListParams) query() map[string]string {
	q := make(map[string]string)
	if p.Page > 0 {
		q["page"] = strconv.Itoa(p.Page)
	}
	if p.Limit > 0 {
		q["limit"] = strconv.Itoa(p.Limit)
	}
	if p.Status != "" {
		q["status"] = p.Status
	}
	if p.Priority != "" {
		q["priority"] = p.Priority
	}
	if p.Search != "" {
		q["search"] = p.Search
	}
	if p.IncludeDeleted {
		q["includeDeleted"] = "true"
	}
	return q
}

type envelope[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    T      `json:"data"`
	Meta    struct {
		Pagination models.Pagination `json:"pagination"`
	} `json:"meta"`
}

type httpTodoClient struct {
	client *utils.HTTPClient

	mu     sync.RWMutex
	tokens models.TokenPair

	logger *logger.Logger
}

// NewHTTPTodoClient returns a client for the API served at address, which
// may omit the scheme ("localhost:5000") and the /api prefix.
func NewHTTPTodoClient(address string, timeout time.Duration, logger *logger.Logger) (TodoClient, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid api address: %w", err)
	}

	return &httpTodoClient{
		client: utils.NewHTTPClient(baseURL, timeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	u.Path = strings.TrimRight(u.Path, "/")
	if !strings.HasSuffix(u.Path, "/api") {
		u.Path += "/api"
	}

	return u.String(), nil
}

func (h *httpTodoClient) SetTokens(tokens models.TokenPair) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.tokens = tokens
}

func (h *httpTodoClient) Tokens() models.TokenPair {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.tokens
}

// authorized starts a request carrying the stored access token.
func (h *httpTodoClient) authorized(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Tokens().AccessToken; token != "" {
		req.SetAuthToken(token)
	}
	return req
}

func (h *httpTodoClient) Health(ctx context.Context) error {
	resp, err := h.client.R().SetContext(ctx).Get("/health")
	if err != nil {
		return fmt.Errorf("health request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpTodoClient) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error) {
	return h.authenticate(ctx, "register", "/auth/register", req)
}

func (h *httpTodoClient) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	return h.authenticate(ctx, "login", "/auth/login", req)
}

func (h *httpTodoClient) Refresh(ctx context.Context) (models.AuthResponse, error) {
	refreshToken := h.Tokens().RefreshToken
	if refreshToken == "" {
		return models.AuthResponse{}, ErrNoRefreshToken
	}

	return h.authenticate(ctx, "refresh", "/auth/refresh", models.RefreshRequest{RefreshToken: refreshToken})
}

func (h *httpTodoClient) authenticate(ctx context.Context, op, path string, body any) (models.AuthResponse, error) {
	var result envelope[models.AuthResponse]

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&result).
		Post(path)
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("%s request: %w", op, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	h.SetTokens(models.TokenPair{AccessToken: result.Data.AccessToken, RefreshToken: result.Data.RefreshToken})
	h.logger.Debug().Str("user_id", result.Data.ID).Msgf("%s succeeded", op)

	return result.Data, nil
}

func (h *httpTodoClient) Profile(ctx context.Context) (models.UserProfile, error) {
	var result envelope[models.UserProfile]

	resp, err := h.authorized(ctx).SetResult(&result).Get("/auth/profile")
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserProfile{}, err
	}

	return result.Data, nil
}

func (h *httpTodoClient) ListTodos(ctx context.Context, params ListParams) ([]models.TaskView, models.Pagination, error) {
	var result envelope[[]models.TaskView]

	resp, err := h.authorized(ctx).
		SetQueryParams(params.query()).
		SetResult(&result).
		Get("/todos")
	if err != nil {
		return nil, models.Pagination{}, fmt.Errorf("list todos request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, models.Pagination{}, err
	}

	return result.Data, result.Meta.Pagination, nil
}

func (h *httpTodoClient) GetTodo(ctx context.Context, id string) (models.TaskView, error) {
	return h.todo("get todo", h.authorized(ctx).SetPathParam("id", id), resty.MethodGet)
}

func (h *httpTodoClient) CreateTodo(ctx context.Context, req models.CreateTaskRequest) (models.TaskView, error) {
	var result envelope[models.TaskView]

	resp, err := h.authorized(ctx).SetBody(req).SetResult(&result).Post("/todos")
	if err != nil {
		return models.TaskView{}, fmt.Errorf("create todo request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TaskView{}, err
	}

	return result.Data, nil
}

func (h *httpTodoClient) UpdateTodo(ctx context.Context, id string, req models.UpdateTaskRequest) (models.TaskView, error) {
	return h.todo("update todo", h.authorized(ctx).SetPathParam("id", id).SetBody(req), resty.MethodPut)
}

func (h *httpTodoClient) DeleteTodo(ctx context.Context, id string) error {
	resp, err := h.authorized(ctx).SetPathParam("id", id).Delete("/todos/{id}")
	if err != nil {
		return fmt.Errorf("delete todo request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpTodoClient) todo(op string, req *resty.Request, method string) (models.TaskView, error) {
	var result envelope[models.TaskView]

	resp, err := req.SetResult(&result).Execute(method, "/todos/{id}")
	if err != nil {
		return models.TaskView{}, fmt.Errorf("%s request: %w", op, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TaskView{}, err
	}

	return result.Data, nil
}

// UploadImage sends content as the "image" field of a multipart form. The
// part's content type is derived from the extension of fileName.
func (h *httpTodoClient) UploadImage(ctx context.Context, fileName string, content io.Reader) (models.UploadedImage, error) {
	var result envelope[models.UploadedImage]

	contentType := mime.TypeByExtension(strings.ToLower(filepath.Ext(fileName)))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	resp, err := h.authorized(ctx).
		SetMultipartField("image", filepath.Base(fileName), contentType, content).
		SetResult(&result).
		Post("/upload/image")
	if err != nil {
		return models.UploadedImage{}, fmt.Errorf("upload image request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UploadedImage{}, err
	}

	return result.Data, nil
}
