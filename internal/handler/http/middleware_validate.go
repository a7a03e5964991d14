// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-todo-keeper/internal/validators"
	"github.com/go-chi/chi/v5"
)

// maxJSONBodySize caps JSON request bodies.
const maxJSONBodySize = 1 << 20

type ctxKey string

const (
	jsonBodyCtxKey ctxKey = "jsonBody"
	parsedCtxKey   ctxKey = "parsedRequest"
)

// withJSONBody decodes JSON request bodies into an untyped value ahead of
// authentication, so a malformed body is reported as such on every route.
// Other content types are left untouched and read as an absent body.
func (h *Handler) withJSONBody(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !isJSON(r.Header.Get("Content-Type")) || r.Body == nil {
			next.ServeHTTP(w, r)
			return
		}

		raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxJSONBodySize))
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				writeError(w, r, ErrBodyTooLarge)
				return
			}
			writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
			return
		}

		var body any
		if len(bytes.TrimSpace(raw)) > 0 {
			if err = json.Unmarshal(raw, &body); err != nil {
				writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
				return
			}
		}

		ctx := context.WithValue(r.Context(), jsonBodyCtxKey, body)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func isJSON(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}

// validate checks the request against schema and stores the sanitized
// result for bindBody and friends. Rejected requests get a 422 listing
// every issue.
func (h *Handler) validate(schema validators.Validator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			parsed, err := schema.Parse(ctx, validators.Input{
				Body:   ctx.Value(jsonBodyCtxKey),
				Query:  queryValues(r),
				Params: pathParams(r),
			})
			if err != nil {
				writeError(w, r, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(context.WithValue(ctx, parsedCtxKey, parsed)))
		})
	}
}

// queryValues keeps the first value of every query key.
func queryValues(r *http.Request) map[string]string {
	values := r.URL.Query()
	out := make(map[string]string, len(values))
	for key, v := range values {
		if len(v) > 0 {
			out[key] = v[0]
		}
	}
	return out
}

func pathParams(r *http.Request) map[string]string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return nil
	}

	out := make(map[string]string, len(rctx.URLParams.Keys))
	for i, key := range rctx.URLParams.Keys {
		if key == "*" {
			continue
		}
		out[key] = rctx.URLParams.Values[i]
	}
	return out
}

func parsedRequest(r *http.Request) (validators.Parsed, error) {
	parsed, ok := r.Context().Value(parsedCtxKey).(validators.Parsed)
	if !ok {
		return validators.Parsed{}, errRequestNotChecked
	}
	return parsed, nil
}

// bindBody decodes the validated body into T. Keys absent from the
// validated body stay absent, so Nullable fields keep their three states.
func bindBody[T any](r *http.Request) (T, error) {
	var out T

	parsed, err := parsedRequest(r)
	if err != nil {
		return out, err
	}

	raw, err := json.Marshal(parsed.Body)
	if err != nil {
		return out, fmt.Errorf("error encoding validated body: %w", err)
	}
	if err = json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("error decoding validated body: %w", err)
	}

	return out, nil
}
