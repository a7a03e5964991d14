// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path"
	"strings"

	"github.com/MKhiriev/go-todo-keeper/internal/service"
	"github.com/MKhiriev/go-todo-keeper/internal/store"
	"github.com/go-chi/chi/v5"
)

const (
	imageFormField = "image"
	// multipartOverhead is the slack allowed on top of the image itself
	// for boundaries, headers and other form fields.
	multipartOverhead = 1 << 20
)

func (h *Handler) uploadImage(w http.ResponseWriter, r *http.Request) {
	if _, err := authUser(r); err != nil {
		writeError(w, r, err)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, service.MaxImageSize+multipartOverhead)

	reader, err := r.MultipartReader()
	if err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", service.ErrNoImageProvided, err))
		return
	}

	for {
		part, err := reader.NextPart()
		if errors.Is(err, io.EOF) {
			writeError(w, r, service.ErrNoImageProvided)
			return
		}
		if err != nil {
			writeError(w, r, uploadError(fmt.Errorf("%w: %w", service.ErrNoImageProvided, err)))
			return
		}

		if part.FormName() != imageFormField || part.FileName() == "" {
			part.Close()
			continue
		}

		image, err := h.services.UploadService.UploadImage(r.Context(), service.ImageUpload{
			OriginalName: part.FileName(),
			MimeType:     part.Header.Get("Content-Type"),
			Content:      part,
		})
		part.Close()
		if err != nil {
			writeError(w, r, uploadError(err))
			return
		}

		writeSuccess(w, r, http.StatusCreated, "Image uploaded successfully.", image, nil)
		return
	}
}

// uploadError reports a body cut by MaxBytesReader as an oversized image.
func uploadError(err error) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) && !errors.Is(err, store.ErrImageTooLarge) {
		return fmt.Errorf("%w: %v", store.ErrImageTooLarge, err)
	}
	return err
}

// serveUpload serves a stored image. Directories and missing files fall
// through to the API's 404 envelope.
func (h *Handler) serveUpload(w http.ResponseWriter, r *http.Request) {
	name := path.Clean(strings.TrimPrefix(chi.URLParam(r, "*"), "/"))
	if name == "." || !fs.ValidPath(name) {
		h.notFound(w, r)
		return
	}

	fsys := os.DirFS(h.uploadsDir)
	info, err := fs.Stat(fsys, name)
	if err != nil || info.IsDir() {
		h.notFound(w, r)
		return
	}

	http.ServeFileFS(w, r, fsys, name)
}
