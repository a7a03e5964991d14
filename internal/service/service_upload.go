// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/store"
	"github.com/MKhiriev/go-todo-keeper/models"
)

const (
	// MaxImageSize is the largest accepted upload, in bytes.
	MaxImageSize = 5 << 20

	// UploadsURLPrefix is the public path uploaded files are served under.
	UploadsURLPrefix = "/uploads/"

	defaultImageExt = ".png"
)

var allowedImageTypes = map[string]struct{}{
	"image/png":  {},
	"image/jpeg": {},
	"image/jpg":  {},
	"image/gif":  {},
	"image/webp": {},
}

type uploadService struct {
	imageStorage store.ImageStorage
	logger       *logger.Logger
	now          func() time.Time
}

// NewUploadService constructs an UploadService writing to imageStorage.
func NewUploadService(imageStorage store.ImageStorage, logger *logger.Logger) UploadService {
	return &uploadService{
		imageStorage: imageStorage,
		logger:       logger,
		now:          time.Now,
	}
}

// UploadImage stores upload under a fresh unique name.
//
// Returns:
//   - ErrNoImageProvided when there is no content.
//   - ErrUnsupportedImageFormat for MIME types outside the allow-list.
//   - store.ErrImageTooLarge above MaxImageSize.
func (s *uploadService) UploadImage(ctx context.Context, upload ImageUpload) (models.UploadedImage, error) {
	log := logger.FromContext(ctx)

	if upload.Content == nil {
		return models.UploadedImage{}, ErrNoImageProvided
	}

	mimeType := strings.ToLower(strings.TrimSpace(upload.MimeType))
	if _, ok := allowedImageTypes[mimeType]; !ok {
		log.Info().Str("func", "uploadService.UploadImage").Str("mime_type", mimeType).Msg("unsupported image format")
		return models.UploadedImage{}, ErrUnsupportedImageFormat
	}

	fileName, err := s.fileName(upload.OriginalName)
	if err != nil {
		log.Err(err).Str("func", "uploadService.UploadImage").Msg("error generating file name")
		return models.UploadedImage{}, err
	}

	size, err := s.imageStorage.Save(ctx, fileName, upload.Content, MaxImageSize)
	if err != nil {
		if errors.Is(err, store.ErrImageTooLarge) {
			return models.UploadedImage{}, err
		}
		log.Err(err).Str("func", "uploadService.UploadImage").Str("file", fileName).Msg("error storing image")
		return models.UploadedImage{}, fmt.Errorf("error storing image: %w", err)
	}

	log.Info().Str("file", fileName).Int64("size", size).Msg("image uploaded")

	return models.UploadedImage{
		URL:          UploadsURLPrefix + fileName,
		FileName:     fileName,
		OriginalName: upload.OriginalName,
		Size:         size,
		MimeType:     mimeType,
	}, nil
}

// fileName builds "<unix millis>-<12 hex><ext>", keeping the extension of
// the original name.
func (s *uploadService) fileName(originalName string) (string, error) {
	suffix := make([]byte, 6)
	if _, err := rand.Read(suffix); err != nil {
		return "", fmt.Errorf("error generating file name: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(filepath.Base(originalName)))
	if ext == "" || ext == "." {
		ext = defaultImageExt
	}

	return fmt.Sprintf("%d-%s%s", s.now().UnixMilli(), hex.EncodeToString(suffix), ext), nil
}
