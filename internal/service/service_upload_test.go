// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/mock"
	"github.com/MKhiriev/go-todo-keeper/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var uploadNamePattern = regexp.MustCompile(`^\d+-[0-9a-f]{12}\.[a-z]+$`)

func newTestUploadSvc(t *testing.T) (*uploadService, string) {
	t.Helper()
	images, err := store.NewImageFileStorage(t.TempDir(), logger.Nop())
	require.NoError(t, err)

	svc := NewUploadService(images, logger.Nop()).(*uploadService)
	svc.now = func() time.Time { return time.UnixMilli(1700000000123) }
	return svc, images.Dir()
}

func TestUploadService_UploadImage(t *testing.T) {
	svc, dir := newTestUploadSvc(t)

	img, err := svc.UploadImage(context.Background(), ImageUpload{
		OriginalName: "Photo.JPG",
		MimeType:     "image/jpeg",
		Content:      strings.NewReader("jpeg-bytes"),
	})
	require.NoError(t, err)

	assert.Regexp(t, uploadNamePattern, img.FileName)
	assert.True(t, strings.HasPrefix(img.FileName, "1700000000123-"))
	assert.True(t, strings.HasSuffix(img.FileName, ".jpg"))
	assert.Equal(t, "/uploads/"+img.FileName, img.URL)
	assert.Equal(t, "Photo.JPG", img.OriginalName)
	assert.Equal(t, int64(len("jpeg-bytes")), img.Size)
	assert.Equal(t, "image/jpeg", img.MimeType)

	content, err := os.ReadFile(filepath.Join(dir, img.FileName))
	require.NoError(t, err)
	assert.Equal(t, "jpeg-bytes", string(content))
}

func TestUploadService_DefaultExtension(t *testing.T) {
	svc, _ := newTestUploadSvc(t)

	img, err := svc.UploadImage(context.Background(), ImageUpload{
		OriginalName: "blob",
		MimeType:     "image/webp",
		Content:      strings.NewReader("x"),
	})
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(img.FileName, ".png"))
}

func TestUploadService_UniqueNames(t *testing.T) {
	svc, _ := newTestUploadSvc(t)

	a, err := svc.UploadImage(context.Background(), ImageUpload{OriginalName: "a.png", MimeType: "image/png", Content: strings.NewReader("a")})
	require.NoError(t, err)
	b, err := svc.UploadImage(context.Background(), ImageUpload{OriginalName: "a.png", MimeType: "image/png", Content: strings.NewReader("b")})
	require.NoError(t, err)

	assert.NotEqual(t, a.FileName, b.FileName)
}

func TestUploadService_Rejections(t *testing.T) {
	svc, _ := newTestUploadSvc(t)
	ctx := context.Background()

	_, err := svc.UploadImage(ctx, ImageUpload{OriginalName: "a.png", MimeType: "image/png"})
	assert.ErrorIs(t, err, ErrNoImageProvided)

	_, err = svc.UploadImage(ctx, ImageUpload{OriginalName: "a.svg", MimeType: "image/svg+xml", Content: strings.NewReader("<svg/>")})
	assert.ErrorIs(t, err, ErrUnsupportedImageFormat)

	_, err = svc.UploadImage(ctx, ImageUpload{
		OriginalName: "big.png",
		MimeType:     "image/png",
		Content:      strings.NewReader(strings.Repeat("x", MaxImageSize+1)),
	})
	assert.ErrorIs(t, err, store.ErrImageTooLarge)
}

func TestUploadService_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	images := mock.NewMockImageStorage(ctrl)
	svc := NewUploadService(images, logger.Nop())

	diskErr := errors.New("disk full")
	images.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), int64(MaxImageSize)).Return(int64(0), diskErr)

	_, err := svc.UploadImage(context.Background(), ImageUpload{OriginalName: "a.gif", MimeType: "image/gif", Content: strings.NewReader("x")})
	assert.ErrorIs(t, err, diskErr)
}
