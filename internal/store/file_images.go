// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
)

// imageFileStorage is the local-filesystem implementation of [ImageStorage].
type imageFileStorage struct {
	dir    string
	logger *logger.Logger
}

// NewImageFileStorage makes sure dir exists and returns a storage writing
// into it.
func NewImageFileStorage(dir string, logger *logger.Logger) (ImageStorage, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("error resolving uploads directory: %w", err)
	}
	if err = os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("error creating uploads directory: %w", err)
	}

	logger.Debug().Str("dir", abs).Msg("image storage ready")
	return &imageFileStorage{dir: abs, logger: logger}, nil
}

func (s *imageFileStorage) Dir() string {
	return s.dir
}

// Save copies r into dir/name. name must be a bare file name.
func (s *imageFileStorage) Save(ctx context.Context, name string, r io.Reader, maxBytes int64) (int64, error) {
	log := logger.FromContext(ctx)

	if name == "" || filepath.Base(name) != name {
		return 0, fmt.Errorf("invalid file name %q", name)
	}

	path := filepath.Join(s.dir, name)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		log.Err(err).Str("func", "imageFileStorage.Save").Str("file", name).Msg("error creating file")
		return 0, fmt.Errorf("error creating file: %w", err)
	}

	// one extra byte detects payloads above the limit
	written, err := io.Copy(f, io.LimitReader(r, maxBytes+1))
	closeErr := f.Close()

	switch {
	case err == nil && written > maxBytes:
		err = ErrImageTooLarge
	case err == nil:
		err = closeErr
	}

	if err != nil {
		if rmErr := os.Remove(path); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) {
			log.Err(rmErr).Str("func", "imageFileStorage.Save").Str("file", name).Msg("error removing partial file")
		}
		if errors.Is(err, ErrImageTooLarge) {
			return 0, err
		}
		return 0, fmt.Errorf("error writing file: %w", err)
	}

	return written, nil
}
