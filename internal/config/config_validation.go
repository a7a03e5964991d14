// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}
	if cfg.Storage.DB.MaxOpenConns < 0 {
		return fmt.Errorf("%w: max open connections must not be negative", ErrInvalidStorageConfigs)
	}

	if len(cfg.App.AccessTokenSecret) < minSecretLength {
		return fmt.Errorf("%w: access token secret must be at least %d characters", ErrInvalidAppConfigs, minSecretLength)
	}
	if len(cfg.App.RefreshTokenSecret) < minSecretLength {
		return fmt.Errorf("%w: refresh token secret must be at least %d characters", ErrInvalidAppConfigs, minSecretLength)
	}
	if cfg.App.AccessTokenTTL <= 0 || cfg.App.RefreshTokenTTL <= 0 {
		return fmt.Errorf("%w: token lifetimes must be positive", ErrInvalidAppConfigs)
	}

	if _, _, err := net.SplitHostPort(cfg.Server.HTTPAddress); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidServerConfigs, err)
	}
	if cfg.Server.RequestTimeout < 0 {
		return fmt.Errorf("%w: request timeout must not be negative", ErrInvalidServerConfigs)
	}

	return nil
}
