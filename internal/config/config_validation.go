// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] satisfies all
// startup invariants. Credentials of the image host are not required here:
// the avatar endpoint reports upload failures on its own.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty DSN", ErrInvalidStorageConfigs)
	}
	switch cfg.Storage.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.MaxPageSize == 0 {
		return ErrInvalidServerConfigs
	}

	switch cfg.Adapter.ImageHostProvider {
	case ImageHostCloudinary, ImageHostS3:
	default:
		return fmt.Errorf("%w: unsupported image host %q", ErrInvalidAdapterConfigs, cfg.Adapter.ImageHostProvider)
	}

	return nil
}
