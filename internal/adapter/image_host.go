package adapter

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-contacts/internal/config"
	"github.com/MKhiriev/go-contacts/internal/logger"
)

// NewImageHost returns the [ImageHost] selected by cfg.ImageHostProvider.
func NewImageHost(ctx context.Context, cfg config.Adapter, logger *logger.Logger) (ImageHost, error) {
	switch cfg.ImageHostProvider {
	case config.ImageHostCloudinary:
		return NewCloudinaryImageHost(cfg, logger)
	case config.ImageHostS3:
		return NewS3ImageHost(ctx, cfg, logger)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedImageHost, cfg.ImageHostProvider)
	}
}
