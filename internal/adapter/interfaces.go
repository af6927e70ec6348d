// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides clients for the external image host that stores
// user avatars.
//
// The primary abstraction is [ImageHost], which decouples the avatar service
// from the concrete provider. Two implementations ship with the package: a
// signed Cloudinary upload ([NewCloudinaryImageHost]) and an S3-compatible
// bucket ([NewS3ImageHost]). [NewImageHost] picks one from configuration.
//
// Every failure of the remote side is reported as [ErrUploadFailed] so that
// callers can use [errors.Is] regardless of the provider.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-contacts/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/image_host_mock.go -package=mock

// ImageHost stores raw image bytes and returns the public URL they can be
// fetched from.
type ImageHost interface {
	// Upload sends image to the host. The returned URL is absolute.
	Upload(ctx context.Context, image models.Image) (string, error)
}
