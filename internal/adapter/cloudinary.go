// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-contacts/internal/config"
	"github.com/MKhiriev/go-contacts/internal/logger"
	"github.com/MKhiriev/go-contacts/models"
)

type cloudinaryImageHost struct {
	client *resty.Client

	cloudName string
	apiKey    string
	apiSecret string

	now func() time.Time

	logger *logger.Logger
}

// cloudinaryUploadResult is the subset of the upload API response we read.
type cloudinaryUploadResult struct {
	URL       string `json:"url"`
	SecureURL string `json:"secure_url"`
}

// NewCloudinaryImageHost constructs an [ImageHost] that performs signed
// uploads against the Cloudinary REST API rooted at cfg.Cloudinary.BaseURL.
//
// Returns an error if the base URL cannot be parsed. Missing credentials are
// not an error here: the server must start without them, and Upload reports
// [ErrImageHostNotConfigured] instead.
func NewCloudinaryImageHost(cfg config.Adapter, logger *logger.Logger) (ImageHost, error) {
	baseURL, err := normalizeBaseURL(cfg.Cloudinary.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidImageHostAddress, err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	return &cloudinaryImageHost{
		client:    client,
		cloudName: cfg.Cloudinary.CloudName,
		apiKey:    cfg.Cloudinary.APIKey,
		apiSecret: cfg.Cloudinary.APISecret,
		now:       time.Now,
		logger:    logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Upload implements [ImageHost]. It POSTs the image as multipart form data
// to /v1_1/{cloud_name}/image/upload and returns the "url" field of the
// response, falling back to "secure_url".
func (c *cloudinaryImageHost) Upload(ctx context.Context, image models.Image) (string, error) {
	log := logger.FromContext(ctx)

	if c.cloudName == "" || c.apiKey == "" || c.apiSecret == "" {
		return "", ErrImageHostNotConfigured
	}

	timestamp := strconv.FormatInt(c.now().Unix(), 10)

	filename := image.Filename
	if filename == "" {
		filename = "avatar"
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetFileReader("file", filename, bytes.NewReader(image.Data)).
		SetFormData(map[string]string{
			"api_key":   c.apiKey,
			"timestamp": timestamp,
			"signature": c.sign(timestamp),
		}).
		SetPathParam("cloudName", c.cloudName).
		Post("/v1_1/{cloudName}/image/upload")
	if err != nil {
		log.Err(err).Str("func", "cloudinaryImageHost.Upload").Msg("upload request failed")
		return "", fmt.Errorf("%w: %w", ErrUploadFailed, err)
	}
	if err = mapHTTPError(resp); err != nil {
		log.Err(err).Str("func", "cloudinaryImageHost.Upload").Int("status", resp.StatusCode()).Msg("image host rejected upload")
		return "", err
	}

	var result cloudinaryUploadResult
	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return "", fmt.Errorf("%w: decode response: %w", ErrUploadFailed, err)
	}

	if result.URL != "" {
		return result.URL, nil
	}
	if result.SecureURL != "" {
		return result.SecureURL, nil
	}

	return "", fmt.Errorf("%w: response carries no url", ErrUploadFailed)
}

// sign computes the request signature: the hex SHA-1 of the sorted signed
// parameters followed by the API secret. Only timestamp is signed.
func (c *cloudinaryImageHost) sign(timestamp string) string {
	sum := sha1.Sum([]byte("timestamp=" + timestamp + c.apiSecret))
	return hex.EncodeToString(sum[:])
}
