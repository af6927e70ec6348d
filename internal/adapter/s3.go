// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/MKhiriev/go-contacts/internal/config"
	"github.com/MKhiriev/go-contacts/internal/logger"
	"github.com/MKhiriev/go-contacts/internal/utils"
	"github.com/MKhiriev/go-contacts/models"
)

const defaultS3Region = "us-east-1"

// objectPutter is the part of *s3.Client the image host needs.
type objectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type s3ImageHost struct {
	client        objectPutter
	bucket        string
	publicBaseURL string

	keys *utils.UUIDGenerator

	logger *logger.Logger
}

// NewS3ImageHost constructs an [ImageHost] backed by an S3-compatible
// bucket. A non-empty cfg.S3.Endpoint switches the client to path-style
// addressing so MinIO and similar servers work.
func NewS3ImageHost(ctx context.Context, cfg config.Adapter, logger *logger.Logger) (ImageHost, error) {
	s3Cfg := cfg.S3
	if s3Cfg.Bucket == "" {
		return nil, fmt.Errorf("%w: empty s3 bucket", ErrImageHostNotConfigured)
	}

	region := s3Cfg.Region
	if region == "" {
		region = defaultS3Region
	}

	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(region),
		// a buildable client lets the SDK apply AWS_CA_BUNDLE
		awsconfig.WithHTTPClient(awshttp.NewBuildableClient().WithTimeout(cfg.RequestTimeout)),
	}
	if s3Cfg.AccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s3Cfg.AccessKeyID,
			s3Cfg.SecretAccessKey,
			"",
		)))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("error loading aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if s3Cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(s3Cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &s3ImageHost{
		client:        client,
		bucket:        s3Cfg.Bucket,
		publicBaseURL: publicBaseURL(s3Cfg, region),
		keys:          utils.NewUUIDGenerator(),
		logger:        logger,
	}, nil
}

func publicBaseURL(cfg config.S3, region string) string {
	switch {
	case cfg.PublicBaseURL != "":
		return strings.TrimRight(cfg.PublicBaseURL, "/")
	case cfg.Endpoint != "":
		return strings.TrimRight(cfg.Endpoint, "/") + "/" + cfg.Bucket
	default:
		return fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, region)
	}
}

// Upload implements [ImageHost]. Objects are stored under
// avatars/<owner id>/<uuid><ext>.
func (h *s3ImageHost) Upload(ctx context.Context, image models.Image) (string, error) {
	log := logger.FromContext(ctx)

	key := h.objectKey(image)

	_, err := h.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(h.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(image.Data),
		ContentLength: aws.Int64(int64(len(image.Data))),
		ContentType:   aws.String(contentTypeOrDefault(image.ContentType)),
	})
	if err != nil {
		log.Err(err).Str("func", "s3ImageHost.Upload").Str("key", key).Msg("put object failed")
		return "", fmt.Errorf("%w: %w", ErrUploadFailed, err)
	}

	return h.publicBaseURL + "/" + key, nil
}

func (h *s3ImageHost) objectKey(image models.Image) string {
	return fmt.Sprintf("avatars/%d/%s%s", image.OwnerID, h.keys.Generate(), imageExtension(image))
}

var extensionsByContentType = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// imageExtension prefers the client file name and falls back to the
// content type.
func imageExtension(image models.Image) string {
	if ext := strings.ToLower(path.Ext(image.Filename)); ext != "" {
		return ext
	}

	return extensionsByContentType[image.ContentType]
}

func contentTypeOrDefault(contentType string) string {
	if contentType == "" {
		return "application/octet-stream"
	}
	return contentType
}
