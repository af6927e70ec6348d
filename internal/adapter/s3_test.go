package adapter

import (
	"context"
	"encoding/pem"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-contacts/internal/config"
	"github.com/MKhiriev/go-contacts/internal/logger"
	"github.com/MKhiriev/go-contacts/internal/utils"
	"github.com/MKhiriev/go-contacts/models"
)

type fakePutter struct {
	input *s3.PutObjectInput
	body  []byte
	err   error
}

func (f *fakePutter) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.input = params
	if params.Body != nil {
		f.body, _ = io.ReadAll(params.Body)
	}
	if f.err != nil {
		return nil, f.err
	}
	return &s3.PutObjectOutput{}, nil
}

func newFakeS3Host(putter objectPutter) *s3ImageHost {
	return &s3ImageHost{
		client:        putter,
		bucket:        "avatars-bucket",
		publicBaseURL: "https://cdn.example.com",
		keys:          utils.NewUUIDGenerator(),
		logger:        logger.Nop(),
	}
}

func TestS3Upload_PutsObjectUnderOwnerPrefix(t *testing.T) {
	putter := &fakePutter{}
	host := newFakeS3Host(putter)

	url, err := host.Upload(context.Background(), models.Image{
		OwnerID:     42,
		Filename:    "Me.PNG",
		ContentType: "image/png",
		Data:        []byte("png-bytes"),
	})

	require.NoError(t, err)
	require.NotNil(t, putter.input)
	assert.Equal(t, "avatars-bucket", *putter.input.Bucket)
	assert.Equal(t, "image/png", *putter.input.ContentType)
	assert.Equal(t, int64(9), *putter.input.ContentLength)
	assert.Equal(t, []byte("png-bytes"), putter.body)

	key := *putter.input.Key
	assert.True(t, strings.HasPrefix(key, "avatars/42/"), key)
	assert.True(t, strings.HasSuffix(key, ".png"), key)
	assert.Equal(t, "https://cdn.example.com/"+key, url)
}

func TestS3Upload_KeysAreUnique(t *testing.T) {
	putter := &fakePutter{}
	host := newFakeS3Host(putter)

	_, err := host.Upload(context.Background(), models.Image{OwnerID: 1, Data: []byte("a")})
	require.NoError(t, err)
	first := *putter.input.Key

	_, err = host.Upload(context.Background(), models.Image{OwnerID: 1, Data: []byte("a")})
	require.NoError(t, err)

	assert.NotEqual(t, first, *putter.input.Key)
}

func TestS3Upload_PutError(t *testing.T) {
	host := newFakeS3Host(&fakePutter{err: errors.New("access denied")})

	_, err := host.Upload(context.Background(), models.Image{OwnerID: 1, Data: []byte("a")})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUploadFailed)
	assert.Contains(t, err.Error(), "access denied")
}

func TestImageExtension(t *testing.T) {
	tests := []struct {
		name  string
		image models.Image
		want  string
	}{
		{name: "from filename", image: models.Image{Filename: "a.JPEG"}, want: ".jpeg"},
		{name: "from content type", image: models.Image{ContentType: "image/jpeg"}, want: ".jpg"},
		{name: "filename wins", image: models.Image{Filename: "a.gif", ContentType: "image/png"}, want: ".gif"},
		{name: "unknown", image: models.Image{ContentType: "application/octet-stream"}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, imageExtension(tt.image))
		})
	}
}

func TestPublicBaseURL(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.S3
		want string
	}{
		{name: "explicit", cfg: config.S3{PublicBaseURL: "https://cdn/", Bucket: "b"}, want: "https://cdn"},
		{name: "custom endpoint", cfg: config.S3{Endpoint: "http://minio:9000/", Bucket: "b"}, want: "http://minio:9000/b"},
		{name: "aws", cfg: config.S3{Bucket: "b"}, want: "https://b.s3.eu-west-1.amazonaws.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, publicBaseURL(tt.cfg, "eu-west-1"))
		})
	}
}

func TestNewS3ImageHost_EmptyBucket(t *testing.T) {
	_, err := NewS3ImageHost(context.Background(), config.Adapter{}, logger.Nop())

	assert.ErrorIs(t, err, ErrImageHostNotConfigured)
}

func TestNewS3ImageHost_UploadsToEndpoint(t *testing.T) {
	var gotMethod, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		_, _ = io.Copy(io.Discard, r.Body)
		w.Header().Set("ETag", `"etag"`)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	host, err := NewS3ImageHost(context.Background(), config.Adapter{
		RequestTimeout: 5 * time.Second,
		S3: config.S3{
			Endpoint:        srv.URL,
			Region:          "us-east-1",
			Bucket:          "avatars",
			AccessKeyID:     "minio",
			SecretAccessKey: "minio-secret",
		},
	}, logger.Nop())
	require.NoError(t, err)

	url, err := host.Upload(context.Background(), models.Image{OwnerID: 5, Filename: "a.png", ContentType: "image/png", Data: []byte("img")})

	require.NoError(t, err)
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.True(t, strings.HasPrefix(gotPath, "/avatars/avatars/5/"), gotPath)
	assert.True(t, strings.HasPrefix(url, srv.URL+"/avatars/avatars/5/"), url)
}

func TestNewS3ImageHost_CustomCABundle(t *testing.T) {
	var gotPath string
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = io.Copy(io.Discard, r.Body)
		w.Header().Set("ETag", `"etag"`)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	bundle := filepath.Join(t.TempDir(), "ca.pem")
	certPEM := pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: srv.Certificate().Raw})
	require.NoError(t, os.WriteFile(bundle, certPEM, 0o600))
	t.Setenv("AWS_CA_BUNDLE", bundle)

	host, err := NewS3ImageHost(context.Background(), config.Adapter{
		RequestTimeout: 5 * time.Second,
		S3: config.S3{
			Endpoint:        srv.URL,
			Region:          "us-east-1",
			Bucket:          "avatars",
			AccessKeyID:     "minio",
			SecretAccessKey: "minio-secret",
		},
	}, logger.Nop())
	require.NoError(t, err)

	// the test server's self-signed certificate is trusted only via the bundle
	_, err = host.Upload(context.Background(), models.Image{OwnerID: 5, Filename: "a.png", ContentType: "image/png", Data: []byte("img")})

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(gotPath, "/avatars/avatars/5/"), gotPath)
}
