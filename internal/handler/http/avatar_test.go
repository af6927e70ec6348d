package http

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-contacts/internal/adapter"
	"github.com/MKhiriev/go-contacts/internal/service"
	"github.com/MKhiriev/go-contacts/models"
)

var avatarBytes = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func multipartAvatar(t *testing.T, field, filename string, data []byte) (*bytes.Buffer, string) {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	return &body, mw.FormDataContentType()
}

func TestUploadAvatar_Multipart(t *testing.T) {
	avatars := &mockAvatarService{
		uploadAvatarFn: func(_ context.Context, currentUserID, targetUserID int64, image models.Image) (string, error) {
			assert.Equal(t, testUser.ID, currentUserID)
			assert.Equal(t, testUser.ID, targetUserID)
			assert.Equal(t, "me.png", image.Filename)
			assert.Equal(t, avatarBytes, image.Data)
			return "https://img.example.com/me.png", nil
		},
	}
	h := newTestHandler(t, &service.Services{AvatarService: avatars})

	body, contentType := multipartAvatar(t, "file", "me.png", avatarBytes)
	req := httptest.NewRequest(http.MethodPost, "/users/7/avatar/", body)
	req.Header.Set("Authorization", "Bearer "+testToken)
	req.Header.Set("Content-Type", contentType)
	rec := serve(h, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"avatar_url":"https://img.example.com/me.png"}`, rec.Body.String())
}

func TestUploadAvatar_RawBody(t *testing.T) {
	avatars := &mockAvatarService{
		uploadAvatarFn: func(_ context.Context, _, _ int64, image models.Image) (string, error) {
			assert.Empty(t, image.Filename)
			assert.Equal(t, "image/png", image.ContentType)
			assert.Equal(t, avatarBytes, image.Data)
			return "https://img.example.com/raw.png", nil
		},
	}
	h := newTestHandler(t, &service.Services{AvatarService: avatars})

	req := httptest.NewRequest(http.MethodPost, "/users/7/avatar", bytes.NewReader(avatarBytes))
	req.Header.Set("Authorization", "Bearer "+testToken)
	req.Header.Set("Content-Type", "image/png")
	rec := serve(h, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "raw.png")
}

func TestUploadAvatar_Errors(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		field      string
		serviceErr error
		wantStatus int
		wantBody   string
	}{
		{name: "other user", path: "/users/8/avatar/", field: "file", serviceErr: service.ErrUnauthorizedAccessToDifferentUserData, wantStatus: http.StatusForbidden},
		{name: "not an image", path: "/users/7/avatar/", field: "file", serviceErr: fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, service.ErrNotAnImage), wantStatus: http.StatusBadRequest},
		{name: "host failure", path: "/users/7/avatar/", field: "file", serviceErr: adapter.ErrUploadFailed, wantStatus: http.StatusBadGateway, wantBody: http.StatusText(http.StatusBadGateway)},
		{name: "host not configured", path: "/users/7/avatar/", field: "file", serviceErr: adapter.ErrImageHostNotConfigured, wantStatus: http.StatusBadGateway},
		{name: "bad id", path: "/users/me/avatar/", field: "file", wantStatus: http.StatusBadRequest},
		{name: "missing file field", path: "/users/7/avatar/", field: "picture", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			avatars := &mockAvatarService{
				uploadAvatarFn: func(_ context.Context, _, _ int64, _ models.Image) (string, error) {
					return "", tt.serviceErr
				},
			}
			h := newTestHandler(t, &service.Services{AvatarService: avatars})

			body, contentType := multipartAvatar(t, tt.field, "me.png", avatarBytes)
			req := httptest.NewRequest(http.MethodPost, tt.path, body)
			req.Header.Set("Authorization", "Bearer "+testToken)
			req.Header.Set("Content-Type", contentType)
			rec := serve(h, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, strings.TrimSpace(rec.Body.String()))
			}
		})
	}
}

func TestUploadAvatar_TooLarge(t *testing.T) {
	h := newTestHandler(t, &service.Services{})

	req := httptest.NewRequest(http.MethodPost, "/users/7/avatar/", bytes.NewReader(make([]byte, maxUploadBody+1)))
	req.Header.Set("Authorization", "Bearer "+testToken)
	req.Header.Set("Content-Type", "image/png")
	rec := serve(h, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), service.ErrImageTooLarge.Error())
}
