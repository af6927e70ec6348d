package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-contacts/internal/adapter"
	"github.com/MKhiriev/go-contacts/internal/logger"
	"github.com/MKhiriev/go-contacts/internal/mock"
	"github.com/MKhiriev/go-contacts/internal/store"
	"github.com/MKhiriev/go-contacts/models"
)

// pngHeader is enough for http.DetectContentType to report image/png.
var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func newTestAvatarSvc(t *testing.T) (AvatarService, *mock.MockUserRepository, *mock.MockImageHost) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	host := mock.NewMockImageHost(ctrl)
	return NewAvatarService(repo, host, logger.Nop()), repo, host
}

func TestAvatarService_UploadAvatar_Success(t *testing.T) {
	svc, repo, host := newTestAvatarSvc(t)
	url := "https://res.cloudinary.com/demo/a.png"

	gomock.InOrder(
		host.EXPECT().
			Upload(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, image models.Image) (string, error) {
				assert.Equal(t, int64(4), image.OwnerID)
				assert.Equal(t, "image/png", image.ContentType)
				assert.Equal(t, pngHeader, image.Data)
				return url, nil
			}),
		repo.EXPECT().
			UpdateUser(gomock.Any(), int64(4), models.UserChanges{Avatar: &url}).
			Return(models.User{ID: 4, Avatar: &url}, nil),
	)

	got, err := svc.UploadAvatar(context.Background(), 4, 4, models.Image{Filename: "a.png", Data: pngHeader})

	require.NoError(t, err)
	assert.Equal(t, url, got)
}

func TestAvatarService_UploadAvatar_DifferentUser(t *testing.T) {
	svc, _, _ := newTestAvatarSvc(t)

	_, err := svc.UploadAvatar(context.Background(), 4, 5, models.Image{Data: pngHeader})

	assert.ErrorIs(t, err, ErrUnauthorizedAccessToDifferentUserData)
}

func TestAvatarService_UploadAvatar_InvalidImage(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		wantErr error
	}{
		{name: "empty", data: nil, wantErr: ErrEmptyImage},
		{name: "not an image", data: []byte("hello, plain text"), wantErr: ErrNotAnImage},
		{name: "too large", data: make([]byte, MaxAvatarSize+1), wantErr: ErrImageTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _ := newTestAvatarSvc(t)

			_, err := svc.UploadAvatar(context.Background(), 4, 4, models.Image{Data: tt.data})

			assert.ErrorIs(t, err, ErrInvalidDataProvided)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAvatarService_UploadAvatar_HostFailure(t *testing.T) {
	svc, _, host := newTestAvatarSvc(t)
	host.EXPECT().Upload(gomock.Any(), gomock.Any()).Return("", adapter.ErrUploadFailed)

	_, err := svc.UploadAvatar(context.Background(), 4, 4, models.Image{Data: pngHeader})

	assert.ErrorIs(t, err, adapter.ErrUploadFailed)
}

func TestAvatarService_UploadAvatar_SaveFailure(t *testing.T) {
	svc, repo, host := newTestAvatarSvc(t)
	dbErr := errors.New("db down")
	host.EXPECT().Upload(gomock.Any(), gomock.Any()).Return("https://cdn/a.png", nil)
	repo.EXPECT().UpdateUser(gomock.Any(), int64(4), gomock.Any()).Return(models.User{}, dbErr)

	url, err := svc.UploadAvatar(context.Background(), 4, 4, models.Image{Data: pngHeader})

	assert.Empty(t, url)
	assert.ErrorIs(t, err, dbErr)
}

func TestAvatarService_UploadAvatar_UserGone(t *testing.T) {
	svc, repo, host := newTestAvatarSvc(t)
	host.EXPECT().Upload(gomock.Any(), gomock.Any()).Return("https://cdn/a.png", nil)
	repo.EXPECT().UpdateUser(gomock.Any(), int64(4), gomock.Any()).Return(models.User{}, store.ErrNoUserWasFound)

	_, err := svc.UploadAvatar(context.Background(), 4, 4, models.Image{Data: pngHeader})

	assert.ErrorIs(t, err, store.ErrNoUserWasFound)
}

func TestCheckImage_KeepsDeclaredContentType(t *testing.T) {
	image := models.Image{ContentType: "image/x-custom", Data: pngHeader}

	require.NoError(t, checkImage(&image))
	assert.Equal(t, "image/x-custom", image.ContentType)
}
