package service

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-contacts/internal/adapter"
	"github.com/MKhiriev/go-contacts/internal/logger"
	"github.com/MKhiriev/go-contacts/internal/store"
	"github.com/MKhiriev/go-contacts/models"
)

// MaxAvatarSize is the largest accepted avatar in bytes.
const MaxAvatarSize = 5 << 20

type avatarService struct {
	userRepository store.UserRepository
	imageHost      adapter.ImageHost

	logger *logger.Logger
}

func NewAvatarService(userRepository store.UserRepository, imageHost adapter.ImageHost, logger *logger.Logger) AvatarService {
	return &avatarService{
		userRepository: userRepository,
		imageHost:      imageHost,
		logger:         logger,
	}
}

// UploadAvatar sends the image to the image host and stores the returned
// URL on the user right away. When storing fails the uploaded image stays
// on the host; its URL is logged.
func (s *avatarService) UploadAvatar(ctx context.Context, currentUserID, targetUserID int64, image models.Image) (string, error) {
	log := logger.FromContext(ctx)

	if currentUserID != targetUserID {
		log.Error().Str("func", "avatarService.UploadAvatar").
			Int64("user_id", currentUserID).Int64("target_user_id", targetUserID).
			Msg("attempt to change avatar of a different user")
		return "", ErrUnauthorizedAccessToDifferentUserData
	}

	if err := checkImage(&image); err != nil {
		log.Err(err).Str("func", "avatarService.UploadAvatar").Int64("user_id", currentUserID).Msg("invalid avatar")
		return "", fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	image.OwnerID = targetUserID

	url, err := s.imageHost.Upload(ctx, image)
	if err != nil {
		log.Err(err).Str("func", "avatarService.UploadAvatar").Int64("user_id", currentUserID).Msg("avatar upload failed")
		return "", fmt.Errorf("avatar upload failed: %w", err)
	}

	if _, err = s.userRepository.UpdateUser(ctx, targetUserID, models.UserChanges{Avatar: &url}); err != nil {
		log.Err(err).Str("func", "avatarService.UploadAvatar").
			Int64("user_id", currentUserID).Str("orphaned_url", url).
			Msg("avatar uploaded but not saved")
		return "", fmt.Errorf("saving avatar url failed: %w", err)
	}

	log.Info().Int64("user_id", targetUserID).Str("avatar_url", url).Msg("avatar updated")

	return url, nil
}

// checkImage rejects empty, oversized and non-image payloads and fills in
// the sniffed content type when the client sent none.
func checkImage(image *models.Image) error {
	if len(image.Data) == 0 {
		return ErrEmptyImage
	}
	if len(image.Data) > MaxAvatarSize {
		return ErrImageTooLarge
	}

	detected := http.DetectContentType(image.Data)
	if !strings.HasPrefix(detected, "image/") {
		return fmt.Errorf("%w: detected %s", ErrNotAnImage, detected)
	}
	if image.ContentType == "" || image.ContentType == "application/octet-stream" {
		image.ContentType = detected
	}

	return nil
}
