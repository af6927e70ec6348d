package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-contacts/internal/logger"
	"github.com/MKhiriev/go-contacts/internal/store"
	"github.com/MKhiriev/go-contacts/internal/utils"
	"github.com/MKhiriev/go-contacts/internal/validators"
	"github.com/MKhiriev/go-contacts/models"
)

type userService struct {
	userRepository store.UserRepository
	validator      validators.Validator

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		validator:      validators.NewRequestValidator(),
		logger:         logger,
	}
}

func (s *userService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	user, err := s.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "userService.GetUser").Int64("user_id", userID).Msg("user lookup failed")
		return models.User{}, fmt.Errorf("user lookup failed: %w", err)
	}

	return user, nil
}

func (s *userService) GetUserAsSuperuser(ctx context.Context, requester models.User, userID int64) (models.User, error) {
	if !requester.IsSuperuser {
		logger.FromContext(ctx).Error().
			Str("func", "userService.GetUserAsSuperuser").
			Int64("requester_id", requester.ID).
			Int64("user_id", userID).
			Msg("non-superuser requested another user")
		return models.User{}, ErrNotSuperuser
	}

	return s.GetUser(ctx, userID)
}

// UpdateProfile applies a partial update. A new password is re-hashed
// before it reaches the repository. An empty update returns the stored user.
func (s *userService) UpdateProfile(ctx context.Context, userID int64, update models.UserUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	if update.Email != nil {
		email := utils.NormalizeEmail(*update.Email)
		update.Email = &email
	}

	if err := s.validator.Validate(ctx, update); err != nil {
		log.Err(err).Str("func", "userService.UpdateProfile").Int64("user_id", userID).Msg("invalid profile update")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if update.IsEmpty() {
		return s.GetUser(ctx, userID)
	}

	changes := models.UserChanges{
		Email:  update.Email,
		Avatar: update.Avatar,
	}
	if update.Password != nil {
		hashedPassword, err := utils.HashPassword(*update.Password)
		if err != nil {
			log.Err(err).Str("func", "userService.UpdateProfile").Int64("user_id", userID).Msg("password hashing failed")
			if errors.Is(err, utils.ErrPasswordTooLong) {
				return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
			}
			return models.User{}, err
		}
		changes.HashedPassword = &hashedPassword
	}

	user, err := s.userRepository.UpdateUser(ctx, userID, changes)
	if err != nil {
		log.Err(err).Str("func", "userService.UpdateProfile").Int64("user_id", userID).Msg("profile update failed")
		return models.User{}, fmt.Errorf("profile update failed: %w", err)
	}

	return user, nil
}
