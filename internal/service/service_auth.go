// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-contacts/internal/config"
	"github.com/MKhiriev/go-contacts/internal/logger"
	"github.com/MKhiriev/go-contacts/internal/store"
	"github.com/MKhiriev/go-contacts/internal/utils"
	"github.com/MKhiriev/go-contacts/internal/validators"
	"github.com/MKhiriev/go-contacts/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and bcrypt for password
// hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// validator checks registration and login payloads.
	validator validators.Validator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		validator:      validators.NewRequestValidator(),
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// RegisterUser creates a new active, non-superuser, unverified account.
//
// Returns the persisted user (with a server-assigned ID) or:
//   - ErrInvalidDataProvided if the e-mail is malformed or the password is
//     empty or longer than 72 bytes.
//   - A wrapped store.ErrEmailAlreadyExists if the e-mail is taken.
func (a *authService) RegisterUser(ctx context.Context, in models.UserCreate) (models.User, error) {
	log := logger.FromContext(ctx)
	in.Email = utils.NormalizeEmail(in.Email)

	if err := a.validator.Validate(ctx, in); err != nil {
		log.Err(err).Str("func", "authService.RegisterUser").Str("email", in.Email).Msg("invalid user data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	hashedPassword, err := utils.HashPassword(in.Password)
	if err != nil {
		log.Err(err).Str("func", "authService.RegisterUser").Msg("password hashing failed")
		if errors.Is(err, utils.ErrPasswordTooLong) {
			return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
		}
		return models.User{}, err
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Email:          in.Email,
		HashedPassword: hashedPassword,
		IsActive:       true,
	})
	if err != nil {
		log.Err(err).Str("func", "authService.RegisterUser").Str("email", in.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Int64("user_id", registeredUser.ID).Msg("user has registered")

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// An unknown e-mail and a wrong password both yield ErrWrongCredentials and
// both cost one bcrypt comparison, so that callers cannot probe for
// registered addresses. E-mails are compared case-insensitively. Deactivated accounts
// yield ErrInactiveUser.
func (a *authService) Login(ctx context.Context, credentials models.UserLogin) (models.User, error) {
	log := logger.FromContext(ctx)
	credentials.Email = utils.NormalizeEmail(credentials.Email)

	if err := a.validator.Validate(ctx, credentials); err != nil {
		log.Err(err).Str("func", "authService.Login").Msg("invalid credentials provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, credentials.Email)
	if err != nil {
		log.Err(err).Str("func", "authService.Login").Str("email", credentials.Email).Msg("user search by email failed")
		if errors.Is(err, store.ErrNoUserWasFound) {
			// same bcrypt cost as a wrong password
			utils.CheckPasswordAgainstDummy(credentials.Password)
			return models.User{}, ErrWrongCredentials
		}
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !utils.CheckPassword(foundUser.HashedPassword, credentials.Password) {
		log.Error().Str("func", "authService.Login").Int64("user_id", foundUser.ID).Msg("wrong password")
		return models.User{}, ErrWrongCredentials
	}

	if !foundUser.IsActive {
		log.Error().Str("func", "authService.Login").Int64("user_id", foundUser.ID).Msg("inactive user tried to log in")
		return models.User{}, ErrInactiveUser
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "authService.CreateToken").Int64("user_id", user.ID).Msg("token creation failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Expired tokens yield ErrTokenIsExpired; any other validation failure
// (bad signature, algorithm, issuer, audience, malformed) yields
// ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, fmt.Errorf("%w: %w", ErrTokenIsExpired, err)
		}
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenIsExpiredOrInvalid, err)
	}

	return token, nil
}

// ResolveCurrentUser parses tokenString and loads the user it was issued
// to. A token whose user no longer exists is treated as invalid.
func (a *authService) ResolveCurrentUser(ctx context.Context, tokenString string) (models.User, error) {
	log := logger.FromContext(ctx)

	token, err := a.ParseToken(ctx, tokenString)
	if err != nil {
		log.Err(err).Str("func", "authService.ResolveCurrentUser").Msg("token rejected")
		return models.User{}, err
	}

	user, err := a.userRepository.FindUserByID(ctx, token.UserID)
	if err != nil {
		log.Err(err).Str("func", "authService.ResolveCurrentUser").Int64("user_id", token.UserID).Msg("token owner lookup failed")
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, fmt.Errorf("%w: user %d no longer exists", ErrTokenIsExpiredOrInvalid, token.UserID)
		}
		return models.User{}, err
	}

	if !user.IsActive {
		log.Error().Str("func", "authService.ResolveCurrentUser").Int64("user_id", user.ID).Msg("inactive user")
		return models.User{}, ErrInactiveUser
	}

	return user, nil
}
