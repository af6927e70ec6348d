package service

import (
	"fmt"

	"github.com/MKhiriev/go-contacts/internal/adapter"
	"github.com/MKhiriev/go-contacts/internal/config"
	"github.com/MKhiriev/go-contacts/internal/logger"
	"github.com/MKhiriev/go-contacts/internal/store"
)

type Services struct {
	AuthService    AuthService
	UserService    UserService
	ContactService ContactService
	AvatarService  AvatarService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, imageHost adapter.ImageHost, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	contactService := NewContactValidationService().Wrap(
		NewContactService(storages.ContactRepository, cfg.Server, logger),
	)

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg.App, logger),
		UserService:    NewUserService(storages.UserRepository, logger),
		ContactService: contactService,
		AvatarService:  NewAvatarService(storages.UserRepository, imageHost, logger),
		AppInfoService: appInfoService,
	}, nil
}
