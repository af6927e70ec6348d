// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-contacts/internal/config"
	"github.com/MKhiriev/go-contacts/internal/logger"
	"github.com/MKhiriev/go-contacts/internal/store"
	"github.com/MKhiriev/go-contacts/models"
)

// DefaultPageLimit is the page size used when a listing request carries no
// limit.
const DefaultPageLimit = 10

type contactService struct {
	contactRepository store.ContactRepository

	// maxPageSize caps the limit of a listing. Zero disables the cap.
	maxPageSize uint64

	logger *logger.Logger
}

func NewContactService(contactRepository store.ContactRepository, cfg config.Server, logger *logger.Logger) ContactService {
	return &contactService{
		contactRepository: contactRepository,
		maxPageSize:       cfg.MaxPageSize,
		logger:            logger,
	}
}

func (s *contactService) Create(ctx context.Context, ownerID int64, in models.ContactInput) (models.Contact, error) {
	contact, err := s.contactRepository.CreateContact(ctx, in.ToContact(ownerID))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "contactService.Create").Int64("owner_id", ownerID).Msg("contact creation failed")
		return models.Contact{}, fmt.Errorf("contact creation failed: %w", err)
	}

	return contact, nil
}

// List returns the owner's contacts ordered by id. A limit above the
// configured maximum is clamped.
func (s *contactService) List(ctx context.Context, ownerID int64, skip, limit int64) ([]models.Contact, error) {
	log := logger.FromContext(ctx)

	if skip < 0 || limit < 0 {
		log.Error().Str("func", "contactService.List").Int64("skip", skip).Int64("limit", limit).Msg("negative pagination")
		return nil, ErrInvalidPagination
	}

	page := models.ContactPage{
		OwnerID: ownerID,
		Skip:    uint64(skip),
		Limit:   uint64(limit),
	}
	if s.maxPageSize > 0 && page.Limit > s.maxPageSize {
		page.Limit = s.maxPageSize
	}
	if page.Limit == 0 {
		return []models.Contact{}, nil
	}

	contacts, err := s.contactRepository.ListContacts(ctx, page)
	if err != nil {
		log.Err(err).Str("func", "contactService.List").Int64("owner_id", ownerID).Msg("contact listing failed")
		return nil, fmt.Errorf("contact listing failed: %w", err)
	}

	return contacts, nil
}

func (s *contactService) Get(ctx context.Context, ownerID, contactID int64) (models.Contact, error) {
	contact, err := s.contactRepository.GetContact(ctx, ownerID, contactID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "contactService.Get").
			Int64("owner_id", ownerID).Int64("contact_id", contactID).Msg("contact lookup failed")
		return models.Contact{}, fmt.Errorf("contact lookup failed: %w", err)
	}

	return contact, nil
}

// Update replaces every field of the contact.
func (s *contactService) Update(ctx context.Context, ownerID, contactID int64, in models.ContactInput) (models.Contact, error) {
	contact := in.ToContact(ownerID)
	contact.ID = contactID

	updated, err := s.contactRepository.UpdateContact(ctx, contact)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "contactService.Update").
			Int64("owner_id", ownerID).Int64("contact_id", contactID).Msg("contact update failed")
		return models.Contact{}, fmt.Errorf("contact update failed: %w", err)
	}

	return updated, nil
}

// Delete removes the contact and returns the state it had.
func (s *contactService) Delete(ctx context.Context, ownerID, contactID int64) (models.Contact, error) {
	deleted, err := s.contactRepository.DeleteContact(ctx, ownerID, contactID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "contactService.Delete").
			Int64("owner_id", ownerID).Int64("contact_id", contactID).Msg("contact deletion failed")
		return models.Contact{}, fmt.Errorf("contact deletion failed: %w", err)
	}

	return deleted, nil
}
