// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-contacts/internal/logger"
	"github.com/MKhiriev/go-contacts/models"
)

// contactRepository is the SQL implementation of [ContactRepository].
// Every statement carries an owner_id predicate, so rows of other users
// are never read, changed or removed.
type contactRepository struct {
	*DB
	logger *logger.Logger
}

// NewContactRepository constructs a [ContactRepository] backed by the
// provided database connection and logger.
func NewContactRepository(db *DB, logger *logger.Logger) ContactRepository {
	logger.Debug().Msg("creating contact repository")
	return &contactRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateContact inserts a contact and returns the stored row.
// A missing owner yields [ErrOwnerNotFound].
func (c *contactRepository) CreateContact(ctx context.Context, contact models.Contact) (models.Contact, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertContactQuery(c.builder(), contact)
	if err != nil {
		log.Err(err).Str("func", "contactRepository.CreateContact").Msg("failed to build query")
		return models.Contact{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanContact(c.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).
			Str("func", "contactRepository.CreateContact").
			Int64("owner_id", contact.OwnerID).
			Msg("failed to save contact")
		return models.Contact{}, c.contactError(err)
	}

	return created, nil
}

// ListContacts returns a page of the owner's contacts ordered by id.
// An empty page is an empty, non-nil slice.
func (c *contactRepository) ListContacts(ctx context.Context, page models.ContactPage) ([]models.Contact, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListContactsQuery(c.builder(), page)
	if err != nil {
		log.Err(err).Str("func", "contactRepository.ListContacts").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := c.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "contactRepository.ListContacts").
			Int64("owner_id", page.OwnerID).
			Msg("failed to execute query for listing contacts")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	contacts := make([]models.Contact, 0, page.Limit)

	for rows.Next() {
		var contact models.Contact
		if scanErr := rows.Scan(contactFields(&contact)...); scanErr != nil {
			log.Err(scanErr).
				Str("func", "contactRepository.ListContacts").
				Int64("owner_id", page.OwnerID).
				Msg("failed to scan contact row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		contacts = append(contacts, contact)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "contactRepository.ListContacts").
			Int64("owner_id", page.OwnerID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return contacts, nil
}

// GetContact returns the owner's contact or [ErrContactNotFound].
func (c *contactRepository) GetContact(ctx context.Context, ownerID, contactID int64) (models.Contact, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectContactQuery(c.builder(), ownerID, contactID)
	if err != nil {
		log.Err(err).Str("func", "contactRepository.GetContact").Msg("failed to build query")
		return models.Contact{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	contact, err := scanContact(c.QueryRowContext(ctx, query, args...))
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			log.Err(err).
				Str("func", "contactRepository.GetContact").
				Int64("owner_id", ownerID).
				Int64("contact_id", contactID).
				Msg("failed to get contact")
		}
		return models.Contact{}, c.contactError(err)
	}

	return contact, nil
}

// UpdateContact replaces the editable columns of the contact identified by
// contact.ID and contact.OwnerID and returns the stored row.
func (c *contactRepository) UpdateContact(ctx context.Context, contact models.Contact) (models.Contact, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateContactQuery(c.builder(), contact)
	if err != nil {
		log.Err(err).Str("func", "contactRepository.UpdateContact").Msg("failed to build query")
		return models.Contact{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanContact(c.QueryRowContext(ctx, query, args...))
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			log.Err(err).
				Str("func", "contactRepository.UpdateContact").
				Int64("owner_id", contact.OwnerID).
				Int64("contact_id", contact.ID).
				Msg("failed to update contact")
		}
		return models.Contact{}, c.contactError(err)
	}

	return updated, nil
}

// DeleteContact removes the owner's contact and returns its last state.
func (c *contactRepository) DeleteContact(ctx context.Context, ownerID, contactID int64) (models.Contact, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteContactQuery(c.builder(), ownerID, contactID)
	if err != nil {
		log.Err(err).Str("func", "contactRepository.DeleteContact").Msg("failed to build query")
		return models.Contact{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	deleted, err := scanContact(c.QueryRowContext(ctx, query, args...))
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			log.Err(err).
				Str("func", "contactRepository.DeleteContact").
				Int64("owner_id", ownerID).
				Int64("contact_id", contactID).
				Msg("failed to delete contact")
		}
		return models.Contact{}, c.contactError(err)
	}

	return deleted, nil
}

func (c *contactRepository) contactError(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrContactNotFound
	}

	switch c.classify(err) {
	case ForeignKeyViolation:
		return ErrOwnerNotFound
	}

	return err
}

func contactFields(contact *models.Contact) []any {
	return []any{
		&contact.ID,
		&contact.FirstName,
		&contact.LastName,
		&contact.Email,
		&contact.PhoneNumber,
		&contact.Birthday,
		&contact.AdditionalInfo,
		&contact.OwnerID,
		&contact.CreatedAt,
	}
}

func scanContact(row *sql.Row) (models.Contact, error) {
	if err := row.Err(); err != nil {
		return models.Contact{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	var contact models.Contact
	if err := row.Scan(contactFields(&contact)...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Contact{}, err
		}
		return models.Contact{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return contact, nil
}
