package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-contacts/internal/validators"
	"github.com/MKhiriev/go-contacts/models"
)

// ContactValidationService rejects malformed contact input before it
// reaches the wrapped service.
type ContactValidationService struct {
	inner     ContactService
	validator validators.Validator
}

func NewContactValidationService() ContactServiceWrapper {
	return &ContactValidationService{
		validator: validators.NewRequestValidator(),
	}
}

func (v *ContactValidationService) Create(ctx context.Context, ownerID int64, in models.ContactInput) (models.Contact, error) {
	if err := v.validator.Validate(ctx, in); err != nil {
		return models.Contact{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Create(ctx, ownerID, in)
}

func (v *ContactValidationService) List(ctx context.Context, ownerID int64, skip, limit int64) ([]models.Contact, error) {
	if skip < 0 || limit < 0 {
		return nil, ErrInvalidPagination
	}

	return v.inner.List(ctx, ownerID, skip, limit)
}

func (v *ContactValidationService) Get(ctx context.Context, ownerID, contactID int64) (models.Contact, error) {
	return v.inner.Get(ctx, ownerID, contactID)
}

func (v *ContactValidationService) Update(ctx context.Context, ownerID, contactID int64, in models.ContactInput) (models.Contact, error) {
	if err := v.validator.Validate(ctx, in); err != nil {
		return models.Contact{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Update(ctx, ownerID, contactID, in)
}

func (v *ContactValidationService) Delete(ctx context.Context, ownerID, contactID int64) (models.Contact, error) {
	return v.inner.Delete(ctx, ownerID, contactID)
}

func (v *ContactValidationService) Wrap(wrapped ContactService) ContactService {
	v.inner = wrapped
	return v
}
