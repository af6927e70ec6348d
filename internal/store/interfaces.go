package store

import (
	"context"

	"github.com/MKhiriev/go-contacts/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts in the "users" table.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	UpdateUser(ctx context.Context, userID int64, changes models.UserChanges) (models.User, error)
}

// ContactRepository persists contacts in the "contacts" table. Every method
// filters by owner, so a contact of another user behaves as missing.
type ContactRepository interface {
	CreateContact(ctx context.Context, contact models.Contact) (models.Contact, error)
	ListContacts(ctx context.Context, page models.ContactPage) ([]models.Contact, error)
	GetContact(ctx context.Context, ownerID, contactID int64) (models.Contact, error)
	UpdateContact(ctx context.Context, contact models.Contact) (models.Contact, error)
	DeleteContact(ctx context.Context, ownerID, contactID int64) (models.Contact, error)
}

// ErrorClassificator maps driver-specific errors onto an
// [ErrorClassification] so repositories stay driver agnostic.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
