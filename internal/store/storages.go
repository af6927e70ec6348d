package store

import "github.com/MKhiriev/go-contacts/internal/logger"

// Storages groups the repositories injected into the service layer.
type Storages struct {
	UserRepository    UserRepository
	ContactRepository ContactRepository
}

// NewStorages builds all repositories on top of a single connection pool.
// The pool is owned by the caller.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	logger.Info().Msg("creating new storages...")

	return &Storages{
		UserRepository:    NewUserRepository(db, logger),
		ContactRepository: NewContactRepository(db, logger),
	}
}
