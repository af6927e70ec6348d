package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-contacts/internal/adapter"
	"github.com/MKhiriev/go-contacts/internal/logger"
	"github.com/MKhiriev/go-contacts/internal/service"
	"github.com/MKhiriev/go-contacts/internal/store"
)

// errorStatuses maps sentinel errors to response codes. The first match
// wins, so client errors come before upstream and storage errors.
var errorStatuses = []struct {
	err    error
	status int
}{
	{ErrEmptyAuthorizationHeader, http.StatusUnauthorized},
	{ErrInvalidAuthorizationHeader, http.StatusUnauthorized},
	{ErrNoCurrentUser, http.StatusUnauthorized},
	{ErrInvalidJSON, http.StatusBadRequest},
	{ErrInvalidID, http.StatusBadRequest},
	{ErrInvalidQueryParameter, http.StatusBadRequest},
	{ErrInvalidUpload, http.StatusBadRequest},
	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{service.ErrInvalidPagination, http.StatusBadRequest},
	{service.ErrWrongCredentials, http.StatusUnauthorized},
	{service.ErrInactiveUser, http.StatusUnauthorized},
	{service.ErrTokenIsExpired, http.StatusUnauthorized},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
	{service.ErrUnauthorizedAccessToDifferentUserData, http.StatusForbidden},
	{service.ErrNotSuperuser, http.StatusForbidden},
	{store.ErrEmailAlreadyExists, http.StatusConflict},
	{store.ErrNoUserWasFound, http.StatusNotFound},
	{store.ErrContactNotFound, http.StatusNotFound},
	{store.ErrOwnerNotFound, http.StatusNotFound},
	{service.ErrTokenCreationFailed, http.StatusInternalServerError},
	{store.ErrBuildingSQLQuery, http.StatusInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError},
	{store.ErrScanningRow, http.StatusInternalServerError},
	{store.ErrScanningRows, http.StatusInternalServerError},
	{adapter.ErrUploadFailed, http.StatusBadGateway},
	{adapter.ErrImageHostNotConfigured, http.StatusBadGateway},
}

func statusFromError(err error) int {
	for _, mapping := range errorStatuses {
		if errors.Is(err, mapping.err) {
			return mapping.status
		}
	}
	return http.StatusInternalServerError
}

// writeError logs err and answers with its mapped status. 5xx answers
// carry only the status text.
func writeError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	status := statusFromError(err)
	logger.FromRequest(r).Err(err).Int("status", status).Msg(msg)

	if status >= http.StatusInternalServerError {
		http.Error(w, http.StatusText(status), status)
		return
	}
	http.Error(w, err.Error(), status)
}
