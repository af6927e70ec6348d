package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-contacts/internal/service"
	"github.com/MKhiriev/go-contacts/internal/utils"
	"github.com/MKhiriev/go-contacts/models"
)

// maxUploadBody leaves room for multipart framing around the largest
// accepted avatar.
const maxUploadBody = service.MaxAvatarSize + 1<<20

// uploadAvatar serves POST /users/{id}/avatar/. The image is taken from the
// multipart field "file" or, for any other content type, from the raw body.
func (h *Handler) uploadAvatar(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		writeError(w, r, err, "no current user")
		return
	}

	targetUserID, err := pathID(r)
	if err != nil {
		writeError(w, r, err, "invalid user id")
		return
	}

	image, err := readImage(w, r)
	if err != nil {
		writeError(w, r, err, "error reading avatar")
		return
	}

	url, err := h.services.AvatarService.UploadAvatar(r.Context(), user.ID, targetUserID, image)
	if err != nil {
		writeError(w, r, err, "avatar upload failed")
		return
	}

	utils.WriteJSON(w, models.AvatarResponse{AvatarURL: url}, http.StatusOK)
}

func readImage(w http.ResponseWriter, r *http.Request) (models.Image, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBody)

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		file, header, err := r.FormFile("file")
		if err != nil {
			return models.Image{}, uploadError(err)
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			return models.Image{}, uploadError(err)
		}

		return models.Image{
			Filename:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Data:        data,
		}, nil
	}

	data, err := io.ReadAll(r.Body)
	if err != nil {
		return models.Image{}, uploadError(err)
	}

	return models.Image{
		ContentType: r.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

func uploadError(err error) error {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, service.ErrImageTooLarge)
	}
	return fmt.Errorf("%w: %w", ErrInvalidUpload, err)
}
