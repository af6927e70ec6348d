package http

import (
	"net/http"

	"github.com/MKhiriev/go-contacts/internal/utils"
	"github.com/MKhiriev/go-contacts/models"
)

func (h *Handler) getCurrentUser(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		writeError(w, r, err, "no current user")
		return
	}

	utils.WriteJSON(w, models.NewUserRead(user), http.StatusOK)
}

func (h *Handler) updateCurrentUser(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		writeError(w, r, err, "no current user")
		return
	}

	var update models.UserUpdate
	if err = utils.ReadJSON(r, &update); err != nil {
		writeError(w, r, wrapJSONError(err), "invalid profile update body")
		return
	}

	updated, err := h.services.UserService.UpdateProfile(r.Context(), user.ID, update)
	if err != nil {
		writeError(w, r, err, "profile update failed")
		return
	}

	utils.WriteJSON(w, models.NewUserRead(updated), http.StatusOK)
}

// getUser serves GET /users/{id}; only superusers may read other profiles.
func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	requester, err := currentUser(r)
	if err != nil {
		writeError(w, r, err, "no current user")
		return
	}

	userID, err := pathID(r)
	if err != nil {
		writeError(w, r, err, "invalid user id")
		return
	}

	user, err := h.services.UserService.GetUserAsSuperuser(r.Context(), requester, userID)
	if err != nil {
		writeError(w, r, err, "user lookup failed")
		return
	}

	utils.WriteJSON(w, models.NewUserRead(user), http.StatusOK)
}
