package http

import (
	"errors"
	"mime"
	"net/http"

	"github.com/MKhiriev/go-contacts/internal/logger"
	"github.com/MKhiriev/go-contacts/internal/utils"
	"github.com/MKhiriev/go-contacts/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var in models.UserCreate
	if err := utils.ReadJSON(r, &in); err != nil {
		writeError(w, r, wrapJSONError(err), "invalid registration body")
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, in)
	if err != nil {
		writeError(w, r, err, "user registration failed")
		return
	}

	utils.WriteJSON(w, models.NewUserRead(registeredUser), http.StatusCreated)
}

// login accepts either a JSON body {email, password} or an OAuth2 password
// form where the e-mail is sent as "username".
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	credentials, err := readCredentials(r)
	if err != nil {
		writeError(w, r, err, "invalid login body")
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		writeError(w, r, err, "user login failed")
		return
	}

	log.Debug().Int64("user_id", foundUser.ID).Msg("user successfully logged in")

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		writeError(w, r, err, "creation of token failed")
		return
	}

	w.Header().Set("Authorization", "Bearer "+token.SignedString)
	utils.WriteJSON(w, models.TokenResponse{
		AccessToken: token.SignedString,
		TokenType:   "bearer",
	}, http.StatusOK)
}

func readCredentials(r *http.Request) (models.UserLogin, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	switch mediaType {
	case "application/x-www-form-urlencoded", "multipart/form-data":
		if err := r.ParseMultipartForm(1 << 20); err != nil && !errors.Is(err, http.ErrNotMultipart) {
			return models.UserLogin{}, wrapJSONError(err)
		}
		return models.UserLogin{
			Email:    r.PostFormValue("username"),
			Password: r.PostFormValue("password"),
		}, nil
	default:
		var credentials models.UserLogin
		if err := utils.ReadJSON(r, &credentials); err != nil {
			return models.UserLogin{}, wrapJSONError(err)
		}
		return credentials, nil
	}
}
