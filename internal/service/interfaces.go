package service

import (
	"context"

	"github.com/MKhiriev/go-contacts/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, in models.UserCreate) (models.User, error)
	Login(ctx context.Context, credentials models.UserLogin) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	// ResolveCurrentUser parses the token and loads its active owner.
	ResolveCurrentUser(ctx context.Context, tokenString string) (models.User, error)
}

type UserService interface {
	GetUser(ctx context.Context, userID int64) (models.User, error)

	// GetUserAsSuperuser loads any user on behalf of requester, who must be
	// a superuser.
	GetUserAsSuperuser(ctx context.Context, requester models.User, userID int64) (models.User, error)

	UpdateProfile(ctx context.Context, userID int64, update models.UserUpdate) (models.User, error)
}

// ContactService manages the contacts of a single owner. Contacts of other
// owners are reported as not found.
type ContactService interface {
	Create(ctx context.Context, ownerID int64, in models.ContactInput) (models.Contact, error)
	List(ctx context.Context, ownerID int64, skip, limit int64) ([]models.Contact, error)
	Get(ctx context.Context, ownerID, contactID int64) (models.Contact, error)
	Update(ctx context.Context, ownerID, contactID int64, in models.ContactInput) (models.Contact, error)
	Delete(ctx context.Context, ownerID, contactID int64) (models.Contact, error)
}

// ContactServiceWrapper defines middleware composition for ContactService.
// Implementations wrap an existing ContactService to add behavior such as
// validation.
type ContactServiceWrapper interface {
	Wrap(ContactService) ContactService
}

type AvatarService interface {
	// UploadAvatar stores image as the avatar of targetUserID and returns its
	// URL. Only the user itself may change its avatar.
	UploadAvatar(ctx context.Context, currentUserID, targetUserID int64, image models.Image) (string, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
