package http

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-contacts/internal/config"
	"github.com/MKhiriev/go-contacts/internal/logger"
	"github.com/MKhiriev/go-contacts/internal/service"
	"github.com/MKhiriev/go-contacts/internal/utils"
	"github.com/MKhiriev/go-contacts/models"
)

// ─────────────────────────────────────────────
// Service mocks. Each method field can be overridden per test case; a nil
// field panics, which the Recoverer turns into a 500.
// ─────────────────────────────────────────────

type mockAuthService struct {
	registerUserFn       func(ctx context.Context, in models.UserCreate) (models.User, error)
	loginFn              func(ctx context.Context, credentials models.UserLogin) (models.User, error)
	createTokenFn        func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn         func(ctx context.Context, tokenString string) (models.Token, error)
	resolveCurrentUserFn func(ctx context.Context, tokenString string) (models.User, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, in models.UserCreate) (models.User, error) {
	return m.registerUserFn(ctx, in)
}

func (m *mockAuthService) Login(ctx context.Context, credentials models.UserLogin) (models.User, error) {
	return m.loginFn(ctx, credentials)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

func (m *mockAuthService) ResolveCurrentUser(ctx context.Context, tokenString string) (models.User, error) {
	return m.resolveCurrentUserFn(ctx, tokenString)
}

type mockUserService struct {
	getUserFn            func(ctx context.Context, userID int64) (models.User, error)
	getUserAsSuperuserFn func(ctx context.Context, requester models.User, userID int64) (models.User, error)
	updateProfileFn      func(ctx context.Context, userID int64, update models.UserUpdate) (models.User, error)
}

func (m *mockUserService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	return m.getUserFn(ctx, userID)
}

func (m *mockUserService) GetUserAsSuperuser(ctx context.Context, requester models.User, userID int64) (models.User, error) {
	return m.getUserAsSuperuserFn(ctx, requester, userID)
}

func (m *mockUserService) UpdateProfile(ctx context.Context, userID int64, update models.UserUpdate) (models.User, error) {
	return m.updateProfileFn(ctx, userID, update)
}

type mockContactService struct {
	createFn func(ctx context.Context, ownerID int64, in models.ContactInput) (models.Contact, error)
	listFn   func(ctx context.Context, ownerID int64, skip, limit int64) ([]models.Contact, error)
	getFn    func(ctx context.Context, ownerID, contactID int64) (models.Contact, error)
	updateFn func(ctx context.Context, ownerID, contactID int64, in models.ContactInput) (models.Contact, error)
	deleteFn func(ctx context.Context, ownerID, contactID int64) (models.Contact, error)
}

func (m *mockContactService) Create(ctx context.Context, ownerID int64, in models.ContactInput) (models.Contact, error) {
	return m.createFn(ctx, ownerID, in)
}

func (m *mockContactService) List(ctx context.Context, ownerID int64, skip, limit int64) ([]models.Contact, error) {
	return m.listFn(ctx, ownerID, skip, limit)
}

func (m *mockContactService) Get(ctx context.Context, ownerID, contactID int64) (models.Contact, error) {
	return m.getFn(ctx, ownerID, contactID)
}

func (m *mockContactService) Update(ctx context.Context, ownerID, contactID int64, in models.ContactInput) (models.Contact, error) {
	return m.updateFn(ctx, ownerID, contactID, in)
}

func (m *mockContactService) Delete(ctx context.Context, ownerID, contactID int64) (models.Contact, error) {
	return m.deleteFn(ctx, ownerID, contactID)
}

type mockAvatarService struct {
	uploadAvatarFn func(ctx context.Context, currentUserID, targetUserID int64, image models.Image) (string, error)
}

func (m *mockAvatarService) UploadAvatar(ctx context.Context, currentUserID, targetUserID int64, image models.Image) (string, error) {
	return m.uploadAvatarFn(ctx, currentUserID, targetUserID, image)
}

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

const testToken = "valid-token"

// testUser is the user every request bearing testToken resolves to.
var testUser = models.User{ID: 7, Email: "owner@example.com", HashedPassword: "$2a$10$hash", IsActive: true}

// authAs returns an auth mock that accepts testToken as user.
func authAs(user models.User) *mockAuthService {
	return &mockAuthService{
		resolveCurrentUserFn: func(_ context.Context, tokenString string) (models.User, error) {
			if tokenString != testToken {
				return models.User{}, service.ErrTokenIsExpiredOrInvalid
			}
			return user, nil
		},
	}
}

// newTestHandler fills missing services with empty mocks.
func newTestHandler(t *testing.T, services *service.Services) *Handler {
	t.Helper()
	if services.AuthService == nil {
		services.AuthService = authAs(testUser)
	}
	if services.UserService == nil {
		services.UserService = &mockUserService{}
	}
	if services.ContactService == nil {
		services.ContactService = &mockContactService{}
	}
	if services.AvatarService == nil {
		services.AvatarService = &mockAvatarService{}
	}
	if services.AppInfoService == nil {
		services.AppInfoService = &mockAppInfoService{version: "test-version"}
	}

	return NewHandler(services, config.Server{AllowedOrigins: []string{"http://localhost:3000"}}, logger.Nop())
}

// withUser puts user into the request context the way the auth middleware
// does.
func withUser(ctx context.Context, user models.User) context.Context {
	return utils.WithUser(ctx, user)
}
