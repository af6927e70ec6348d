// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-contacts/internal/service"
	"github.com/MKhiriev/go-contacts/internal/store"
	"github.com/MKhiriev/go-contacts/models"
)

func serve(h *Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

// ─────────────────────────────────────────────
// POST /auth/register
// ─────────────────────────────────────────────

func TestRegister_Created(t *testing.T) {
	auth := &mockAuthService{
		registerUserFn: func(_ context.Context, in models.UserCreate) (models.User, error) {
			assert.Equal(t, "new@example.com", in.Email)
			assert.Equal(t, "pw", in.Password)
			return models.User{ID: 1, Email: in.Email, HashedPassword: "$2a$10$secret", IsActive: true}, nil
		},
	}
	h := newTestHandler(t, &service.Services{AuthService: auth})

	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(`{"email":"new@example.com","password":"pw"}`))
	rec := serve(h, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.NotContains(t, rec.Body.String(), "hashed_password")
	assert.NotContains(t, rec.Body.String(), "$2a$10$secret")

	var got models.UserRead
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, models.UserRead{ID: 1, Email: "new@example.com", IsActive: true}, got)
}

func TestRegister_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		serviceErr error
		wantStatus int
	}{
		{name: "malformed json", body: `{"email":`, wantStatus: http.StatusBadRequest},
		{name: "unknown field", body: `{"email":"a@example.com","password":"pw","is_superuser":true}`, wantStatus: http.StatusBadRequest},
		{name: "invalid data", body: `{"email":"a","password":"pw"}`, serviceErr: service.ErrInvalidDataProvided, wantStatus: http.StatusBadRequest},
		{name: "duplicate email", body: `{"email":"a@example.com","password":"pw"}`, serviceErr: store.ErrEmailAlreadyExists, wantStatus: http.StatusConflict},
		{name: "storage failure", body: `{"email":"a@example.com","password":"pw"}`, serviceErr: store.ErrExecutingQuery, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &mockAuthService{
				registerUserFn: func(_ context.Context, _ models.UserCreate) (models.User, error) {
					return models.User{}, tt.serviceErr
				},
			}
			h := newTestHandler(t, &service.Services{AuthService: auth})

			rec := serve(h, httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestRegister_InternalErrorHidesDetails(t *testing.T) {
	auth := &mockAuthService{
		registerUserFn: func(_ context.Context, _ models.UserCreate) (models.User, error) {
			return models.User{}, errors.New("pq: relation users does not exist")
		},
	}
	h := newTestHandler(t, &service.Services{AuthService: auth})

	rec := serve(h, httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(`{"email":"a@example.com","password":"pw"}`)))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "relation")
}

// ─────────────────────────────────────────────
// POST /auth/jwt/login
// ─────────────────────────────────────────────

func loginAuth(t *testing.T, wantEmail string) *mockAuthService {
	t.Helper()
	return &mockAuthService{
		loginFn: func(_ context.Context, credentials models.UserLogin) (models.User, error) {
			assert.Equal(t, wantEmail, credentials.Email)
			if credentials.Password != "pw" {
				return models.User{}, service.ErrWrongCredentials
			}
			return models.User{ID: 3, Email: credentials.Email, IsActive: true}, nil
		},
		createTokenFn: func(_ context.Context, user models.User) (models.Token, error) {
			assert.Equal(t, int64(3), user.ID)
			return models.Token{SignedString: "signed.jwt.token", UserID: user.ID}, nil
		},
	}
}

func TestLogin_JSON(t *testing.T) {
	h := newTestHandler(t, &service.Services{AuthService: loginAuth(t, "bob@example.com")})

	req := httptest.NewRequest(http.MethodPost, "/auth/jwt/login", strings.NewReader(`{"email":"bob@example.com","password":"pw"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := serve(h, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bearer signed.jwt.token", rec.Header().Get("Authorization"))

	var got models.TokenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, models.TokenResponse{AccessToken: "signed.jwt.token", TokenType: "bearer"}, got)
}

func TestLogin_Form(t *testing.T) {
	h := newTestHandler(t, &service.Services{AuthService: loginAuth(t, "bob@example.com")})

	form := url.Values{"username": {"bob@example.com"}, "password": {"pw"}}
	req := httptest.NewRequest(http.MethodPost, "/auth/jwt/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := serve(h, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"access_token":"signed.jwt.token"`)
	assert.Contains(t, rec.Body.String(), `"token_type":"bearer"`)
}

func TestLogin_WrongPassword(t *testing.T) {
	h := newTestHandler(t, &service.Services{AuthService: loginAuth(t, "bob@example.com")})

	req := httptest.NewRequest(http.MethodPost, "/auth/jwt/login", strings.NewReader(`{"email":"bob@example.com","password":"nope"}`))
	rec := serve(h, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, rec.Header().Get("Authorization"))
}

func TestLogin_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		loginErr   error
		tokenErr   error
		wantStatus int
	}{
		{name: "malformed json", body: `not json`, wantStatus: http.StatusBadRequest},
		{name: "inactive user", body: `{"email":"a@example.com","password":"pw"}`, loginErr: service.ErrInactiveUser, wantStatus: http.StatusUnauthorized},
		{name: "invalid data", body: `{"email":"","password":""}`, loginErr: service.ErrInvalidDataProvided, wantStatus: http.StatusBadRequest},
		{name: "token failure", body: `{"email":"a@example.com","password":"pw"}`, tokenErr: service.ErrTokenCreationFailed, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &mockAuthService{
				loginFn: func(_ context.Context, _ models.UserLogin) (models.User, error) {
					return models.User{ID: 1}, tt.loginErr
				},
				createTokenFn: func(_ context.Context, _ models.User) (models.Token, error) {
					return models.Token{SignedString: "x"}, tt.tokenErr
				},
			}
			h := newTestHandler(t, &service.Services{AuthService: auth})

			rec := serve(h, httptest.NewRequest(http.MethodPost, "/auth/jwt/login", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
