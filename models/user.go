// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User is an account that owns contacts.
// HashedPassword must never leave the server; use [UserRead] for output.
type User struct {
	ID             int64
	Email          string
	HashedPassword string
	IsActive       bool
	IsSuperuser    bool
	IsVerified     bool
	Avatar         *string
	CreatedAt      time.Time
}

// UserCreate is the registration request body.
type UserCreate struct {
	Email    string `json:"email" validate:"required,email,max=320"`
	Password string `json:"password" validate:"required,max=72"`
}

// UserLogin carries credentials for the login endpoint. It is filled either
// from a JSON body or from an OAuth2-style form where the e-mail is sent as
// "username".
type UserLogin struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserUpdate is a partial profile update. Nil fields are left untouched.
type UserUpdate struct {
	Email    *string `json:"email,omitempty" validate:"omitnil,email,max=320"`
	Password *string `json:"password,omitempty" validate:"omitnil,min=1,max=72"`
	Avatar   *string `json:"avatar,omitempty" validate:"omitnil,url"`
}

// IsEmpty reports whether the update carries no fields at all.
func (u UserUpdate) IsEmpty() bool {
	return u.Email == nil && u.Password == nil && u.Avatar == nil
}

// UserRead is the public representation of a [User].
type UserRead struct {
	ID          int64   `json:"id"`
	Email       string  `json:"email"`
	Avatar      *string `json:"avatar"`
	IsActive    bool    `json:"is_active"`
	IsSuperuser bool    `json:"is_superuser"`
	IsVerified  bool    `json:"is_verified"`
}

// NewUserRead maps a stored user to its output schema.
func NewUserRead(u User) UserRead {
	return UserRead{
		ID:          u.ID,
		Email:       u.Email,
		Avatar:      u.Avatar,
		IsActive:    u.IsActive,
		IsSuperuser: u.IsSuperuser,
		IsVerified:  u.IsVerified,
	}
}

// UserChanges lists the columns of a user row to overwrite. Nil fields are
// kept as stored.
type UserChanges struct {
	Email          *string
	HashedPassword *string
	Avatar         *string
}

// IsEmpty reports whether no column would change.
func (c UserChanges) IsEmpty() bool {
	return c.Email == nil && c.HashedPassword == nil && c.Avatar == nil
}
