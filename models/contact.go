// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"
)

// Contact is an address-book record owned by exactly one user.
type Contact struct {
	ID             int64
	FirstName      string
	LastName       string
	Email          string
	PhoneNumber    string
	Birthday       time.Time
	AdditionalInfo *string
	OwnerID        int64
	CreatedAt      time.Time
}

// ContactInput is the request body for both creating and replacing a
// contact. Every field except AdditionalInfo is required.
type ContactInput struct {
	FirstName      string  `json:"first_name" validate:"required,max=255"`
	LastName       string  `json:"last_name" validate:"required,max=255"`
	Email          string  `json:"email" validate:"required,email,max=320"`
	PhoneNumber    string  `json:"phone_number" validate:"required,max=50"`
	Birthday       *Date   `json:"birthday" validate:"required"`
	AdditionalInfo *string `json:"additional_info,omitempty" validate:"omitempty,max=2000"`
}

// ToContact maps the input onto a new entity field by field, so that
// nothing but the listed columns can be assigned from a request.
func (in ContactInput) ToContact(ownerID int64) Contact {
	contact := Contact{
		FirstName:      in.FirstName,
		LastName:       in.LastName,
		Email:          in.Email,
		PhoneNumber:    in.PhoneNumber,
		AdditionalInfo: in.AdditionalInfo,
		OwnerID:        ownerID,
	}
	if in.Birthday != nil {
		contact.Birthday = in.Birthday.Time
	}

	return contact
}

// ContactRead is the public representation of a [Contact].
type ContactRead struct {
	ID             int64   `json:"id"`
	FirstName      string  `json:"first_name"`
	LastName       string  `json:"last_name"`
	Email          string  `json:"email"`
	PhoneNumber    string  `json:"phone_number"`
	Birthday       Date    `json:"birthday"`
	AdditionalInfo *string `json:"additional_info"`
}

// NewContactRead maps a stored contact to its output schema.
func NewContactRead(c Contact) ContactRead {
	return ContactRead{
		ID:             c.ID,
		FirstName:      c.FirstName,
		LastName:       c.LastName,
		Email:          c.Email,
		PhoneNumber:    c.PhoneNumber,
		Birthday:       Date{Time: c.Birthday},
		AdditionalInfo: c.AdditionalInfo,
	}
}

// NewContactReadList maps a page of contacts. It never returns nil so that
// an empty page is encoded as [] rather than null.
func NewContactReadList(contacts []Contact) []ContactRead {
	out := make([]ContactRead, 0, len(contacts))
	for _, c := range contacts {
		out = append(out, NewContactRead(c))
	}
	return out
}

// ContactPage selects a window of the caller's contacts.
type ContactPage struct {
	OwnerID int64
	Skip    uint64
	Limit   uint64
}
