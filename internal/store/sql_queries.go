// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-contacts/models"
)

const (
	usersTable    = "users"
	contactsTable = "contacts"
)

var (
	userColumns = []string{
		"id",
		"email",
		"hashed_password",
		"is_active",
		"is_superuser",
		"is_verified",
		"avatar",
		"created_at",
	}

	contactColumns = []string{
		"id",
		"first_name",
		"last_name",
		"email",
		"phone_number",
		"birthday",
		"additional_info",
		"owner_id",
		"created_at",
	}
)

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(usersTable).
		Columns("email", "hashed_password", "is_active", "is_superuser", "is_verified").
		Values(user.Email, user.HashedPassword, user.IsActive, user.IsSuperuser, user.IsVerified).
		Suffix(returning(userColumns)).
		ToSql()
}

func buildSelectUserByEmailQuery(b sq.StatementBuilderType, email string) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"email": email}).
		ToSql()
}

func buildSelectUserByIDQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"id": userID}).
		ToSql()
}

// buildUpdateUserQuery sets only the non-nil columns of changes.
func buildUpdateUserQuery(b sq.StatementBuilderType, userID int64, changes models.UserChanges) (string, []any, error) {
	if changes.IsEmpty() {
		return "", nil, fmt.Errorf("%w: no columns to update", ErrBuildingSQLQuery)
	}

	set := make(map[string]any, 3)
	if changes.Email != nil {
		set["email"] = *changes.Email
	}
	if changes.HashedPassword != nil {
		set["hashed_password"] = *changes.HashedPassword
	}
	if changes.Avatar != nil {
		set["avatar"] = *changes.Avatar
	}

	return b.Update(usersTable).
		SetMap(set).
		Where(sq.Eq{"id": userID}).
		Suffix(returning(userColumns)).
		ToSql()
}

func buildInsertContactQuery(b sq.StatementBuilderType, contact models.Contact) (string, []any, error) {
	return b.Insert(contactsTable).
		Columns("first_name", "last_name", "email", "phone_number", "birthday", "additional_info", "owner_id").
		Values(
			contact.FirstName,
			contact.LastName,
			contact.Email,
			contact.PhoneNumber,
			contact.Birthday,
			contact.AdditionalInfo,
			contact.OwnerID,
		).
		Suffix(returning(contactColumns)).
		ToSql()
}

// buildListContactsQuery selects a page of the owner's contacts in insertion
// order.
func buildListContactsQuery(b sq.StatementBuilderType, page models.ContactPage) (string, []any, error) {
	return b.Select(contactColumns...).
		From(contactsTable).
		Where(sq.Eq{"owner_id": page.OwnerID}).
		OrderBy("id").
		Limit(page.Limit).
		Offset(page.Skip).
		ToSql()
}

func buildSelectContactQuery(b sq.StatementBuilderType, ownerID, contactID int64) (string, []any, error) {
	return b.Select(contactColumns...).
		From(contactsTable).
		Where(sq.Eq{"id": contactID, "owner_id": ownerID}).
		ToSql()
}

// buildUpdateContactQuery replaces every editable column of the owner's
// contact.
func buildUpdateContactQuery(b sq.StatementBuilderType, contact models.Contact) (string, []any, error) {
	return b.Update(contactsTable).
		Set("first_name", contact.FirstName).
		Set("last_name", contact.LastName).
		Set("email", contact.Email).
		Set("phone_number", contact.PhoneNumber).
		Set("birthday", contact.Birthday).
		Set("additional_info", contact.AdditionalInfo).
		Where(sq.Eq{"id": contact.ID, "owner_id": contact.OwnerID}).
		Suffix(returning(contactColumns)).
		ToSql()
}

func buildDeleteContactQuery(b sq.StatementBuilderType, ownerID, contactID int64) (string, []any, error) {
	return b.Delete(contactsTable).
		Where(sq.Eq{"id": contactID, "owner_id": ownerID}).
		Suffix(returning(contactColumns)).
		ToSql()
}
