// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-contacts/internal/service"
	"github.com/MKhiriev/go-contacts/internal/utils"
	"github.com/MKhiriev/go-contacts/models"
)

func (h *Handler) createContact(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		writeError(w, r, err, "no current user")
		return
	}

	var in models.ContactInput
	if err = utils.ReadJSON(r, &in); err != nil {
		writeError(w, r, wrapJSONError(err), "invalid contact body")
		return
	}

	created, err := h.services.ContactService.Create(r.Context(), user.ID, in)
	if err != nil {
		writeError(w, r, err, "contact creation failed")
		return
	}

	utils.WriteJSON(w, models.NewContactRead(created), http.StatusCreated)
}

// listContacts serves GET /contacts/?skip=&limit=.
func (h *Handler) listContacts(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		writeError(w, r, err, "no current user")
		return
	}

	skip, err := queryInt(r, "skip", 0)
	if err != nil {
		writeError(w, r, err, "invalid skip")
		return
	}
	limit, err := queryInt(r, "limit", service.DefaultPageLimit)
	if err != nil {
		writeError(w, r, err, "invalid limit")
		return
	}

	contacts, err := h.services.ContactService.List(r.Context(), user.ID, skip, limit)
	if err != nil {
		writeError(w, r, err, "contact listing failed")
		return
	}

	utils.WriteJSON(w, models.NewContactReadList(contacts), http.StatusOK)
}

func (h *Handler) getContact(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		writeError(w, r, err, "no current user")
		return
	}

	contactID, err := pathID(r)
	if err != nil {
		writeError(w, r, err, "invalid contact id")
		return
	}

	contact, err := h.services.ContactService.Get(r.Context(), user.ID, contactID)
	if err != nil {
		writeError(w, r, err, "contact lookup failed")
		return
	}

	utils.WriteJSON(w, models.NewContactRead(contact), http.StatusOK)
}

func (h *Handler) updateContact(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		writeError(w, r, err, "no current user")
		return
	}

	contactID, err := pathID(r)
	if err != nil {
		writeError(w, r, err, "invalid contact id")
		return
	}

	var in models.ContactInput
	if err = utils.ReadJSON(r, &in); err != nil {
		writeError(w, r, wrapJSONError(err), "invalid contact body")
		return
	}

	updated, err := h.services.ContactService.Update(r.Context(), user.ID, contactID, in)
	if err != nil {
		writeError(w, r, err, "contact update failed")
		return
	}

	utils.WriteJSON(w, models.NewContactRead(updated), http.StatusOK)
}

// deleteContact answers with the state the contact had before deletion.
func (h *Handler) deleteContact(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		writeError(w, r, err, "no current user")
		return
	}

	contactID, err := pathID(r)
	if err != nil {
		writeError(w, r, err, "invalid contact id")
		return
	}

	deleted, err := h.services.ContactService.Delete(r.Context(), user.ID, contactID)
	if err != nil {
		writeError(w, r, err, "contact deletion failed")
		return
	}

	utils.WriteJSON(w, models.NewContactRead(deleted), http.StatusOK)
}
