package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"givehub/internal/domain"
)

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

// ContactSubmit handles POST /api/contact.
func (a *App) ContactSubmit(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.fail(w, http.StatusBadRequest, "Name, email, and message are required")
		return
	}

	if req.Name == "" || req.Email == "" || req.Message == "" {
		a.fail(w, http.StatusBadRequest, "Name, email, and message are required")
		return
	}
	if !strings.Contains(req.Email, "@") {
		a.fail(w, http.StatusBadRequest, "Please provide a valid email address")
		return
	}

	reason := req.Reason
	if reason == "" {
		reason = domain.ReasonGeneral
	} else if !domain.ValidContactReason(reason) {
		a.fail(w, http.StatusBadRequest, "Please provide a valid contact reason")
		return
	}

	msg := &domain.ContactMessage{
		Name:        req.Name,
		Email:       strings.ToLower(req.Email),
		Reason:      reason,
		Message:     req.Message,
		SubmittedAt: time.Now(),
		Status:      domain.ContactStatusNew,
	}
	if err := a.Contacts.Insert(r.Context(), msg); err != nil {
		a.Log.Error().Err(err).Msg("contact form error")
		a.fail(w, http.StatusInternalServerError, "Failed to submit message. Please try again.")
		return
	}

	a.json(w, http.StatusCreated, map[string]any{
		"success": true,
		"message": "Message received! We'll get back to you soon.",
		"contact": map[string]any{
			"name":        msg.Name,
			"email":       msg.Email,
			"submittedAt": msg.SubmittedAt,
		},
	})
}

// ContactList handles GET /api/contacts.
func (a *App) ContactList(w http.ResponseWriter, r *http.Request) {
	contacts, err := a.Contacts.List(r.Context())
	if err != nil {
		a.Log.Error().Err(err).Msg("error fetching contacts")
		a.fail(w, http.StatusInternalServerError, "Failed to fetch contacts")
		return
	}

	a.json(w, http.StatusOK, map[string]any{
		"success":  true,
		"count":    len(contacts),
		"contacts": contacts,
	})
}
