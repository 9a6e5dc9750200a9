package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"givehub/internal/domain"
)

type subscribeRequest struct {
	Email string `json:"email"`
}

// NewsletterSubscribe handles POST /api/newsletter.
func (a *App) NewsletterSubscribe(w http.ResponseWriter, r *http.Request) {
	var req subscribeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.fail(w, http.StatusBadRequest, "Please provide a valid email address")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || !strings.Contains(email, "@") {
		a.fail(w, http.StatusBadRequest, "Please provide a valid email address")
		return
	}

	// Explicit lookup before insert; the unique index closes the race below.
	_, err := a.Subscribers.FindByEmail(r.Context(), email)
	if err == nil {
		a.fail(w, http.StatusBadRequest, "This email is already subscribed")
		return
	}
	if !errors.Is(err, domain.ErrNotFound) {
		a.Log.Error().Err(err).Msg("newsletter subscription error")
		a.fail(w, http.StatusInternalServerError, "Failed to subscribe. Please try again.")
		return
	}

	sub := &domain.Subscriber{Email: email, SubscribedAt: time.Now()}
	if err := a.Subscribers.Insert(r.Context(), sub); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			a.fail(w, http.StatusBadRequest, "This email is already subscribed")
			return
		}
		a.Log.Error().Err(err).Msg("newsletter subscription error")
		a.fail(w, http.StatusInternalServerError, "Failed to subscribe. Please try again.")
		return
	}

	a.json(w, http.StatusCreated, map[string]any{
		"success": true,
		"message": "Successfully subscribed to newsletter!",
	})
}

// NewsletterSubscribers handles GET /api/newsletter/subscribers.
func (a *App) NewsletterSubscribers(w http.ResponseWriter, r *http.Request) {
	subs, err := a.Subscribers.List(r.Context())
	if err != nil {
		a.Log.Error().Err(err).Msg("error fetching subscribers")
		a.fail(w, http.StatusInternalServerError, "Failed to fetch subscribers")
		return
	}

	a.json(w, http.StatusOK, map[string]any{
		"success":     true,
		"count":       len(subs),
		"subscribers": subs,
	})
}
