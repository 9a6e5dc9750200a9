package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"givehub/internal/domain"
)

type donationRequest struct {
	Amount    float64 `json:"amount"`
	Reference string  `json:"reference"`
	Status    string  `json:"status"`
	Email     string  `json:"email"`
}

// DonationCreate handles POST /api/donate.
func (a *App) DonationCreate(w http.ResponseWriter, r *http.Request) {
	var req donationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.fail(w, http.StatusBadRequest, "Amount and reference are required")
		return
	}

	if req.Amount == 0 || req.Reference == "" {
		a.fail(w, http.StatusBadRequest, "Amount and reference are required")
		return
	}

	status := req.Status
	if status == "" {
		status = domain.DonationStatusSuccess
	} else if !domain.ValidDonationStatus(status) {
		a.fail(w, http.StatusBadRequest, "Please provide a valid donation status")
		return
	}

	// Same reference twice is a benign duplicate, not an error.
	existing, err := a.Donations.FindByReference(r.Context(), req.Reference)
	if err == nil {
		a.json(w, http.StatusOK, map[string]any{
			"success":  true,
			"message":  "Donation already recorded",
			"donation": existing,
		})
		return
	}
	if !errors.Is(err, domain.ErrNotFound) {
		a.Log.Error().Err(err).Msg("donation recording error")
		a.fail(w, http.StatusInternalServerError, "Failed to record donation")
		return
	}

	donation := &domain.Donation{
		Amount:    req.Amount,
		Reference: req.Reference,
		Status:    status,
		Email:     req.Email,
		DonatedAt: time.Now(),
	}
	if err := a.Donations.Insert(r.Context(), donation); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			// Lost the race against a concurrent submission; report the
			// stored record like any other duplicate.
			if existing, lookupErr := a.Donations.FindByReference(r.Context(), req.Reference); lookupErr == nil {
				a.json(w, http.StatusOK, map[string]any{
					"success":  true,
					"message":  "Donation already recorded",
					"donation": existing,
				})
				return
			}
		}
		a.Log.Error().Err(err).Msg("donation recording error")
		a.fail(w, http.StatusInternalServerError, "Failed to record donation")
		return
	}

	a.json(w, http.StatusCreated, map[string]any{
		"success":  true,
		"message":  "Donation recorded successfully!",
		"donation": donation,
	})
}

// DonationList handles GET /api/donations.
func (a *App) DonationList(w http.ResponseWriter, r *http.Request) {
	donations, err := a.Donations.List(r.Context())
	if err != nil {
		a.Log.Error().Err(err).Msg("error fetching donations")
		a.fail(w, http.StatusInternalServerError, "Failed to fetch donations")
		return
	}

	var totalAmount float64
	for _, d := range donations {
		if d.Status == domain.DonationStatusSuccess {
			totalAmount += d.Amount
		}
	}

	a.json(w, http.StatusOK, map[string]any{
		"success":     true,
		"count":       len(donations),
		"totalAmount": totalAmount,
		"donations":   donations,
	})
}
