package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"givehub/internal/paystack"
)

type verifyRequest struct {
	Reference string `json:"reference"`
}

// VerifyPayment handles POST /api/verify-payment. The gateway's word is
// final: a confirmed transaction upserts the donation keyed by reference,
// a rejection leaves the store untouched and still answers 200 with
// success false.
func (a *App) VerifyPayment(w http.ResponseWriter, r *http.Request) {
	var req verifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.fail(w, http.StatusInternalServerError, "Failed to verify payment")
		return
	}

	result, err := a.Verifier.Verify(r.Context(), req.Reference)
	if err != nil {
		a.Log.Error().Err(err).Str("reference", req.Reference).Msg("payment verification error")
		if errors.Is(err, paystack.ErrRequestFailed) {
			a.fail(w, http.StatusInternalServerError, "Verification request failed")
			return
		}
		a.fail(w, http.StatusInternalServerError, "Failed to verify payment")
		return
	}

	if !result.Verified {
		a.json(w, http.StatusOK, map[string]any{
			"success": false,
			"message": "Payment verification failed",
		})
		return
	}

	// Gateway reports amounts in minor currency units.
	amount := result.Amount / 100
	if err := a.Donations.UpsertVerified(r.Context(), req.Reference, amount, result.CustomerEmail); err != nil {
		a.Log.Error().Err(err).Str("reference", req.Reference).Msg("payment verification error")
		a.fail(w, http.StatusInternalServerError, "Failed to verify payment")
		return
	}

	a.json(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Payment verified",
		"data":    result.Data,
	})
}
