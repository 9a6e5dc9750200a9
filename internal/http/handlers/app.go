package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"givehub/internal/domain"
	"givehub/internal/paystack"
)

// PaymentVerifier is the outbound gateway call used by the verify-payment
// route. Satisfied by *paystack.Client.
type PaymentVerifier interface {
	Verify(ctx context.Context, reference string) (*paystack.VerifyResult, error)
}

// App bundles the dependencies shared by the HTTP handlers. Handlers keep no
// state of their own; everything is injected so tests can substitute stores.
type App struct {
	Subscribers domain.SubscriberStore
	Contacts    domain.ContactStore
	Donations   domain.DonationStore
	Verifier    PaymentVerifier
	StaticDir   string
	Log         zerolog.Logger
}

func NewApp(subs domain.SubscriberStore, contacts domain.ContactStore, donations domain.DonationStore, verifier PaymentVerifier, staticDir string, log zerolog.Logger) *App {
	return &App{
		Subscribers: subs,
		Contacts:    contacts,
		Donations:   donations,
		Verifier:    verifier,
		StaticDir:   staticDir,
		Log:         log,
	}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// fail writes the error envelope every route shares: callers branch on the
// success flag, not the HTTP status.
func (a *App) fail(w http.ResponseWriter, code int, message string) {
	a.json(w, code, map[string]any{"success": false, "message": message})
}
