package httpapi

import (
	stdhttp "net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"givehub/internal/http/handlers"
	"givehub/internal/middleware"
)

// NewRouter wires all routes. Anything unmatched falls through to chi's
// default 404.
func NewRouter(app *handlers.App, logger zerolog.Logger, allowedOrigins []string) stdhttp.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.RequestID,
		chimw.RealIP,
		middleware.CORS(allowedOrigins),
		middleware.Logger(logger),
		middleware.Recover(logger),
	)

	r.Get("/health", app.Health)
	r.Get("/", app.Index)

	r.Route("/api", func(r chi.Router) {
		r.Post("/newsletter", app.NewsletterSubscribe)
		r.Get("/newsletter/subscribers", app.NewsletterSubscribers)
		r.Post("/contact", app.ContactSubmit)
		r.Get("/contacts", app.ContactList)
		r.Post("/donate", app.DonationCreate)
		r.Get("/donations", app.DonationList)
		r.Post("/verify-payment", app.VerifyPayment)
	})

	return r
}
