package handlers

import (
	"net/http"
)

// Health handles GET /health.
func (a *App) Health(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]string{
		"status":  "OK",
		"message": "Server is running",
	})
}
