package handlers

import (
	"net/http"
	"path/filepath"
)

// Index serves the single static document at the root path.
func (a *App) Index(w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, filepath.Join(a.StaticDir, "index.html"))
}
