// Package handlers contains every HTTP handler: the public pages, the login
// flow and the admin panel.
package handlers

import (
	"html/template"
	"net/http"
	"path/filepath"
	"time"

	"sportcms/internal/config"
	"sportcms/internal/sessions"
	"sportcms/internal/store"
)

type Handlers struct {
	store    *store.Store
	sessions *sessions.Manager
	cfg      config.Config
}

func New(st *store.Store, sm *sessions.Manager, cfg config.Config) *Handlers {
	return &Handlers{store: st, sessions: sm, cfg: cfg}
}

// render parses the base layout plus one page template and executes it.
// IsAdmin is injected into every page so the navigation can show the admin
// links after login.
func (h *Handlers) render(w http.ResponseWriter, r *http.Request, page string, data map[string]any) {
	if data == nil {
		data = map[string]any{}
	}
	_, isAdmin := h.sessions.AccountID(r)
	data["IsAdmin"] = isAdmin
	data["Year"] = time.Now().Year()

	tmpl, err := template.ParseFiles(
		filepath.Join(h.cfg.TemplatesDir, "base.html"),
		filepath.Join(h.cfg.TemplatesDir, page),
	)
	if err != nil {
		http.Error(w, "template error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	_ = tmpl.ExecuteTemplate(w, "base", data)
}
