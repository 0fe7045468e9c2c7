package handlers

import (
	"database/sql"
	"errors"
	"log"
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// ShowLogin renders the login form.
func (h *Handlers) ShowLogin(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "login.html", map[string]any{
		"Title": "Login Admin",
	})
}

// Login authenticates the posted credentials. Unknown username and wrong
// password take the same path back to the form, so nothing leaks about
// which accounts exist.
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	username := strings.TrimSpace(r.FormValue("username"))
	password := r.FormValue("password")
	if username == "" || password == "" {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	account, err := h.store.AccountByUsername(username)
	if errors.Is(err, sql.ErrNoRows) {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}
	if err != nil {
		h.dbError(w, err)
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	if err := h.sessions.SetAccountID(w, r, account.ID); err != nil {
		log.Printf("handlers: save session: %v", err)
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}
	http.Redirect(w, r, "/admin", http.StatusFound)
}

// Logout clears the session and returns to the public home page.
func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Clear(w, r); err != nil {
		http.Error(w, "logout failed", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/", http.StatusFound)
}
