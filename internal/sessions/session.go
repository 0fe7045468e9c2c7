package sessions

import (
	"crypto/sha256"
	"net/http"

	"github.com/gorilla/sessions"
)

const sessionName = "cms_session"

// Manager wraps the cookie store. The session carries only the account id;
// everything else is looked up per request.
type Manager struct {
	store *sessions.CookieStore
}

// NewManager derives separate signing and encryption keys from the secret so
// the cookie is both authenticated and opaque.
func NewManager(secret string, secure bool) *Manager {
	h := sha256.Sum256([]byte("auth:" + secret))
	e := sha256.Sum256([]byte("enc:" + secret))

	store := sessions.NewCookieStore(h[:], e[:])
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   7 * 24 * 60 * 60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   secure,
	}
	return &Manager{store: store}
}

func (m *Manager) session(r *http.Request) (*sessions.Session, error) {
	return m.store.Get(r, sessionName)
}

// SetAccountID marks the request's session as authenticated.
func (m *Manager) SetAccountID(w http.ResponseWriter, r *http.Request, id int) error {
	s, err := m.session(r)
	if err != nil {
		return err
	}
	s.Values["account_id"] = id
	return s.Save(r, w)
}

// AccountID reports the authenticated account, if any. A tampered or absent
// cookie simply reads as anonymous.
func (m *Manager) AccountID(r *http.Request) (int, bool) {
	s, err := m.session(r)
	if err != nil {
		return 0, false
	}
	if v, ok := s.Values["account_id"].(int); ok {
		return v, true
	}
	return 0, false
}

// Clear drops the account id, returning the session to anonymous.
func (m *Manager) Clear(w http.ResponseWriter, r *http.Request) error {
	s, err := m.session(r)
	if err != nil {
		return err
	}
	delete(s.Values, "account_id")
	return s.Save(r, w)
}
