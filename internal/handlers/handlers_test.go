package handlers

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"sportcms/internal/config"
	"sportcms/internal/sessions"
	"sportcms/internal/store"
)

// Flat templates so tests can assert on predictable output instead of the
// real markup.
var testTemplates = map[string]string{
	"base.html":     `{{define "base"}}{{template "content" .}}{{end}}`,
	"index.html":    `{{define "content"}}{{.TotalAtlet}}|{{.TotalBerita}}|{{.TotalPrestasi}}{{end}}`,
	"atlet.html":    `{{define "content"}}{{range .Atlet}}{{.Name}}:{{.Category}}:{{.Photo.String}};{{end}}{{end}}`,
	"berita.html":   `{{define "content"}}{{range .Berita}}{{.Title}};{{end}}{{end}}`,
	"jadwal.html":   `{{define "content"}}{{range .Jadwal}}{{.Activity}};{{end}}{{end}}`,
	"prestasi.html": `{{define "content"}}{{range .Prestasi}}{{.AthleteName}}={{.Result}};{{end}}{{end}}`,
	"kategori.html": `{{define "content"}}kategori:{{.Jenis}}{{end}}`,
	"login.html":    `{{define "content"}}login-form{{end}}`,
	"admin.html":    `{{define "content"}}admin:{{range .Atlet}}{{.Name}}:{{.Category}}:{{.Photo.String}};{{end}}{{end}}`,
}

func newTestHandlers(t *testing.T) (*Handlers, sqlmock.Sqlmock, *sessions.Manager) {
	t.Helper()

	database, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	dir := t.TempDir()
	for name, body := range testTemplates {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}

	cfg := config.Config{
		TemplatesDir: dir,
		UploadDir:    filepath.Join(dir, "uploads"),
	}
	sm := sessions.NewManager("test-secret", false)
	return New(store.New(database), sm, cfg), mock, sm
}

func authCookies(t *testing.T, sm *sessions.Manager) []*http.Cookie {
	t.Helper()
	w := httptest.NewRecorder()
	r := httptest.NewRequest("POST", "/login", nil)
	require.NoError(t, sm.SetAccountID(w, r, 1))
	return w.Result().Cookies()
}
