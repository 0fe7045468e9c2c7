package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"sportcms/internal/config"
	"sportcms/internal/db"
	"sportcms/internal/handlers"
	mw "sportcms/internal/middleware"
	"sportcms/internal/sessions"
	"sportcms/internal/store"
)

func main() {
	// optional .env for local development
	_ = godotenv.Load()

	cfg := config.Load()

	database, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("boot: %v", err)
	}
	if err := db.Bootstrap(database, cfg.AdminUsername, cfg.AdminPassword); err != nil {
		log.Fatalf("boot: %v", err)
	}
	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Fatalf("boot: upload dir: %v", err)
	}

	sm := sessions.NewManager(cfg.SessionSecret, cfg.SecureCookies)
	h := handlers.New(store.New(database), sm, cfg)

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(middleware.RedirectSlashes)

	// static assets and uploaded photos
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir))))
	r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.UploadDir))))

	// public pages
	r.Get("/", h.Home)
	r.Get("/atlet", h.Athletes)
	r.Get("/berita", h.News)
	r.Get("/jadwal", h.Schedule)
	r.Get("/prestasi", h.Achievements)
	r.Get("/kategori/{jenis}", h.Category)

	// authentication
	r.Get("/login", h.ShowLogin)
	r.Post("/login", h.Login)
	r.Get("/logout", mw.RequireAdmin(sm, h.Logout))

	// admin area
	r.Group(func(g chi.Router) {
		g.Use(mw.RequireAdminMW(sm))

		g.Get("/admin", h.AdminPage)
		g.Post("/admin", h.AdminSubmit)
		g.Get("/hapus_atlet/{id}", h.DeleteAthlete)
	})

	log.Printf("listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, r); err != nil {
		log.Fatal(err)
	}
}
