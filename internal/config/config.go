package config

import (
	"os"
	"strings"
)

// Config carries everything that used to be hard-coded: listen address,
// database settings, session secret, upload directory and the seed admin
// credentials. Loaded once in main and passed down explicitly.
type Config struct {
	Addr          string
	DatabaseURL   string
	SessionSecret string
	SecureCookies bool
	TemplatesDir  string
	StaticDir     string
	UploadDir     string
	AdminUsername string
	AdminPassword string
}

func Load() Config {
	return Config{
		Addr:          getenv("HOST", "127.0.0.1") + ":" + getenv("PORT", "8080"),
		DatabaseURL:   databaseURL(),
		SessionSecret: getenv("SESSION_SECRET", "dev-insecure-secret-change-me-now"),
		SecureCookies: os.Getenv("APP_HTTPS") == "1",
		TemplatesDir:  getenv("TEMPLATES_DIR", "web/templates"),
		StaticDir:     getenv("STATIC_DIR", "web/static"),
		UploadDir:     getenv("UPLOAD_DIR", "uploads"),
		AdminUsername: getenv("ADMIN_USERNAME", "admin"),
		AdminPassword: getenv("ADMIN_PASSWORD", "admin123"),
	}
}

// databaseURL resolves the DSN. Priority: DATABASE_URL > POSTGRES_DSN >
// assembly from the discrete POSTGRES_* variables (lib/pq key=value form).
func databaseURL() string {
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		return dsn
	}
	if dsn := os.Getenv("POSTGRES_DSN"); dsn != "" {
		return dsn
	}

	parts := []string{
		"host=" + getenv("POSTGRES_HOST", "127.0.0.1"),
		"port=" + getenv("POSTGRES_PORT", "5432"),
		"user=" + getenv("POSTGRES_USER", "postgres"),
		"dbname=" + getenv("POSTGRES_DB", "sportcms"),
		"sslmode=" + getenv("POSTGRES_SSLMODE", "disable"),
	}
	if pass := os.Getenv("POSTGRES_PASSWORD"); pass != "" {
		parts = append(parts, "password="+pass)
	}
	return strings.Join(parts, " ")
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
