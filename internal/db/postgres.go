package db

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
)

// Open connects to Postgres and verifies the connection with a short ping
// so a bad DSN fails at startup instead of on the first request.
func Open(dsn string) (*sql.DB, error) {
	database, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("db: open: %w", err)
	}

	database.SetMaxOpenConns(10)
	database.SetMaxIdleConns(5)
	database.SetConnMaxLifetime(30 * time.Minute)
	database.SetConnMaxIdleTime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := database.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("db: ping: %w", err)
	}

	log.Println("db: connected")
	return database, nil
}

// schema holds one CREATE TABLE per record type. Dates stay free text on
// purpose: listings order lexicographically on the stored string, and
// achievements reference athletes by name only, with no foreign key.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS accounts (
		id SERIAL PRIMARY KEY,
		username TEXT UNIQUE NOT NULL,
		password_hash TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS athletes (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		category TEXT NOT NULL,
		photo TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS news (
		id SERIAL PRIMARY KEY,
		title TEXT NOT NULL,
		body TEXT NOT NULL,
		date TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS schedule (
		id SERIAL PRIMARY KEY,
		activity TEXT NOT NULL,
		date TEXT NOT NULL,
		location TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS achievements (
		id SERIAL PRIMARY KEY,
		athlete_name TEXT NOT NULL,
		event TEXT NOT NULL,
		result TEXT NOT NULL,
		year TEXT NOT NULL
	)`,
}

// Bootstrap creates the schema and seeds the default administrator. Safe to
// run on every start: the DDL is IF NOT EXISTS and the seed insert ignores a
// username conflict, so a second run changes nothing.
func Bootstrap(database *sql.DB, username, password string) error {
	for _, stmt := range schema {
		if _, err := database.Exec(stmt); err != nil {
			return fmt.Errorf("db: create table: %w", err)
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("db: hash admin password: %w", err)
	}

	_, err = database.Exec(
		`INSERT INTO accounts (username, password_hash) VALUES ($1, $2)
		 ON CONFLICT (username) DO NOTHING`,
		username, string(hash),
	)
	if err != nil {
		return fmt.Errorf("db: seed admin: %w", err)
	}
	return nil
}
