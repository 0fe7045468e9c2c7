// Package store is the data access layer. Every query touches exactly one
// table; there are no cross-table transactions.
package store

import (
	"database/sql"
	"fmt"

	"sportcms/internal/models"
)

type Store struct {
	db *sql.DB
}

// New wraps an existing connection pool. Tests pass a sqlmock DB here.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// ---------- accounts ----------

// AccountByUsername returns sql.ErrNoRows for unknown usernames; the login
// handler treats that the same as a wrong password.
func (s *Store) AccountByUsername(username string) (models.Account, error) {
	var a models.Account
	err := s.db.QueryRow(
		`SELECT id, username, password_hash FROM accounts WHERE username = $1`,
		username,
	).Scan(&a.ID, &a.Username, &a.PasswordHash)
	return a, err
}

// ---------- counts ----------

func (s *Store) CountAthletes() (int, error) { return s.count("athletes") }

func (s *Store) CountNews() (int, error) { return s.count("news") }

func (s *Store) CountAchievements() (int, error) { return s.count("achievements") }

func (s *Store) count(table string) (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM ` + table).Scan(&n); err != nil {
		return 0, fmt.Errorf("store: count %s: %w", table, err)
	}
	return n, nil
}

// ---------- athletes ----------

func (s *Store) ListAthletes() ([]models.Athlete, error) {
	rows, err := s.db.Query(`SELECT id, name, category, photo FROM athletes`)
	if err != nil {
		return nil, fmt.Errorf("store: list athletes: %w", err)
	}
	defer rows.Close()

	var list []models.Athlete
	for rows.Next() {
		var a models.Athlete
		if err := rows.Scan(&a.ID, &a.Name, &a.Category, &a.Photo); err != nil {
			return nil, fmt.Errorf("store: scan athlete: %w", err)
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

func (s *Store) InsertAthlete(name, category, photo string) error {
	var p sql.NullString
	if photo != "" {
		p = sql.NullString{String: photo, Valid: true}
	}
	_, err := s.db.Exec(
		`INSERT INTO athletes (name, category, photo) VALUES ($1, $2, $3)`,
		name, category, p,
	)
	if err != nil {
		return fmt.Errorf("store: insert athlete: %w", err)
	}
	return nil
}

// DeleteAthlete removes the row if it exists. A missing id is a silent
// no-op, not an error.
func (s *Store) DeleteAthlete(id int) error {
	if _, err := s.db.Exec(`DELETE FROM athletes WHERE id = $1`, id); err != nil {
		return fmt.Errorf("store: delete athlete: %w", err)
	}
	return nil
}

// ---------- news ----------

// ListNews returns items newest first (descending id, i.e. insert order).
func (s *Store) ListNews() ([]models.NewsItem, error) {
	rows, err := s.db.Query(`SELECT id, title, body, date FROM news ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("store: list news: %w", err)
	}
	defer rows.Close()

	var list []models.NewsItem
	for rows.Next() {
		var n models.NewsItem
		if err := rows.Scan(&n.ID, &n.Title, &n.Body, &n.Date); err != nil {
			return nil, fmt.Errorf("store: scan news: %w", err)
		}
		list = append(list, n)
	}
	return list, rows.Err()
}

func (s *Store) InsertNews(title, body, date string) error {
	_, err := s.db.Exec(
		`INSERT INTO news (title, body, date) VALUES ($1, $2, $3)`,
		title, body, date,
	)
	if err != nil {
		return fmt.Errorf("store: insert news: %w", err)
	}
	return nil
}

// ---------- schedule ----------

// ListSchedule orders by the stored date string ascending. The column is
// plain text, so the order is lexicographic.
func (s *Store) ListSchedule() ([]models.ScheduleItem, error) {
	rows, err := s.db.Query(`SELECT id, activity, date, location FROM schedule ORDER BY date ASC`)
	if err != nil {
		return nil, fmt.Errorf("store: list schedule: %w", err)
	}
	defer rows.Close()

	var list []models.ScheduleItem
	for rows.Next() {
		var it models.ScheduleItem
		if err := rows.Scan(&it.ID, &it.Activity, &it.Date, &it.Location); err != nil {
			return nil, fmt.Errorf("store: scan schedule: %w", err)
		}
		list = append(list, it)
	}
	return list, rows.Err()
}

func (s *Store) InsertSchedule(activity, date, location string) error {
	_, err := s.db.Exec(
		`INSERT INTO schedule (activity, date, location) VALUES ($1, $2, $3)`,
		activity, date, location,
	)
	if err != nil {
		return fmt.Errorf("store: insert schedule: %w", err)
	}
	return nil
}

// ---------- achievements ----------

func (s *Store) ListAchievements() ([]models.Achievement, error) {
	rows, err := s.db.Query(`SELECT id, athlete_name, event, result, year FROM achievements`)
	if err != nil {
		return nil, fmt.Errorf("store: list achievements: %w", err)
	}
	defer rows.Close()

	var list []models.Achievement
	for rows.Next() {
		var a models.Achievement
		if err := rows.Scan(&a.ID, &a.AthleteName, &a.Event, &a.Result, &a.Year); err != nil {
			return nil, fmt.Errorf("store: scan achievement: %w", err)
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

func (s *Store) InsertAchievement(athleteName, event, result, year string) error {
	_, err := s.db.Exec(
		`INSERT INTO achievements (athlete_name, event, result, year) VALUES ($1, $2, $3, $4)`,
		athleteName, event, result, year,
	)
	if err != nil {
		return fmt.Errorf("store: insert achievement: %w", err)
	}
	return nil
}
