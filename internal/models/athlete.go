package models

import "database/sql"

// Athlete is a row from the athletes table. Photo holds only the sanitized
// base filename (nullable); public pages join it with the upload URL prefix.
type Athlete struct {
	ID       int
	Name     string
	Category string
	Photo    sql.NullString
}

// PhotoURL returns the public URL for the stored photo, or "" when none.
func (a Athlete) PhotoURL() string {
	if !a.Photo.Valid || a.Photo.String == "" {
		return ""
	}
	return "/uploads/" + a.Photo.String
}
