package models

// Account is a row from the accounts table. Only the bcrypt hash is stored;
// the session keeps nothing beyond the id.
type Account struct {
	ID           int
	Username     string
	PasswordHash string
}
