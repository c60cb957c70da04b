package models

import "time"

// User is the database representation of a user row.
// Preferences are flattened into columns; the refresh token is stored hashed.
type User struct {
	UserID                 string     `db:"user_id"`
	Name                   string     `db:"name"`
	Email                  string     `db:"email"`
	PasswordHash           string     `db:"password_hash"`
	Currency               string     `db:"currency"`
	Theme                  string     `db:"theme"`
	Language               string     `db:"language"`
	RefreshTokenHash       string     `db:"refresh_token_hash"`
	RefreshTokenExpiryTime *time.Time `db:"refresh_token_expiry_time"`
	AuditFields
}
