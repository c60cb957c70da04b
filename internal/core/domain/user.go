package domain

import "time"

// Theme is the UI color scheme stored in user preferences.
type Theme string

const (
	ThemeLight Theme = "LIGHT"
	ThemeDark  Theme = "DARK"
)

// UserPreferences holds the per-user display settings. Currency is the single
// currency every monetary amount of the user is denominated in.
type UserPreferences struct {
	Currency string `json:"currency"`
	Theme    Theme  `json:"theme"`
	Language string `json:"language"`
}

// User is an authenticated owner of financial records.
type User struct {
	UserID       string          `json:"id"`
	Name         string          `json:"name"`
	Email        string          `json:"email"`
	Preferences  UserPreferences `json:"preferences"`
	PasswordHash string          `json:"-"`
	// Refresh token state; hash only, the raw token is never stored.
	RefreshTokenHash       string     `json:"-"`
	RefreshTokenExpiryTime *time.Time `json:"-"`
	AuditFields
}

// GoogleUserInfo is the profile payload returned by Google's userinfo endpoint.
type GoogleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	GivenName     string `json:"given_name"`
	FamilyName    string `json:"family_name"`
	Picture       string `json:"picture"`
}
