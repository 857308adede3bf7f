package domain

import "time"

// User is a registered account. It is created once at registration and never
// mutated afterwards. Emails are stored lowercase; the service normalizes
// before any store operation so uniqueness is effectively case-insensitive.
type User struct {
	ID           string
	Username     string // display name, not unique
	Email        string // unique, lowercase
	PasswordHash string // argon2id PHC encoded, never the plaintext
	PhoneNumber  string // optional
	CreatedAt    time.Time
}
