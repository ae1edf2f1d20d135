package entity

import "time"

// Account is a credential record held by the local identity store. Only the
// local provider uses this table; with an external identity platform the
// provider owns the equivalent record.
type Account struct {
	UID           string    `json:"uid"`
	Email         string    `json:"email"`
	PasswordHash  string    `json:"-"`
	EmailVerified bool      `json:"email_verified"`
	CreatedAt     time.Time `json:"created_at"`
}
