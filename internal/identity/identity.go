package identity

import (
	"context"
	"errors"
)

// Service is the identity-provider port. It owns credential storage and
// verification; this API only orchestrates calls into it. New accounts start
// with email verification unset.
type Service interface {
	// CreateAccount provisions a credential record and returns the new uid.
	CreateAccount(ctx context.Context, email, password string) (string, error)
	// VerifyPassword checks credentials and returns the account uid.
	VerifyPassword(ctx context.Context, email, password string) (string, error)
}

var (
	// ErrEmailTaken signals the provider already holds an account for the email.
	ErrEmailTaken = errors.New("email already exists")
	// ErrInvalidCredentials signals a failed password verification.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
