package service

import (
	"context"
	"errors"

	"github.com/veridia/user-provisioning/api/internal/auth"
	"github.com/veridia/user-provisioning/api/internal/identity"
)

// ErrInvalidCredentials is surfaced for any failed login attempt.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService exchanges credentials for API tokens. Credential verification
// itself is delegated to the identity provider.
type AuthService struct {
	accounts identity.Service
	jwt      *auth.JWTManager
}

// NewAuthService constructs a new AuthService.
func NewAuthService(accounts identity.Service, jwtManager *auth.JWTManager) *AuthService {
	return &AuthService{accounts: accounts, jwt: jwtManager}
}

// Login validates credentials against the identity provider and returns a JWT.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", ErrInvalidCredentials
	}

	uid, err := s.accounts.VerifyPassword(ctx, email, password)
	if err != nil {
		if errors.Is(err, identity.ErrInvalidCredentials) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	token, err := s.jwt.GenerateToken(uid, email)
	if err != nil {
		return "", err
	}

	return token, nil
}
