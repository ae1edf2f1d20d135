package service

import (
	"context"
	"errors"

	"github.com/nyaruka/phonenumbers"

	"github.com/veridia/user-provisioning/api/internal/dto"
	"github.com/veridia/user-provisioning/api/internal/entity"
	"github.com/veridia/user-provisioning/api/internal/identity"
	"github.com/veridia/user-provisioning/api/internal/status"
	"github.com/veridia/user-provisioning/api/internal/store"
)

// Fixed caller-facing messages.
const (
	MsgSignInRequired = "Debes iniciar sesión"
	MsgNotAdmin       = "No tienes permisos de administrador"
	MsgIncompleteData = "Datos incompletos"
	MsgInvalidPhone   = "Número de teléfono inválido"
	MsgUserCreated    = "Usuario creado exitosamente"
)

// Provisioner orchestrates admin-driven user creation: authorization against
// the profile store, input validation, identity-provider account creation,
// and the profile write.
type Provisioner struct {
	profiles    store.ProfileStore
	accounts    identity.Service
	phoneRegion string
}

// NewProvisioner builds a Provisioner with its two collaborators injected.
func NewProvisioner(profiles store.ProfileStore, accounts identity.Service, phoneRegion string) *Provisioner {
	return &Provisioner{profiles: profiles, accounts: accounts, phoneRegion: phoneRegion}
}

// CreateUser runs the provisioning sequence for the caller identified by
// callerUID. Guards run in order and fail fast; the caller receives exactly
// one classified error per invocation.
func (s *Provisioner) CreateUser(ctx context.Context, callerUID string, req dto.CreateUserRequest) (*dto.CreateUserResponse, *status.Error) {
	if callerUID == "" {
		return nil, status.New(status.Unauthenticated, MsgSignInRequired)
	}

	// The admin role is re-read from the store on every invocation. Token
	// claims are not trusted for this decision, so a revoked admin loses
	// access immediately.
	caller, err := s.profiles.Get(ctx, callerUID)
	if err != nil {
		if errors.Is(err, store.ErrProfileNotFound) {
			return nil, status.New(status.PermissionDenied, MsgNotAdmin)
		}
		return nil, status.New(status.Internal, err.Error())
	}
	if caller.Role != "admin" {
		return nil, status.New(status.PermissionDenied, MsgNotAdmin)
	}

	if req.Email == "" || req.Password == "" || req.Role == "" {
		return nil, status.New(status.InvalidArgument, MsgIncompleteData)
	}

	var phone *string
	if req.Phone != "" {
		normalized, err := normalizePhone(req.Phone, s.phoneRegion)
		if err != nil {
			return nil, status.New(status.InvalidArgument, MsgInvalidPhone)
		}
		phone = &normalized
	}

	// Email format and password policy are the identity provider's call;
	// its message is forwarded verbatim so the caller learns the reason.
	uid, err := s.accounts.CreateAccount(ctx, req.Email, req.Password)
	if err != nil {
		return nil, status.New(status.Internal, err.Error())
	}

	// If this write fails the identity account is not rolled back; an
	// orphaned account without a profile is a known gap.
	if _, err := s.profiles.Create(ctx, entity.NewProfile{
		UID:       uid,
		Email:     req.Email,
		Role:      req.Role,
		Phone:     phone,
		CreatedBy: callerUID,
	}); err != nil {
		return nil, status.New(status.Internal, err.Error())
	}

	return &dto.CreateUserResponse{
		Success: true,
		UserID:  uid,
		Message: MsgUserCreated,
	}, nil
}

func normalizePhone(raw, region string) (string, error) {
	number, err := phonenumbers.Parse(raw, region)
	if err != nil {
		return "", err
	}
	if !phonenumbers.IsPossibleNumber(number) || !phonenumbers.IsValidNumber(number) {
		return "", errors.New("number is not valid")
	}
	return phonenumbers.Format(number, phonenumbers.E164), nil
}
