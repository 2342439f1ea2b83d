// Package auth implements credential verification and bearer-token issuance
// for hospitals and admins. Authentication (who the caller is) is kept
// separate from authorization (what the caller may do): login failures are
// unauthorized, while an unapproved hospital or disabled admin presenting
// valid credentials is forbidden.
package auth

import (
	"context"
	"fmt"
	"strings"

	"bloodlink/internal/config"
	"bloodlink/pkg/domain"
	"bloodlink/pkg/serrors"
	"bloodlink/pkg/storage"

	"github.com/google/uuid"
)

// NewTokenOptions constructs TokenOptions from the application config.
func NewTokenOptions(cfg *config.Config) TokenOptions {
	return TokenOptions{
		PrivateKey: cfg.JWT.PrivateKey,
		PublicKey:  cfg.JWT.PublicKey,
		TTL:        cfg.JWT.TTL,
	}
}

// service is the concrete implementation of the Service interface.
type service struct {
	storage storage.Storage
	tokens  *Tokens
}

// LoginHospital verifies hospital credentials and returns a signed token. The
// approval gate is checked before the password so an unapproved hospital
// always gets the same forbidden answer regardless of the password supplied.
func (s service) LoginHospital(ctx context.Context, email, password string) (string, *domain.Hospital, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	hospital, err := s.storage.HospitalByEmail(ctx, email)
	if err != nil {
		return "", nil, fmt.Errorf("could not fetch hospital: %w", err)
	}
	if hospital == nil {
		return "", nil, serrors.With(serrors.ErrUnauthorized, "invalid credentials")
	}
	if !hospital.IsApproved() {
		return "", nil, serrors.With(serrors.ErrForbidden, "hospital not approved yet")
	}
	if !CheckPassword(hospital.PasswordHash, password) {
		return "", nil, serrors.With(serrors.ErrUnauthorized, "invalid credentials")
	}

	token, err := s.tokens.Issue(domain.Identity{
		Subject: uuid.UUID(hospital.ID),
		Role:    domain.RoleHospital,
	})
	if err != nil {
		return "", nil, fmt.Errorf("could not issue token: %w", err)
	}

	return token, hospital, nil
}

// LoginAdmin verifies admin credentials and returns a signed token. Disabled
// admin accounts are forbidden even with a correct password.
func (s service) LoginAdmin(ctx context.Context, email, password string) (string, *domain.Admin, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	admin, err := s.storage.AdminByEmail(ctx, email)
	if err != nil {
		return "", nil, fmt.Errorf("could not fetch admin: %w", err)
	}
	if admin == nil {
		return "", nil, serrors.With(serrors.ErrUnauthorized, "invalid credentials")
	}
	if !admin.Active {
		return "", nil, serrors.With(serrors.ErrForbidden, "admin account disabled")
	}
	if !CheckPassword(admin.PasswordHash, password) {
		return "", nil, serrors.With(serrors.ErrUnauthorized, "invalid credentials")
	}

	token, err := s.tokens.Issue(domain.Identity{
		Subject: uuid.UUID(admin.ID),
		Role:    domain.RoleAdmin,
	})
	if err != nil {
		return "", nil, fmt.Errorf("could not issue token: %w", err)
	}

	return token, admin, nil
}

// New creates a new auth Service backed by the provided storage and token
// signer.
func New(storage storage.Storage, tokens *Tokens) Service {
	return &service{
		storage: storage,
		tokens:  tokens,
	}
}
