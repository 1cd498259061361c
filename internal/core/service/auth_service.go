package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/rs/zerolog"

	"github.com/palmbay-resort/portal-api/internal/core/domain"
	"github.com/palmbay-resort/portal-api/internal/core/ports"
)

const minSecretLength = 6

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// PortalConfig binds an AuthService instance to one portal: its identity
// collection (via the injected repository), credential salt, and session
// cookie name.
type PortalConfig struct {
	Portal     domain.Portal
	Salt       string
	CookieName string

	// KeyIsEmail marks portals whose natural key is an email address
	// (guests). Staff and admin portals use usernames.
	KeyIsEmail bool

	// Departmental marks portals whose registrations carry a department
	// and role that must be validated against the role tables (staff).
	Departmental bool

	// DefaultRole, when set, is assigned to every registration regardless
	// of the request (admin portal).
	DefaultRole domain.Role
}

// AuthService implements login, registration and session checks for a
// single portal.
type AuthService struct {
	portal  PortalConfig
	repo    ports.IdentityRepository
	limiter ports.LoginRateLimiter
	logger  zerolog.Logger
}

// NewAuthService builds a portal authenticator. limiter may be nil, in
// which case login attempts are not rate limited.
func NewAuthService(portal PortalConfig, repo ports.IdentityRepository, limiter ports.LoginRateLimiter, logger zerolog.Logger) *AuthService {
	return &AuthService{
		portal:  portal,
		repo:    repo,
		limiter: limiter,
		logger:  logger.With().Str("portal", string(portal.Portal)).Logger(),
	}
}

// CookieName returns the portal's session cookie name.
func (s *AuthService) CookieName() string {
	return s.portal.CookieName
}

// Login verifies the submitted secret and, on success, rotates the
// identity's session token. The previous token stops resolving the moment
// the overwrite lands. An unknown natural key and a wrong secret yield the
// same error so callers cannot probe for account existence.
func (s *AuthService) Login(ctx context.Context, naturalKey, secret string) (*ports.Session, error) {
	if naturalKey == "" || secret == "" {
		return nil, domain.ErrMissingCredentials
	}

	if s.limiter != nil {
		allowed, err := s.limiter.Allow(ctx, string(s.portal.Portal), naturalKey)
		if err != nil {
			// The limiter is advisory; a broken limiter must not take the
			// login path down with it.
			s.logger.Warn().Err(err).Msg("rate limiter unavailable")
		} else if !allowed {
			return nil, domain.ErrTooManyAttempts
		}
	}

	identity, err := s.repo.FindByNaturalKey(ctx, naturalKey)
	if errors.Is(err, domain.ErrIdentityNotFound) {
		return nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if !identity.IsActive {
		return nil, domain.ErrAccountDeactivated
	}

	if !VerifySecret(secret, s.portal.Salt, identity.CredentialDigest) {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := IssueToken()
	if err != nil {
		return nil, err
	}
	if err := s.repo.SetToken(ctx, identity.ID, token); err != nil {
		return nil, err
	}

	if s.limiter != nil {
		if err := s.limiter.Reset(ctx, string(s.portal.Portal), naturalKey); err != nil {
			s.logger.Warn().Err(err).Msg("rate limiter reset failed")
		}
	}

	s.logger.Info().Str("identity_id", identity.ID).Msg("login")
	return &ports.Session{Identity: identity.Sanitized(), Token: token}, nil
}

// Register validates the input, creates the identity with a hashed secret,
// and opens a session for it.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*ports.Session, error) {
	if err := s.validateRegistration(in); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	identity := &domain.Identity{
		FullName:         in.FullName,
		Phone:            in.Phone,
		CredentialDigest: HashSecret(in.Secret, s.portal.Salt),
		IsActive:         true,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if s.portal.KeyIsEmail {
		identity.Email = in.NaturalKey
	} else {
		identity.Username = in.NaturalKey
	}
	switch {
	case s.portal.DefaultRole != "":
		identity.Role = s.portal.DefaultRole
	case s.portal.Departmental:
		identity.Department = in.Department
		identity.Role = in.Role
	}

	created, err := s.repo.Insert(ctx, identity)
	if err != nil {
		return nil, err
	}

	token, err := IssueToken()
	if err != nil {
		return nil, err
	}
	if err := s.repo.SetToken(ctx, created.ID, token); err != nil {
		return nil, err
	}

	s.logger.Info().Str("identity_id", created.ID).Msg("registered")
	return &ports.Session{Identity: created.Sanitized(), Token: token}, nil
}

func (s *AuthService) validateRegistration(in ports.RegisterInput) error {
	if in.NaturalKey == "" || in.Secret == "" {
		return domain.ErrMissingCredentials
	}
	if in.FullName == "" {
		return fmt.Errorf("%w: full name is required", domain.ErrInvalidInput)
	}
	if len(in.Secret) < minSecretLength {
		return fmt.Errorf("%w: password must be at least %d characters", domain.ErrInvalidInput, minSecretLength)
	}
	if s.portal.KeyIsEmail && !emailPattern.MatchString(in.NaturalKey) {
		return fmt.Errorf("%w: invalid email address", domain.ErrInvalidInput)
	}
	if s.portal.Departmental {
		if in.Role == "" || in.Department == "" {
			return fmt.Errorf("%w: department and role are required", domain.ErrInvalidInput)
		}
		if !domain.ValidRoleForDepartment(in.Role, in.Department) {
			return domain.ErrInvalidRole
		}
	}
	return nil
}

// CheckSession resolves a bearer token to its identity. Token validity is
// solely presence in the portal collection; there is no expiry, and logout
// does not clear the stored token — only the next login overwrites it.
func (s *AuthService) CheckSession(ctx context.Context, token string) (*domain.Identity, error) {
	if token == "" {
		return nil, domain.ErrUnauthenticated
	}

	identity, err := s.repo.FindByToken(ctx, token)
	if errors.Is(err, domain.ErrIdentityNotFound) {
		return nil, domain.ErrUnauthenticated
	}
	if err != nil {
		return nil, err
	}

	if !identity.IsActive {
		return nil, domain.ErrAccountDeactivated
	}
	return identity.Sanitized(), nil
}
