package ports

import (
	"context"

	"github.com/palmbay-resort/portal-api/internal/core/domain"
)

// IdentityRepository is the per-portal identity collection contract. Each
// portal (guests, staff, admin) gets its own instance bound to its own
// collection; no implementation may answer queries across collections.
type IdentityRepository interface {
	// FindByNaturalKey looks up an identity by its login key (email or
	// username). Returns domain.ErrIdentityNotFound when absent.
	FindByNaturalKey(ctx context.Context, key string) (*domain.Identity, error)

	// FindByToken looks up the identity holding the given session token.
	// Returns domain.ErrIdentityNotFound when no identity holds it.
	FindByToken(ctx context.Context, token string) (*domain.Identity, error)

	// FindByID looks up an identity by its store-assigned id.
	FindByID(ctx context.Context, id string) (*domain.Identity, error)

	// Insert creates a new identity. Returns domain.ErrDuplicateIdentity
	// when the natural key is already taken.
	Insert(ctx context.Context, identity *domain.Identity) (*domain.Identity, error)

	// SetToken atomically overwrites the identity's session token. The
	// previous token, if any, stops resolving at that instant.
	SetToken(ctx context.Context, id, token string) error

	// SetActive flips the soft-deactivation flag. Identities are never
	// physically deleted.
	SetActive(ctx context.Context, id string, active bool) error

	// List returns all identities in the collection, sanitized by callers
	// before leaving the service layer.
	List(ctx context.Context) ([]domain.Identity, error)
}
