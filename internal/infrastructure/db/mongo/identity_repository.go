package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/palmbay-resort/portal-api/internal/core/domain"
)

// Portal identity collections.
const (
	CollectionGuests = "guests"
	CollectionStaff  = "staff"
	CollectionAdmin  = "admin"
)

// Natural-key fields per portal.
const (
	KeyFieldEmail    = "email"
	KeyFieldUsername = "username"
)

// IdentityRepository is a per-portal identity collection adapter. The key
// field ("email" or "username") is fixed at construction; every query stays
// within the bound collection.
type IdentityRepository struct {
	coll     *mongo.Collection
	keyField string
}

func NewIdentityRepository(db *mongo.Database, collection, keyField string) *IdentityRepository {
	return &IdentityRepository{coll: db.Collection(collection), keyField: keyField}
}

type identityDoc struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"`
	Email            string             `bson:"email,omitempty"`
	Username         string             `bson:"username,omitempty"`
	CredentialDigest string             `bson:"password"`
	FullName         string             `bson:"full_name"`
	Phone            string             `bson:"phone,omitempty"`
	Department       string             `bson:"department,omitempty"`
	Role             string             `bson:"role,omitempty"`
	IsActive         bool               `bson:"is_active"`
	SessionToken     string             `bson:"session_token,omitempty"`
	CreatedAt        int64              `bson:"created_at"`
	UpdatedAt        int64              `bson:"updated_at"`
}

func (d *identityDoc) toDomain() *domain.Identity {
	return &domain.Identity{
		ID:               d.ID.Hex(),
		Email:            d.Email,
		Username:         d.Username,
		CredentialDigest: d.CredentialDigest,
		FullName:         d.FullName,
		Phone:            d.Phone,
		Department:       domain.Department(d.Department),
		Role:             domain.Role(d.Role),
		IsActive:         d.IsActive,
		SessionToken:     d.SessionToken,
		CreatedAt:        unixToTime(d.CreatedAt),
		UpdatedAt:        unixToTime(d.UpdatedAt),
	}
}

func (r *IdentityRepository) FindByNaturalKey(ctx context.Context, key string) (*domain.Identity, error) {
	return r.findOne(ctx, bson.M{r.keyField: key})
}

func (r *IdentityRepository) FindByToken(ctx context.Context, token string) (*domain.Identity, error) {
	return r.findOne(ctx, bson.M{"session_token": token})
}

func (r *IdentityRepository) FindByID(ctx context.Context, id string) (*domain.Identity, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrIdentityNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *IdentityRepository) findOne(ctx context.Context, filter bson.M) (*domain.Identity, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc identityDoc
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrIdentityNotFound
		}
		return nil, fmt.Errorf("find identity: %w", storeErr(err))
	}
	return doc.toDomain(), nil
}

func (r *IdentityRepository) Insert(ctx context.Context, identity *domain.Identity) (*domain.Identity, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := identityDoc{
		Email:            identity.Email,
		Username:         identity.Username,
		CredentialDigest: identity.CredentialDigest,
		FullName:         identity.FullName,
		Phone:            identity.Phone,
		Department:       string(identity.Department),
		Role:             string(identity.Role),
		IsActive:         identity.IsActive,
		SessionToken:     identity.SessionToken,
		CreatedAt:        identity.CreatedAt.Unix(),
		UpdatedAt:        identity.UpdatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateIdentity
		}
		return nil, fmt.Errorf("insert identity: %w", storeErr(err))
	}

	created := *identity
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

// SetToken atomically overwrites the session token. Any previously stored
// token stops resolving in the same write.
func (r *IdentityRepository) SetToken(ctx context.Context, id, token string) error {
	return r.updateByID(ctx, id, bson.M{"session_token": token})
}

func (r *IdentityRepository) SetActive(ctx context.Context, id string, active bool) error {
	return r.updateByID(ctx, id, bson.M{"is_active": active})
}

func (r *IdentityRepository) updateByID(ctx context.Context, id string, fields bson.M) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrIdentityNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	fields["updated_at"] = time.Now().UTC().Unix()
	res, err := r.coll.UpdateByID(ctx, oid, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("update identity: %w", storeErr(err))
	}
	if res.MatchedCount == 0 {
		return domain.ErrIdentityNotFound
	}
	return nil
}

func (r *IdentityRepository) List(ctx context.Context) ([]domain.Identity, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list identities: %w", storeErr(err))
	}

	var docs []identityDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("list identities: %w", storeErr(err))
	}

	identities := make([]domain.Identity, 0, len(docs))
	for i := range docs {
		identities = append(identities, *docs[i].toDomain())
	}
	return identities, nil
}

// EnsureIndexes creates the uniqueness guarantees the auth flows rely on:
// one identity per natural key, and at most one identity per live session
// token (sparse, so tokenless identities do not collide).
func (r *IdentityRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: r.keyField, Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "session_token", Value: 1}},
			Options: options.Index().SetUnique(true).SetSparse(true),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}

// storeErr marks a driver failure as a dependency problem so the API layer
// can answer 503 instead of fabricating data.
func storeErr(err error) error {
	return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
}
