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

const collectionBookings = "bookings"

type BookingRepository struct {
	coll *mongo.Collection
}

func NewBookingRepository(db *mongo.Database) *BookingRepository {
	return &BookingRepository{coll: db.Collection(collectionBookings)}
}

func (r *BookingRepository) Insert(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	created := *booking
	created.ID = primitive.NewObjectID().Hex()

	if _, err := r.coll.InsertOne(ctx, created); err != nil {
		return nil, fmt.Errorf("insert booking: %w", storeErr(err))
	}
	return &created, nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id string) (*domain.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var booking domain.Booking
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&booking); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("find booking: %w", storeErr(err))
	}
	return &booking, nil
}

func (r *BookingRepository) ListByGuest(ctx context.Context, guestID string) ([]domain.Booking, error) {
	return r.list(ctx, bson.M{"guest_id": guestID})
}

func (r *BookingRepository) List(ctx context.Context) ([]domain.Booking, error) {
	return r.list(ctx, bson.M{})
}

func (r *BookingRepository) list(ctx context.Context, filter bson.M) ([]domain.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", storeErr(err))
	}

	bookings := []domain.Booking{}
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("list bookings: %w", storeErr(err))
	}
	return bookings, nil
}

func (r *BookingRepository) SetStatus(ctx context.Context, id string, status domain.BookingStatus) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{"status": status, "updated_at": time.Now().UTC()}}
	res, err := r.coll.UpdateByID(ctx, id, update)
	if err != nil {
		return fmt.Errorf("update booking: %w", storeErr(err))
	}
	if res.MatchedCount == 0 {
		return domain.ErrBookingNotFound
	}
	return nil
}

// EnsureIndexes creates the lookup indexes used by the booking flows.
func (r *BookingRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "guest_id", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
