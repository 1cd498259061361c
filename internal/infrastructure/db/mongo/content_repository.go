package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/palmbay-resort/portal-api/internal/core/domain"
)

const (
	collectionRooms   = "rooms"
	collectionGallery = "gallery"
)

// RoomRepository serves the public room listing and the admin room upsert.
type RoomRepository struct {
	coll *mongo.Collection
}

func NewRoomRepository(db *mongo.Database) *RoomRepository {
	return &RoomRepository{coll: db.Collection(collectionRooms)}
}

func (r *RoomRepository) List(ctx context.Context) ([]domain.Room, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "price_per_night", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", storeErr(err))
	}

	rooms := []domain.Room{}
	if err := cursor.All(ctx, &rooms); err != nil {
		return nil, fmt.Errorf("list rooms: %w", storeErr(err))
	}
	return rooms, nil
}

func (r *RoomRepository) FindByID(ctx context.Context, id string) (*domain.Room, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var room domain.Room
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&room); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrRoomNotFound
		}
		return nil, fmt.Errorf("find room: %w", storeErr(err))
	}
	return &room, nil
}

// Upsert creates the room when it carries no id, otherwise replaces the
// stored document.
func (r *RoomRepository) Upsert(ctx context.Context, room *domain.Room) (*domain.Room, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	saved := *room
	now := time.Now().UTC()
	saved.UpdatedAt = now
	if saved.ID == "" {
		saved.ID = primitive.NewObjectID().Hex()
		saved.CreatedAt = now
	}

	opts := options.Replace().SetUpsert(true)
	if _, err := r.coll.ReplaceOne(ctx, bson.M{"_id": saved.ID}, saved, opts); err != nil {
		return nil, fmt.Errorf("upsert room: %w", storeErr(err))
	}
	return &saved, nil
}

// GalleryRepository serves the public gallery listing.
type GalleryRepository struct {
	coll *mongo.Collection
}

func NewGalleryRepository(db *mongo.Database) *GalleryRepository {
	return &GalleryRepository{coll: db.Collection(collectionGallery)}
}

func (r *GalleryRepository) List(ctx context.Context) ([]domain.GalleryItem, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "sort_order", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list gallery: %w", storeErr(err))
	}

	items := []domain.GalleryItem{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("list gallery: %w", storeErr(err))
	}
	return items, nil
}
