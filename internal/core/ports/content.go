package ports

import (
	"context"

	"github.com/palmbay-resort/portal-api/internal/core/domain"
)

// RoomRepository is the rooms collection contract.
type RoomRepository interface {
	List(ctx context.Context) ([]domain.Room, error)
	FindByID(ctx context.Context, id string) (*domain.Room, error)
	Upsert(ctx context.Context, room *domain.Room) (*domain.Room, error)
}

// GalleryRepository is the gallery collection contract (read-only).
type GalleryRepository interface {
	List(ctx context.Context) ([]domain.GalleryItem, error)
}
