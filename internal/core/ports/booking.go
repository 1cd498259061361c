package ports

import (
	"context"

	"github.com/palmbay-resort/portal-api/internal/core/domain"
)

// BookingRepository is the bookings collection contract.
type BookingRepository interface {
	Insert(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	FindByID(ctx context.Context, id string) (*domain.Booking, error)
	ListByGuest(ctx context.Context, guestID string) ([]domain.Booking, error)
	List(ctx context.Context) ([]domain.Booking, error)
	SetStatus(ctx context.Context, id string, status domain.BookingStatus) error
}

// CreateBookingInput is a guest's booking request. Guest identity fields are
// taken from the authenticated session, never from the request body.
type CreateBookingInput struct {
	GuestID    string
	GuestName  string
	GuestEmail string
	Phone      string
	RoomType   string
	CheckIn    string // YYYY-MM-DD
	CheckOut   string // YYYY-MM-DD
	Guests     int
	Requests   string
}

// BookingService covers the guest-facing booking flow and the staff-side
// booking management operations.
type BookingService interface {
	Create(ctx context.Context, in CreateBookingInput) (*domain.Booking, error)
	ListForGuest(ctx context.Context, guestID string) ([]domain.Booking, error)
	ListAll(ctx context.Context) ([]domain.Booking, error)
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error)
	StatusSummary(ctx context.Context) (map[domain.BookingStatus]int, error)
}

// Notifier delivers a booking notification (confirmation mail to the guest
// and a copy to the front desk). The boolean reports whether delivery
// succeeded; failures never fail the booking itself.
type Notifier interface {
	Send(ctx context.Context, booking *domain.Booking) (bool, error)
}

// NotificationQueue decouples booking creation from notification delivery.
type NotificationQueue interface {
	Enqueue(booking domain.Booking)
}
