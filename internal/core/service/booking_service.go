package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/palmbay-resort/portal-api/internal/core/domain"
	"github.com/palmbay-resort/portal-api/internal/core/ports"
)

const bookingDateLayout = "2006-01-02"

// BookingService implements the guest booking flow and staff-side booking
// management.
type BookingService struct {
	repo   ports.BookingRepository
	queue  ports.NotificationQueue
	logger zerolog.Logger
}

func NewBookingService(repo ports.BookingRepository, queue ports.NotificationQueue, logger zerolog.Logger) *BookingService {
	return &BookingService{repo: repo, queue: queue, logger: logger}
}

// Create validates and stores a booking request, then enqueues the
// confirmation notification. Notification delivery is asynchronous and never
// fails the booking.
func (s *BookingService) Create(ctx context.Context, in ports.CreateBookingInput) (*domain.Booking, error) {
	checkIn, err := time.Parse(bookingDateLayout, in.CheckIn)
	if err != nil {
		return nil, fmt.Errorf("%w: check-in date must be YYYY-MM-DD", domain.ErrInvalidInput)
	}
	checkOut, err := time.Parse(bookingDateLayout, in.CheckOut)
	if err != nil {
		return nil, fmt.Errorf("%w: check-out date must be YYYY-MM-DD", domain.ErrInvalidInput)
	}
	if !checkOut.After(checkIn) {
		return nil, fmt.Errorf("%w: check-out must be after check-in", domain.ErrInvalidInput)
	}
	if in.Guests < 1 {
		return nil, fmt.Errorf("%w: at least one guest is required", domain.ErrInvalidInput)
	}

	now := time.Now().UTC()
	booking := &domain.Booking{
		GuestID:    in.GuestID,
		GuestName:  in.GuestName,
		GuestEmail: in.GuestEmail,
		Phone:      in.Phone,
		RoomType:   in.RoomType,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Guests:     in.Guests,
		Requests:   in.Requests,
		Status:     domain.BookingPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	created, err := s.repo.Insert(ctx, booking)
	if err != nil {
		return nil, err
	}

	s.queue.Enqueue(*created)
	s.logger.Info().
		Str("booking_id", created.ID).
		Str("guest_id", created.GuestID).
		Str("room_type", created.RoomType).
		Msg("booking created")
	return created, nil
}

func (s *BookingService) ListForGuest(ctx context.Context, guestID string) ([]domain.Booking, error) {
	return s.repo.ListByGuest(ctx, guestID)
}

func (s *BookingService) ListAll(ctx context.Context) ([]domain.Booking, error) {
	return s.repo.List(ctx)
}

// UpdateStatus applies a staff-side status change if the booking state
// machine permits it.
func (s *BookingService) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error) {
	booking, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !booking.Status.CanTransitionTo(status) {
		return nil, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, booking.Status, status)
	}

	if err := s.repo.SetStatus(ctx, id, status); err != nil {
		return nil, err
	}

	booking.Status = status
	s.logger.Info().Str("booking_id", id).Str("status", string(status)).Msg("booking status updated")
	return booking, nil
}

// StatusSummary counts bookings per status for the reports view.
func (s *BookingService) StatusSummary(ctx context.Context) (map[domain.BookingStatus]int, error) {
	bookings, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	summary := make(map[domain.BookingStatus]int)
	for _, b := range bookings {
		summary[b.Status]++
	}
	return summary, nil
}
