package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/palmbay-resort/portal-api/internal/core/domain"
	"github.com/palmbay-resort/portal-api/internal/core/ports"
)

type stubBookingRepo struct {
	bookings map[string]*domain.Booking
	next     int
}

func newStubBookingRepo() *stubBookingRepo {
	return &stubBookingRepo{bookings: make(map[string]*domain.Booking)}
}

func (r *stubBookingRepo) Insert(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	r.next++
	created := *booking
	created.ID = fmt.Sprintf("bk-%d", r.next)
	r.bookings[created.ID] = &created
	clone := created
	return &clone, nil
}

func (r *stubBookingRepo) FindByID(_ context.Context, id string) (*domain.Booking, error) {
	if b, ok := r.bookings[id]; ok {
		clone := *b
		return &clone, nil
	}
	return nil, domain.ErrBookingNotFound
}

func (r *stubBookingRepo) ListByGuest(_ context.Context, guestID string) ([]domain.Booking, error) {
	out := []domain.Booking{}
	for _, b := range r.bookings {
		if b.GuestID == guestID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *stubBookingRepo) List(_ context.Context) ([]domain.Booking, error) {
	out := []domain.Booking{}
	for _, b := range r.bookings {
		out = append(out, *b)
	}
	return out, nil
}

func (r *stubBookingRepo) SetStatus(_ context.Context, id string, status domain.BookingStatus) error {
	b, ok := r.bookings[id]
	if !ok {
		return domain.ErrBookingNotFound
	}
	b.Status = status
	return nil
}

type stubQueue struct {
	enqueued []domain.Booking
}

func (q *stubQueue) Enqueue(booking domain.Booking) {
	q.enqueued = append(q.enqueued, booking)
}

func bookingInput() ports.CreateBookingInput {
	return ports.CreateBookingInput{
		GuestID:    "g-1",
		GuestName:  "A B",
		GuestEmail: "a@b.com",
		RoomType:   "deluxe",
		CheckIn:    "2026-09-10",
		CheckOut:   "2026-09-14",
		Guests:     2,
	}
}

func TestBookingCreate_Success(t *testing.T) {
	repo := newStubBookingRepo()
	q := &stubQueue{}
	svc := NewBookingService(repo, q, zerolog.Nop())

	booking, err := svc.Create(context.Background(), bookingInput())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if booking.Status != domain.BookingPending {
		t.Fatalf("expected pending status, got %s", booking.Status)
	}
	if booking.ID == "" {
		t.Fatalf("expected store-assigned id")
	}
	if len(q.enqueued) != 1 || q.enqueued[0].ID != booking.ID {
		t.Fatalf("expected one enqueued notification for %s, got %+v", booking.ID, q.enqueued)
	}
}

func TestBookingCreate_Validation(t *testing.T) {
	repo := newStubBookingRepo()
	svc := NewBookingService(repo, &stubQueue{}, zerolog.Nop())

	cases := []struct {
		name   string
		mutate func(*ports.CreateBookingInput)
	}{
		{"bad check-in", func(in *ports.CreateBookingInput) { in.CheckIn = "tomorrow" }},
		{"bad check-out", func(in *ports.CreateBookingInput) { in.CheckOut = "14/09/2026" }},
		{"check-out before check-in", func(in *ports.CreateBookingInput) { in.CheckOut = "2026-09-09" }},
		{"same-day stay", func(in *ports.CreateBookingInput) { in.CheckOut = in.CheckIn }},
		{"no guests", func(in *ports.CreateBookingInput) { in.Guests = 0 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := bookingInput()
			tc.mutate(&in)
			if _, err := svc.Create(context.Background(), in); !errors.Is(err, domain.ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
	if len(repo.bookings) != 0 {
		t.Fatalf("invalid input must not create bookings")
	}
}

func TestBookingUpdateStatus(t *testing.T) {
	repo := newStubBookingRepo()
	svc := NewBookingService(repo, &stubQueue{}, zerolog.Nop())

	booking, err := svc.Create(context.Background(), bookingInput())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := svc.UpdateStatus(context.Background(), booking.ID, domain.BookingConfirmed)
	if err != nil {
		t.Fatalf("pending -> confirmed failed: %v", err)
	}
	if updated.Status != domain.BookingConfirmed {
		t.Fatalf("unexpected status: %s", updated.Status)
	}

	// confirmed -> pending is not a legal transition.
	if _, err := svc.UpdateStatus(context.Background(), booking.ID, domain.BookingPending); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}

	if _, err := svc.UpdateStatus(context.Background(), "missing", domain.BookingConfirmed); !errors.Is(err, domain.ErrBookingNotFound) {
		t.Fatalf("expected ErrBookingNotFound, got %v", err)
	}
}

func TestBookingStatusSummary(t *testing.T) {
	repo := newStubBookingRepo()
	svc := NewBookingService(repo, &stubQueue{}, zerolog.Nop())

	for i := 0; i < 3; i++ {
		in := bookingInput()
		in.GuestID = fmt.Sprintf("g-%d", i)
		if _, err := svc.Create(context.Background(), in); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}
	if _, err := svc.UpdateStatus(context.Background(), "bk-1", domain.BookingConfirmed); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	summary, err := svc.StatusSummary(context.Background())
	if err != nil {
		t.Fatalf("summary failed: %v", err)
	}
	if summary[domain.BookingPending] != 2 || summary[domain.BookingConfirmed] != 1 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
}
