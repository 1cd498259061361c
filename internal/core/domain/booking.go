package domain

import (
	"time"
)

// BookingStatus represents the lifecycle state of a booking request.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

// validBookingTransitions defines the allowed state machine transitions.
var validBookingTransitions = map[BookingStatus][]BookingStatus{
	BookingPending:   {BookingConfirmed, BookingCancelled},
	BookingConfirmed: {BookingCompleted, BookingCancelled},
}

// CanTransitionTo reports whether a transition from the current status to
// next is valid.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range validBookingTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Booking is a guest's room reservation request.
type Booking struct {
	ID         string        `json:"id" bson:"_id,omitempty"`
	GuestID    string        `json:"guest_id" bson:"guest_id"`
	GuestName  string        `json:"guest_name" bson:"guest_name"`
	GuestEmail string        `json:"guest_email" bson:"guest_email"`
	Phone      string        `json:"phone,omitempty" bson:"phone,omitempty"`
	RoomType   string        `json:"room_type" bson:"room_type"`
	CheckIn    time.Time     `json:"check_in" bson:"check_in"`
	CheckOut   time.Time     `json:"check_out" bson:"check_out"`
	Guests     int           `json:"guests" bson:"guests"`
	Requests   string        `json:"requests,omitempty" bson:"requests,omitempty"`
	Status     BookingStatus `json:"status" bson:"status"`
	CreatedAt  time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at" bson:"updated_at"`
}
