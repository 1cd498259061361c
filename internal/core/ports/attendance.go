package ports

import (
	"context"
	"time"

	"github.com/palmbay-resort/portal-api/internal/core/domain"
)

// AttendanceRepository is the attendance collection contract.
type AttendanceRepository interface {
	// FindOpen returns the staff member's open record for the given date
	// (clock-out not yet set). Returns domain.ErrAttendanceNotFound when
	// there is none.
	FindOpen(ctx context.Context, staffID, date string) (*domain.AttendanceRecord, error)
	Insert(ctx context.Context, record *domain.AttendanceRecord) (*domain.AttendanceRecord, error)
	SetClockOut(ctx context.Context, id string, at time.Time) error
	ListByDate(ctx context.Context, date string) ([]domain.AttendanceRecord, error)
}

// AttendanceService covers staff clock-in/clock-out and the reporting read
// path used by admin tooling.
type AttendanceService interface {
	ClockIn(ctx context.Context, staff *domain.Identity) (*domain.AttendanceRecord, error)
	ClockOut(ctx context.Context, staff *domain.Identity) (*domain.AttendanceRecord, error)
	ListDate(ctx context.Context, date string) ([]domain.AttendanceRecord, error)
}
