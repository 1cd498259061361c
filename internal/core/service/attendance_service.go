package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/palmbay-resort/portal-api/internal/core/domain"
	"github.com/palmbay-resort/portal-api/internal/core/ports"
)

const attendanceDateLayout = "2006-01-02"

// AttendanceService implements staff clock-in/clock-out against the
// attendance collection.
type AttendanceService struct {
	repo   ports.AttendanceRepository
	logger zerolog.Logger

	// now is swappable in tests.
	now func() time.Time
}

func NewAttendanceService(repo ports.AttendanceRepository, logger zerolog.Logger) *AttendanceService {
	return &AttendanceService{repo: repo, logger: logger, now: func() time.Time { return time.Now().UTC() }}
}

// ClockIn opens today's attendance record for the staff member. A second
// clock-in on the same day fails while the first record is still open.
func (s *AttendanceService) ClockIn(ctx context.Context, staff *domain.Identity) (*domain.AttendanceRecord, error) {
	now := s.now()
	date := now.Format(attendanceDateLayout)

	_, err := s.repo.FindOpen(ctx, staff.ID, date)
	if err == nil {
		return nil, domain.ErrAlreadyClockedIn
	}
	if !errors.Is(err, domain.ErrAttendanceNotFound) {
		return nil, err
	}

	record := &domain.AttendanceRecord{
		StaffID:    staff.ID,
		Username:   staff.Username,
		Department: staff.Department,
		Date:       date,
		ClockIn:    now,
		CreatedAt:  now,
	}

	created, err := s.repo.Insert(ctx, record)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("staff_id", staff.ID).Str("date", date).Msg("clock in")
	return created, nil
}

// ClockOut closes today's open record.
func (s *AttendanceService) ClockOut(ctx context.Context, staff *domain.Identity) (*domain.AttendanceRecord, error) {
	now := s.now()
	date := now.Format(attendanceDateLayout)

	record, err := s.repo.FindOpen(ctx, staff.ID, date)
	if errors.Is(err, domain.ErrAttendanceNotFound) {
		return nil, domain.ErrNotClockedIn
	}
	if err != nil {
		return nil, err
	}

	if err := s.repo.SetClockOut(ctx, record.ID, now); err != nil {
		return nil, err
	}

	record.ClockOut = &now
	s.logger.Info().Str("staff_id", staff.ID).Str("date", date).Msg("clock out")
	return record, nil
}

// ListDate returns all attendance records for a date (YYYY-MM-DD).
func (s *AttendanceService) ListDate(ctx context.Context, date string) ([]domain.AttendanceRecord, error) {
	if _, err := time.Parse(attendanceDateLayout, date); err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", domain.ErrInvalidInput)
	}
	return s.repo.ListByDate(ctx, date)
}
