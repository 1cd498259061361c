package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/palmbay-resort/portal-api/internal/api/metrics"
	"github.com/palmbay-resort/portal-api/internal/core/ports"
)

type AttendanceHandler struct {
	svc ports.AttendanceService
}

func NewAttendanceHandler(svc ports.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{svc: svc}
}

// ClockIn opens today's attendance record for the authenticated staff member.
func (h *AttendanceHandler) ClockIn(c echo.Context) error {
	staff, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	record, err := h.svc.ClockIn(c.Request().Context(), staff)
	if err != nil {
		return err
	}

	metrics.AttendanceEventsTotal.WithLabelValues("clock_in").Inc()
	return c.JSON(http.StatusCreated, record)
}

// ClockOut closes today's open attendance record.
func (h *AttendanceHandler) ClockOut(c echo.Context) error {
	staff, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	record, err := h.svc.ClockOut(c.Request().Context(), staff)
	if err != nil {
		return err
	}

	metrics.AttendanceEventsTotal.WithLabelValues("clock_out").Inc()
	return c.JSON(http.StatusOK, record)
}

// ListDate returns attendance records for ?date=YYYY-MM-DD (default today).
// Capability-guarded on the admin side.
func (h *AttendanceHandler) ListDate(c echo.Context) error {
	date := c.QueryParam("date")
	if date == "" {
		date = time.Now().UTC().Format("2006-01-02")
	}

	records, err := h.svc.ListDate(c.Request().Context(), date)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, records)
}
