package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/palmbay-resort/portal-api/internal/api/metrics"
	"github.com/palmbay-resort/portal-api/internal/core/domain"
	"github.com/palmbay-resort/portal-api/internal/core/ports"
)

type BookingHandler struct {
	svc ports.BookingService
}

func NewBookingHandler(svc ports.BookingService) *BookingHandler {
	return &BookingHandler{svc: svc}
}

// Create files a booking request for the authenticated guest. Guest
// identity comes from the session, never from the body.
//
// @Summary      Create a booking
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        body  body      createBookingRequest  true  "Booking details"
// @Success      201   {object}  domain.Booking
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/guest/bookings [post]
func (h *BookingHandler) Create(c echo.Context) error {
	guest, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	booking, err := h.svc.Create(c.Request().Context(), ports.CreateBookingInput{
		GuestID:    guest.ID,
		GuestName:  guest.FullName,
		GuestEmail: guest.Email,
		Phone:      guest.Phone,
		RoomType:   req.RoomType,
		CheckIn:    req.CheckIn,
		CheckOut:   req.CheckOut,
		Guests:     req.Guests,
		Requests:   req.Requests,
	})
	if err != nil {
		return err
	}

	metrics.BookingsCreatedTotal.WithLabelValues(booking.RoomType).Inc()
	return c.JSON(http.StatusCreated, booking)
}

// ListOwn returns the authenticated guest's bookings.
func (h *BookingHandler) ListOwn(c echo.Context) error {
	guest, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	bookings, err := h.svc.ListForGuest(c.Request().Context(), guest.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, bookings)
}

// ListAll returns every booking; staff-side, capability-guarded.
func (h *BookingHandler) ListAll(c echo.Context) error {
	bookings, err := h.svc.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, bookings)
}

// UpdateStatus applies a staff-side booking status change.
//
// @Summary      Update booking status
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        id    path      string                      true  "Booking id"
// @Param        body  body      updateBookingStatusRequest  true  "New status"
// @Success      200   {object}  domain.Booking
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /api/staff/bookings/{id}/status [patch]
func (h *BookingHandler) UpdateStatus(c echo.Context) error {
	var req updateBookingStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	booking, err := h.svc.UpdateStatus(c.Request().Context(), c.Param("id"), domain.BookingStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, booking)
}

// Summary returns booking counts per status for the reports view.
func (h *BookingHandler) Summary(c echo.Context) error {
	summary, err := h.svc.StatusSummary(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, summary)
}
