package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/palmbay-resort/portal-api/internal/core/domain"
	"github.com/palmbay-resort/portal-api/internal/core/ports"
)

// ContentHandler serves the public room and gallery listings plus the admin
// room upsert. These are thin read/write paths straight to their
// collections; a store outage surfaces as 503, never as fabricated data.
type ContentHandler struct {
	rooms   ports.RoomRepository
	gallery ports.GalleryRepository
}

func NewContentHandler(rooms ports.RoomRepository, gallery ports.GalleryRepository) *ContentHandler {
	return &ContentHandler{rooms: rooms, gallery: gallery}
}

// ListRooms returns all room types.
//
// @Summary      List rooms
// @Tags         content
// @Produce      json
// @Success      200  {array}   domain.Room
// @Failure      503  {object}  map[string]string
// @Router       /api/rooms [get]
func (h *ContentHandler) ListRooms(c echo.Context) error {
	rooms, err := h.rooms.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rooms)
}

// ListGallery returns the site gallery.
func (h *ContentHandler) ListGallery(c echo.Context) error {
	items, err := h.gallery.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

type upsertRoomRequest struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"            validate:"required"`
	Type          string   `json:"type"            validate:"required"`
	Description   string   `json:"description"`
	PricePerNight float64  `json:"price_per_night" validate:"required,gt=0"`
	Capacity      int      `json:"capacity"        validate:"required,gte=1"`
	Amenities     []string `json:"amenities"`
	ImageURL      string   `json:"image_url"`
	Available     bool     `json:"available"`
}

// UpsertRoom creates or replaces a room; admin-side, capability-guarded.
func (h *ContentHandler) UpsertRoom(c echo.Context) error {
	var req upsertRoomRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	room, err := h.rooms.Upsert(c.Request().Context(), &domain.Room{
		ID:            req.ID,
		Name:          req.Name,
		Type:          req.Type,
		Description:   req.Description,
		PricePerNight: req.PricePerNight,
		Capacity:      req.Capacity,
		Amenities:     req.Amenities,
		ImageURL:      req.ImageURL,
		Available:     req.Available,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, room)
}
