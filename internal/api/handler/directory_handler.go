package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/palmbay-resort/portal-api/internal/core/domain"
	"github.com/palmbay-resort/portal-api/internal/core/ports"
)

// DirectoryHandler is the admin tooling over the guest and staff
// collections: listing accounts and flipping the soft-deactivation flag.
// Accounts are never deleted.
type DirectoryHandler struct {
	guests ports.IdentityRepository
	staff  ports.IdentityRepository
}

func NewDirectoryHandler(guests, staff ports.IdentityRepository) *DirectoryHandler {
	return &DirectoryHandler{guests: guests, staff: staff}
}

type setActiveRequest struct {
	Active *bool `json:"active" validate:"required"`
}

// ListGuests returns all guest accounts, sanitized.
func (h *DirectoryHandler) ListGuests(c echo.Context) error {
	return h.list(c, h.guests)
}

// ListStaff returns all staff accounts, sanitized.
func (h *DirectoryHandler) ListStaff(c echo.Context) error {
	return h.list(c, h.staff)
}

func (h *DirectoryHandler) list(c echo.Context, repo ports.IdentityRepository) error {
	identities, err := repo.List(c.Request().Context())
	if err != nil {
		return err
	}

	sanitized := make([]domain.Identity, 0, len(identities))
	for i := range identities {
		sanitized = append(sanitized, *identities[i].Sanitized())
	}
	return c.JSON(http.StatusOK, sanitized)
}

// SetGuestActive deactivates or reactivates a guest account. A deactivated
// account fails every login and session check, even with a valid token.
func (h *DirectoryHandler) SetGuestActive(c echo.Context) error {
	active, err := bindSetActive(c)
	if err != nil {
		return err
	}

	if err := h.guests.SetActive(c.Request().Context(), c.Param("id"), active); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "updated"})
}

// SetStaffActive deactivates or reactivates a staff account. The actor must
// outrank or match the target in the role hierarchy.
func (h *DirectoryHandler) SetStaffActive(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	active, err := bindSetActive(c)
	if err != nil {
		return err
	}

	target, err := h.staff.FindByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	if !domain.IsAtLeast(actor.Role, target.Role) {
		return domain.ErrForbidden
	}

	if err := h.staff.SetActive(c.Request().Context(), target.ID, active); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "updated"})
}

func bindSetActive(c echo.Context) (bool, error) {
	var req setActiveRequest
	if err := c.Bind(&req); err != nil {
		return false, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return false, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return *req.Active, nil
}
