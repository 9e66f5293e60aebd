package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// LocationsResponse is the body of GET /api/locations.
type LocationsResponse struct {
	Locations []string `json:"locations"`
}

// GetLocations returns the selectable locations.
func (h *Handler) GetLocations(c *fiber.Ctx) error {
	locations, err := h.svc.Locations(c.UserContext())
	if err != nil {
		h.log.Errorw("failed to list locations", "error", err.Error())
		return writeError(c, err)
	}
	if locations == nil {
		locations = []string{}
	}
	return c.Status(http.StatusOK).JSON(LocationsResponse{Locations: locations})
}
