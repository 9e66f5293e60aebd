package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// NameValidityResponse is the body of GET /api/names/validity.
type NameValidityResponse struct {
	Name  string `json:"name"`
	Valid bool   `json:"valid"`
}

// GetNameValidity reports whether the name query parameter is available.
// Clients are rate limited by IP address.
func (h *Handler) GetNameValidity(c *fiber.Ctx) error {
	name := c.Query("name")

	valid, err := h.svc.CheckName(c.UserContext(), name, c.IP())
	if err != nil {
		h.log.Warnw("name check failed", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(NameValidityResponse{Name: name, Valid: valid})
}
