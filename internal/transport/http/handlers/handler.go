// Package handlers wires HTTP delivery of the mock collaborator API.
package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Service is what the handlers need from the mock API.
type Service interface {
	Locations(ctx context.Context) ([]string, error)
	CheckName(ctx context.Context, name, clientKey string) (bool, error)
}

// Handler serves the mock API endpoints.
type Handler struct {
	log *zap.SugaredLogger
	svc Service
}

// NewHandler constructs the HTTP handlers with service dependencies.
func NewHandler(log *zap.SugaredLogger, svc Service) *Handler {
	return &Handler{
		log: log,
		svc: svc,
	}
}

// Register mounts the API routes on router.
func (h *Handler) Register(router fiber.Router) {
	api := router.Group("/api")
	api.Get("/locations", h.GetLocations)
	api.Get("/names/validity", h.GetNameValidity)
}
