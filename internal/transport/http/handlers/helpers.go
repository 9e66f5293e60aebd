package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/vcrobe/userform/internal/mockapi"
)

// Error codes carried in error responses.
const (
	codeInvalidName = "INVALID_NAME"
	codeRateLimited = "RATE_LIMITED"
	codeTimeout     = "TIMEOUT"
	codeInternal    = "INTERNAL"
)

// ErrorResponse is the JSON body of every non-2xx answer.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody describes an error.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	code := codeInternal
	msg := "internal error"

	switch {
	case errors.Is(err, mockapi.ErrInvalidName):
		status = http.StatusBadRequest
		code = codeInvalidName
		msg = "name is required"
	case errors.Is(err, mockapi.ErrRateLimited):
		status = http.StatusTooManyRequests
		code = codeRateLimited
		msg = "too many name checks, slow down"
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		status = http.StatusGatewayTimeout
		code = codeTimeout
		msg = "request timed out"
	}

	return c.Status(status).JSON(ErrorResponse{Error: ErrorBody{Code: code, Message: msg}})
}
