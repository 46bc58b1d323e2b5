package controller

import (
	"errors"

	"github.com/benbeisheim/chessbot-backend/internal/engine"
	"github.com/benbeisheim/chessbot-backend/internal/model"
	"github.com/benbeisheim/chessbot-backend/internal/service"
	"github.com/gofiber/fiber/v2"
)

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrGameNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, model.ErrNotInGame):
		return fiber.StatusForbidden
	case errors.Is(err, model.ErrGameFull),
		errors.Is(err, model.ErrNotYourTurn),
		errors.Is(err, model.ErrGameOver),
		errors.Is(err, engine.ErrNoHistory):
		return fiber.StatusConflict
	case errors.Is(err, engine.ErrIllegalMove),
		errors.Is(err, engine.ErrInvalidSquare),
		errors.Is(err, model.ErrInvalidMode):
		return fiber.StatusBadRequest
	}
	return fiber.StatusInternalServerError
}

func sendErr(c *fiber.Ctx, err error) error {
	return c.Status(statusFor(err)).JSON(fiber.Map{
		"error": err.Error(),
	})
}
