package middleware

import (
	"github.com/benbeisheim/chessbot-backend/internal/model"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
)

// Locals keys shared with the controllers.
const (
	LocalPlayerID = "playerID"
	LocalGameID   = "gameID"
)

// PlayerID returns the id stored by EnsurePlayerID, or "".
func PlayerID(c *fiber.Ctx) string {
	id, _ := c.Locals(LocalPlayerID).(string)
	return id
}

// EnsurePlayerID reads the caller's identity from the X-Player-ID header or
// the playerId query parameter and stores a copy in the request locals.
// Fiber's header and query strings alias a buffer that is reused by the
// next request, and player ids outlive the request as seat and socket keys.
func EnsurePlayerID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if PlayerID(c) != "" {
			return c.Next()
		}

		playerID := c.Get("X-Player-ID")
		if playerID == "" {
			playerID = c.Query("playerId")
		}

		if playerID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Player ID is required. Please ensure client is properly initialized.",
			})
		}
		if playerID == model.ComputerID {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "player ID is reserved",
			})
		}

		c.Locals(LocalPlayerID, utils.CopyString(playerID))
		return c.Next()
	}
}
