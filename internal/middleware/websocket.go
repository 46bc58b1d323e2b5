package middleware

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/gofiber/websocket/v2"
)

// WebSocketUpgrade admits only websocket handshakes on a game socket route.
// It runs after EnsurePlayerID and adds a copy of the :gameId parameter to
// the locals, which the upgraded connection keeps.
func WebSocketUpgrade() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}

		gameID := c.Params("gameId")
		if gameID == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "game ID is required",
			})
		}
		playerID := PlayerID(c)
		if playerID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "player ID is required",
			})
		}

		gameID = utils.CopyString(gameID)
		c.Locals(LocalGameID, gameID)
		log.Printf("game %s: socket upgrade for player %s", gameID, playerID)
		return c.Next()
	}
}
