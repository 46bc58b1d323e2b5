package controller

import (
	"github.com/benbeisheim/chessbot-backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// SetupRoutes mounts the REST API under /api and the game socket under /ws.
func SetupRoutes(app *fiber.App, gameController *GameController, wsController *WebSocketController, wsConfig websocket.Config) {
	// Set up WebSocket routes
	app.Use("/ws/*", middleware.EnsurePlayerID())
	app.Get("/ws/game/:gameId", middleware.WebSocketUpgrade(), websocket.New(wsController.HandleConnection, wsConfig))

	// Set up REST routes
	api := app.Group("/api", middleware.EnsurePlayerID())
	api.Get("/games", gameController.ListGames)

	// Game routes
	gameRoutes := api.Group("/game")
	gameRoutes.Post("/create", gameController.CreateGame)
	gameRoutes.Post("/join/:gameId", gameController.JoinGame)
	gameRoutes.Get("/:gameId", gameController.GetGameState)
	gameRoutes.Get("/:gameId/moves/:square", gameController.LegalMoves)
	gameRoutes.Post("/:gameId/move", gameController.MakeMove)
	gameRoutes.Post("/:gameId/undo", gameController.Undo)
	gameRoutes.Post("/:gameId/reset", gameController.Reset)
	gameRoutes.Get("/:gameId/hint", gameController.Hint)
	gameRoutes.Get("/:gameId/pgn", gameController.PGN)
}
