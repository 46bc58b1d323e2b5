package controller

import (
	"github.com/benbeisheim/chessbot-backend/internal/middleware"
	"github.com/benbeisheim/chessbot-backend/internal/model"
	"github.com/benbeisheim/chessbot-backend/internal/service"
	"github.com/gofiber/fiber/v2"
)

type GameController struct {
	gameService *service.GameService
}

func NewGameController(gameService *service.GameService) *GameController {
	return &GameController{gameService: gameService}
}

func (gc *GameController) CreateGame(c *fiber.Ctx) error {
	var req service.CreateRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid request body",
			})
		}
	}

	gameID, color, err := gc.gameService.CreateGame(middleware.PlayerID(c), req)
	if err != nil {
		return sendErr(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Game created",
		"game_id": gameID,
		"color":   color,
	})
}

func (gc *GameController) JoinGame(c *fiber.Ctx) error {
	gameID := c.Params("gameId")

	color, err := gc.gameService.JoinGame(gameID, middleware.PlayerID(c))
	if err != nil {
		return sendErr(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Game joined",
		"color":   color,
	})
}

func (gc *GameController) ListGames(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"games": gc.gameService.ListGames(),
	})
}

func (gc *GameController) GetGameState(c *fiber.Ctx) error {
	gameState, err := gc.gameService.GetGameState(c.Params("gameId"))
	if err != nil {
		return sendErr(c, err)
	}

	return c.JSON(gameState)
}

func (gc *GameController) LegalMoves(c *fiber.Ctx) error {
	from, err := model.ParsePosition(c.Params("square"))
	if err != nil {
		return sendErr(c, err)
	}
	moves, err := gc.gameService.LegalMoves(c.Params("gameId"), from)
	if err != nil {
		return sendErr(c, err)
	}
	return c.JSON(fiber.Map{
		"from":  from,
		"moves": moves,
	})
}

func (gc *GameController) MakeMove(c *fiber.Ctx) error {
	var move model.WSMove
	if err := c.BodyParser(&move); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid move: " + err.Error(),
		})
	}
	return gc.afterAction(c, gc.gameService.HandleMove(c.Params("gameId"), middleware.PlayerID(c), move))
}

func (gc *GameController) Undo(c *fiber.Ctx) error {
	return gc.afterAction(c, gc.gameService.Undo(c.Params("gameId"), middleware.PlayerID(c)))
}

func (gc *GameController) Reset(c *fiber.Ctx) error {
	return gc.afterAction(c, gc.gameService.Reset(c.Params("gameId"), middleware.PlayerID(c)))
}

// afterAction answers a state-changing request with the new state.
func (gc *GameController) afterAction(c *fiber.Ctx, err error) error {
	if err != nil {
		return sendErr(c, err)
	}
	return gc.GetGameState(c)
}

func (gc *GameController) Hint(c *fiber.Ctx) error {
	hint, err := gc.gameService.Hint(c.Params("gameId"))
	if err != nil {
		return sendErr(c, err)
	}
	return c.JSON(fiber.Map{
		"move": hint,
	})
}

func (gc *GameController) PGN(c *fiber.Ctx) error {
	out, err := gc.gameService.PGN(c.Params("gameId"))
	if err != nil {
		return sendErr(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/x-chess-pgn")
	return c.SendString(out)
}
