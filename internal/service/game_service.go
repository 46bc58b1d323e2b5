package service

import (
	"fmt"
	"log"

	"github.com/benbeisheim/chessbot-backend/internal/engine"
	"github.com/benbeisheim/chessbot-backend/internal/model"
	"github.com/benbeisheim/chessbot-backend/internal/ws"
	"github.com/google/uuid"
)

type GameService struct {
	gameManager *GameManager
	defaults    model.Options
	maxDepth    int
}

// NewGameService creates games with defaults unless a request overrides
// them. Requested search depths are capped at maxDepth.
func NewGameService(gameManager *GameManager, defaults model.Options, maxDepth int) *GameService {
	return &GameService{
		gameManager: gameManager,
		defaults:    defaults,
		maxDepth:    maxDepth,
	}
}

// CreateRequest is what a client may choose when opening a game.
type CreateRequest struct {
	Mode          string `json:"mode"`
	ComputerColor string `json:"computerColor"`
	Depth         int    `json:"depth"`
}

// CreateGame opens a new game and seats the creator.
func (gs *GameService) CreateGame(playerID string, req CreateRequest) (string, model.PlayerColor, error) {
	opts, err := gs.options(req)
	if err != nil {
		return "", "", err
	}

	gameID := uuid.New().String()
	game, err := gs.gameManager.CreateGame(gameID, opts)
	if err != nil {
		return "", "", fmt.Errorf("failed to create game: %w", err)
	}
	color, err := game.AddPlayer(playerID)
	if err != nil {
		return "", "", err
	}
	game.Start()
	return gameID, color, nil
}

func (gs *GameService) options(req CreateRequest) (model.Options, error) {
	opts := gs.defaults
	mode, err := model.ParseMode(req.Mode)
	if err != nil {
		return opts, err
	}
	opts.Mode = mode
	if req.ComputerColor != "" {
		c, ok := engine.ParseColor(req.ComputerColor)
		if !ok {
			return opts, fmt.Errorf("%w: computer color %q", model.ErrInvalidMode, req.ComputerColor)
		}
		opts.ComputerColor = c
	}
	if req.Depth > 0 {
		opts.Depth = req.Depth
	}
	if gs.maxDepth > 0 && opts.Depth > gs.maxDepth {
		opts.Depth = gs.maxDepth
	}
	return opts, nil
}

func (gs *GameService) JoinGame(gameID string, playerID string) (model.PlayerColor, error) {
	game, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return "", err
	}
	return game.AddPlayer(playerID)
}

func (gs *GameService) ListGames() []model.GameSummary {
	return gs.gameManager.ListGames()
}

func (gs *GameService) GetGameState(gameID string) (model.GameState, error) {
	game, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return model.GameState{}, err
	}
	return game.GetState(), nil
}

func (gs *GameService) HandleMove(gameID string, playerID string, move model.WSMove) error {
	game, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return err
	}
	return game.MakeMove(playerID, move)
}

func (gs *GameService) Undo(gameID string, playerID string) error {
	game, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return err
	}
	return game.Undo(playerID)
}

func (gs *GameService) Reset(gameID string, playerID string) error {
	game, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return err
	}
	return game.Reset(playerID)
}

func (gs *GameService) LegalMoves(gameID string, from model.Position) ([]model.SimpleMove, error) {
	game, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return nil, err
	}
	return game.LegalMoves(from)
}

// Hint returns nil when the side to move has no legal move.
func (gs *GameService) Hint(gameID string) (*model.SimpleMove, error) {
	game, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return nil, err
	}
	if m, ok := game.Hint(); ok {
		return &m, nil
	}
	return nil, nil
}

func (gs *GameService) PGN(gameID string) (string, error) {
	game, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return "", err
	}
	return game.PGN()
}

func (gs *GameService) RegisterConnection(gameID string, playerID string, conn model.Conn) error {
	game, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return err
	}
	log.Printf("player %s connected to game %s", playerID, gameID)
	return game.RegisterConnection(playerID, conn)
}

func (gs *GameService) UnregisterConnection(gameID string, playerID string, conn model.Conn) {
	game, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return
	}
	log.Printf("player %s disconnected from game %s", playerID, gameID)
	game.UnregisterConnection(playerID, conn)
}

// SendTo writes a message to one player's socket in a game.
func (gs *GameService) SendTo(gameID string, playerID string, msg ws.Message) error {
	game, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return err
	}
	return game.SendTo(playerID, msg)
}
