package controller

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/benbeisheim/chessbot-backend/internal/middleware"
	"github.com/benbeisheim/chessbot-backend/internal/model"
	"github.com/benbeisheim/chessbot-backend/internal/service"
	"github.com/benbeisheim/chessbot-backend/internal/ws"
	"github.com/gofiber/websocket/v2"
)

type WebSocketController struct {
	gameService *service.GameService
}

func NewWebSocketController(gameService *service.GameService) *WebSocketController {
	return &WebSocketController{
		gameService: gameService,
	}
}

type selectPayload struct {
	Square model.Position `json:"square"`
}

type legalMovesPayload struct {
	From  model.Position     `json:"from"`
	Moves []model.SimpleMove `json:"moves"`
}

type hintPayload struct {
	Move *model.SimpleMove `json:"move"`
}

// HandleConnection is called when a new WebSocket connection is established
func (wsc *WebSocketController) HandleConnection(c *websocket.Conn) {
	gameID, _ := c.Locals(middleware.LocalGameID).(string)
	playerID, _ := c.Locals(middleware.LocalPlayerID).(string)

	// Register this connection with the game
	if err := wsc.gameService.RegisterConnection(gameID, playerID, c); err != nil {
		log.Printf("Failed to register connection: %v", err)
		c.WriteJSON(ws.ErrorMessage(err.Error()))
		c.Close()
		return
	}
	defer wsc.gameService.UnregisterConnection(gameID, playerID, c)

	for {
		messageType, message, err := c.ReadMessage()
		if err != nil {
			log.Printf("read error: %v", err)
			return
		}
		if messageType != websocket.TextMessage {
			continue
		}

		var msg ws.Message
		if err := json.Unmarshal(message, &msg); err != nil {
			log.Printf("parse error: %v", err)
			wsc.sendError(gameID, playerID, "malformed message")
			continue
		}

		if err := wsc.handleMessage(gameID, playerID, msg); err != nil {
			log.Printf("handle error: %v", err)
			wsc.sendError(gameID, playerID, err.Error())
		}
	}
}

// Handle different types of incoming messages
func (wsc *WebSocketController) handleMessage(gameID, playerID string, msg ws.Message) error {
	switch msg.Type {
	case ws.MessageTypeMove:
		var move model.WSMove
		if err := json.Unmarshal(msg.Payload, &move); err != nil {
			return fmt.Errorf("invalid move: %w", err)
		}
		return wsc.gameService.HandleMove(gameID, playerID, move)

	case ws.MessageTypeUndo:
		return wsc.gameService.Undo(gameID, playerID)

	case ws.MessageTypeReset:
		return wsc.gameService.Reset(gameID, playerID)

	case ws.MessageTypeSelect:
		var sel selectPayload
		if err := json.Unmarshal(msg.Payload, &sel); err != nil {
			return fmt.Errorf("invalid selection: %w", err)
		}
		moves, err := wsc.gameService.LegalMoves(gameID, sel.Square)
		if err != nil {
			return err
		}
		return wsc.reply(gameID, playerID, ws.MessageTypeLegalMoves, legalMovesPayload{From: sel.Square, Moves: moves})

	case ws.MessageTypeHint:
		hint, err := wsc.gameService.Hint(gameID)
		if err != nil {
			return err
		}
		return wsc.reply(gameID, playerID, ws.MessageTypeHint, hintPayload{Move: hint})

	case ws.MessageTypeGameState:
		state, err := wsc.gameService.GetGameState(gameID)
		if err != nil {
			return err
		}
		return wsc.reply(gameID, playerID, ws.MessageTypeGameState, state)

	default:
		return fmt.Errorf("unknown message type: %s", msg.Type)
	}
}

func (wsc *WebSocketController) reply(gameID, playerID string, t ws.MessageType, payload any) error {
	msg, err := ws.NewMessage(t, payload)
	if err != nil {
		return err
	}
	return wsc.gameService.SendTo(gameID, playerID, msg)
}

// Helper method to send error messages
func (wsc *WebSocketController) sendError(gameID, playerID, errorMsg string) {
	if err := wsc.gameService.SendTo(gameID, playerID, ws.ErrorMessage(errorMsg)); err != nil {
		log.Printf("failed to send error to player %s: %v", playerID, err)
	}
}
