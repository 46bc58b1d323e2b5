package ws

import (
	"encoding/json"
)

// MessageType represents the different kinds of messages our system can handle
type MessageType string

const (
	// client -> server
	MessageTypeMove   MessageType = "move"
	MessageTypeUndo   MessageType = "undo"
	MessageTypeReset  MessageType = "reset"
	MessageTypeSelect MessageType = "select"
	MessageTypeHint   MessageType = "hint"

	// server -> client
	MessageTypeGameState  MessageType = "gameState"
	MessageTypeLegalMoves MessageType = "legalMoves"
	MessageTypeError      MessageType = "error"
)

// Message represents a WebSocket message in our system
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// NewMessage marshals payload into a message of type t.
func NewMessage(t MessageType, payload any) (Message, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Message{}, err
	}
	return Message{Type: t, Payload: raw}, nil
}

// ErrorPayload is the body of an error message.
type ErrorPayload struct {
	Error string `json:"error"`
}

// ErrorMessage builds an error message. Marshalling a single string field
// cannot fail.
func ErrorMessage(text string) Message {
	msg, _ := NewMessage(MessageTypeError, ErrorPayload{Error: text})
	return msg
}
