package model

type ClientPlayer struct {
	ID        string `json:"name"`
	Color     string `json:"color"`
	Computer  bool   `json:"computer"`
	ElapsedMs int64  `json:"elapsedMs"`
}

type PlayerColor string

const (
	PlayerColorWhite PlayerColor = "white"
	PlayerColorBlack PlayerColor = "black"
)

// ComputerID is the seat name of the engine in single-player games.
const ComputerID = "computer"
