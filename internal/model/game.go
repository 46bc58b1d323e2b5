package model

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/benbeisheim/chessbot-backend/internal/engine"
	"github.com/benbeisheim/chessbot-backend/internal/pgn"
	"github.com/benbeisheim/chessbot-backend/internal/ws"
	"golang.org/x/exp/slices"
)

type Mode string

const (
	// ModeSingle pits one human against the engine.
	ModeSingle Mode = "single"
	// ModeTwo is two humans, on one device or two.
	ModeTwo Mode = "two"
)

// DefaultDepth is the search depth used when Options leaves it unset.
const DefaultDepth = 3

// ParseMode accepts "single" and "two". An empty string means single.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "":
		return ModeSingle, nil
	case ModeSingle, ModeTwo:
		return Mode(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidMode, s)
}

type Options struct {
	Mode          Mode
	ComputerColor engine.Color
	Depth         int
	ComputerDelay time.Duration
	// Seed fixes the computer's choice among equally scored moves. Zero
	// uses the global random source.
	Seed int64
}

// DefaultOptions is a single-player game with the computer on black at
// DefaultDepth.
func DefaultOptions() Options {
	return Options{
		Mode:          ModeSingle,
		ComputerColor: engine.Black,
		Depth:         DefaultDepth,
	}
}

var promotionChoices = []engine.PieceKind{engine.Queen, engine.Rook, engine.Bishop, engine.Knight}

// Conn is the part of a websocket connection a game writes to.
type Conn interface {
	WriteJSON(v interface{}) error
	Close() error
}

// The connections for a specific game
type GameConnections struct {
	connections map[string]Conn // playerID -> connection
	mu          sync.Mutex      // also serializes writes
}

// The Game struct focuses on a single game's state and its observers
type Game struct {
	ID        string
	CreatedAt time.Time

	mu      sync.Mutex
	opts    Options
	pos     *engine.Position
	players [2]ClientPlayer
	clocks  [2]*Clock

	// thinking is set while a computer reply is pending. generation bumps on
	// undo and reset so a reply computed for an older position is dropped.
	thinking   bool
	generation int
	searches   int64
	// lastActive is the time of the last move, seat or socket change.
	lastActive time.Time

	connections *GameConnections
}

type Players struct {
	White ClientPlayer `json:"white"`
	Black ClientPlayer `json:"black"`
}

type GameState struct {
	ID              string         `json:"id"`
	Mode            Mode           `json:"mode"`
	Sound           string         `json:"sound"`
	Board           *BoardState    `json:"boardState"`
	ToMove          string         `json:"toMove"`
	MoveHistory     []Move         `json:"moveHistory"`
	CapturedPieces  CapturedPieces `json:"capturedPieces"`
	IsCheck         bool           `json:"isCheck"`
	Status          string         `json:"status"`
	EnPassantTarget *Position      `json:"enPassantTarget"`
	Resolve         *string        `json:"resolve"`
	Winner          *string        `json:"winner"`
	Players         Players        `json:"players"`
	LastMove        *SimpleMove    `json:"lastMove"`
	FEN             string         `json:"fen"`
	Thinking        bool           `json:"thinking"`
}

// CapturedPieces lists, per color, the pieces that side has taken.
type CapturedPieces struct {
	White []Piece `json:"white"`
	Black []Piece `json:"black"`
}

// GameSummary is the listing view of a game.
type GameSummary struct {
	ID        string    `json:"id"`
	Mode      Mode      `json:"mode"`
	Plies     int       `json:"plies"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

func NewGame(id string, opts Options) *Game {
	if opts.Mode == "" {
		opts.Mode = ModeSingle
	}
	if opts.Depth < 1 {
		opts.Depth = DefaultDepth
	}
	g := &Game{
		ID:          id,
		CreatedAt:   time.Now(),
		opts:        opts,
		pos:         engine.NewPosition(),
		clocks:      [2]*Clock{NewClock(), NewClock()},
		connections: NewGameConnections(),
	}
	g.lastActive = g.CreatedAt
	g.players[engine.White] = ClientPlayer{Color: engine.White.String()}
	g.players[engine.Black] = ClientPlayer{Color: engine.Black.String()}
	if opts.Mode == ModeSingle {
		g.players[opts.ComputerColor].ID = ComputerID
		g.players[opts.ComputerColor].Computer = true
	}
	g.clocks[engine.White].Start()
	return g
}

func NewGameConnections() *GameConnections {
	return &GameConnections{
		connections: make(map[string]Conn),
	}
}

func (g *Game) Options() Options {
	return g.opts
}

// Start lets the computer open the game when it plays white.
func (g *Game) Start() {
	g.mu.Lock()
	reply := g.pendingReply()
	g.mu.Unlock()
	reply()
}

func (g *Game) AddPlayer(playerID string) (PlayerColor, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	for c := engine.White; c <= engine.Black; c++ {
		if p := g.players[c]; !p.Computer && p.ID == playerID {
			return PlayerColor(c.String()), nil
		}
	}
	for c := engine.White; c <= engine.Black; c++ {
		if g.players[c].ID == "" {
			g.players[c].ID = playerID
			g.lastActive = time.Now()
			return PlayerColor(c.String()), nil
		}
	}
	return "", ErrGameFull
}

func (g *Game) GetState() GameState {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.state()
}

func (g *Game) Summary() GameSummary {
	g.mu.Lock()
	defer g.mu.Unlock()

	return GameSummary{
		ID:        g.ID,
		Mode:      g.opts.Mode,
		Plies:     g.pos.Plies(),
		Status:    g.pos.Status().String(),
		CreatedAt: g.CreatedAt,
	}
}

func (g *Game) IsPlayerInGame(playerID string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.isPlayerInGame(playerID)
}

func (g *Game) isPlayerInGame(playerID string) bool {
	if playerID == "" {
		return false
	}
	for _, p := range g.players {
		if !p.Computer && p.ID == playerID {
			return true
		}
	}
	return false
}

func (g *Game) CanSpectate() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.canSpectate()
}

func (g *Game) canSpectate() bool {
	return g.players[engine.White].ID == "" || g.players[engine.Black].ID == ""
}

// MakeMove validates mv against the legal moves of the side to move and
// commits it. In single mode the computer's reply follows, immediately or
// after the configured delay.
func (g *Game) MakeMove(playerID string, mv WSMove) error {
	g.mu.Lock()
	m, err := g.resolveMove(playerID, mv)
	if err != nil {
		g.mu.Unlock()
		return err
	}
	g.commit(m)
	reply := g.pendingReply()
	g.mu.Unlock()

	g.broadcastState()
	reply()
	return nil
}

func (g *Game) resolveMove(playerID string, mv WSMove) (engine.Move, error) {
	if g.pos.Status().Over() {
		return engine.Move{}, ErrGameOver
	}
	if err := g.checkTurn(playerID); err != nil {
		return engine.Move{}, err
	}
	if !mv.From.valid() || !mv.To.valid() {
		return engine.Move{}, fmt.Errorf("%w: move out of bounds", engine.ErrInvalidSquare)
	}

	promo := engine.Queen
	if mv.Promotion != "" {
		k, ok := mv.Promotion.kind()
		if !ok || !slices.Contains(promotionChoices, k) {
			return engine.Move{}, fmt.Errorf("%w: cannot promote to %q", engine.ErrIllegalMove, mv.Promotion)
		}
		promo = k
	}

	to := mv.To.square()
	moves := g.pos.LegalMovesFor(mv.From.square())
	i := slices.IndexFunc(moves, func(m engine.Move) bool {
		return m.To == to && (m.Kind != engine.Promotion || m.Promotion == promo)
	})
	if i < 0 {
		return engine.Move{}, fmt.Errorf("%w: %s%s", engine.ErrIllegalMove, mv.From, mv.To)
	}
	return moves[i], nil
}

func (g *Game) checkTurn(playerID string) error {
	seat := g.players[g.pos.SideToMove()]
	switch {
	case seat.Computer:
		return ErrNotYourTurn
	case seat.ID == playerID:
		return nil
	case !g.isPlayerInGame(playerID):
		return ErrNotInGame
	case seat.ID == "":
		// hotseat until the second player takes the seat
		return nil
	}
	return ErrNotYourTurn
}

func (g *Game) commit(m engine.Move) {
	g.clocks[g.pos.SideToMove()].Stop()
	g.pos.Apply(m)
	g.lastActive = time.Now()
	if !g.pos.Status().Over() {
		g.clocks[g.pos.SideToMove()].Start()
	}
}

// pendingReply prepares the computer's move when it is the computer's turn.
// The returned func must be called after g.mu is released.
func (g *Game) pendingReply() func() {
	c := g.pos.SideToMove()
	if !g.players[c].Computer || g.thinking || g.pos.Status().Over() {
		return func() {}
	}
	g.thinking = true
	gen, pos, depth, searcher := g.generation, g.pos.Clone(), g.opts.Depth, g.newSearcher()
	run := func() { g.playComputerMove(gen, pos, c, depth, searcher) }
	if g.opts.ComputerDelay <= 0 {
		return run
	}
	delay := g.opts.ComputerDelay
	return func() { time.AfterFunc(delay, run) }
}

func (g *Game) newSearcher() *engine.Searcher {
	g.searches++
	if g.opts.Seed == 0 {
		return &engine.Searcher{}
	}
	return engine.NewSearcher(g.opts.Seed + g.searches)
}

// playComputerMove searches a private copy of the position so state reads
// are not blocked, then commits the result if nothing changed meanwhile.
func (g *Game) playComputerMove(gen int, pos *engine.Position, c engine.Color, depth int, s *engine.Searcher) {
	m, ok := s.BestMove(pos, c, depth)

	g.mu.Lock()
	if gen != g.generation {
		g.mu.Unlock()
		return
	}
	g.thinking = false
	if ok {
		g.commit(m)
	}
	g.mu.Unlock()

	if ok {
		g.broadcastState()
	}
}

// Undo takes back the last move. In single mode it takes back moves until
// the human's last move is gone, so a pending or played computer reply is
// removed with it.
func (g *Game) Undo(playerID string) error {
	g.mu.Lock()
	if err := g.undo(playerID); err != nil {
		g.mu.Unlock()
		return err
	}
	reply := g.pendingReply()
	g.mu.Unlock()

	g.broadcastState()
	reply()
	return nil
}

func (g *Game) undo(playerID string) error {
	if !g.isPlayerInGame(playerID) {
		return ErrNotInGame
	}
	played := g.pos.Played()
	human := g.opts.ComputerColor.Opposite()
	if g.opts.Mode == ModeSingle {
		if !slices.ContainsFunc(played, func(pm engine.PlayedMove) bool { return pm.Color == human }) {
			return engine.ErrNoHistory
		}
	}
	if len(played) == 0 {
		return engine.ErrNoHistory
	}

	g.generation++
	g.thinking = false
	g.clocks[g.pos.SideToMove()].Stop()
	for i := len(played) - 1; i >= 0; i-- {
		if err := g.pos.Undo(); err != nil {
			return err
		}
		if g.opts.Mode != ModeSingle || played[i].Color == human {
			break
		}
	}
	g.clocks[g.pos.SideToMove()].Start()
	g.lastActive = time.Now()
	return nil
}

// Reset puts the pieces back on their starting squares and clears both
// clocks. Seats are kept.
func (g *Game) Reset(playerID string) error {
	g.mu.Lock()
	if !g.isPlayerInGame(playerID) {
		g.mu.Unlock()
		return ErrNotInGame
	}
	g.generation++
	g.thinking = false
	g.pos.Reset()
	for _, c := range g.clocks {
		c.Reset()
	}
	g.clocks[engine.White].Start()
	g.lastActive = time.Now()
	reply := g.pendingReply()
	g.mu.Unlock()

	g.broadcastState()
	reply()
	return nil
}

// LegalMoves lists the legal moves of the piece on from. Pieces of the side
// not to move have none.
func (g *Game) LegalMoves(from Position) ([]SimpleMove, error) {
	if !from.valid() {
		return nil, fmt.Errorf("%w: (%d,%d)", engine.ErrInvalidSquare, from.X, from.Y)
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	moves := g.pos.LegalMovesFor(from.square())
	out := make([]SimpleMove, 0, len(moves))
	for _, m := range moves {
		out = append(out, simpleMove(m))
	}
	return out, nil
}

// Hint suggests a move for the side to move. ok is false once the game is
// over.
func (g *Game) Hint() (SimpleMove, bool) {
	g.mu.Lock()
	pos, c, depth, searcher := g.pos.Clone(), g.pos.SideToMove(), g.opts.Depth, g.newSearcher()
	g.mu.Unlock()

	m, ok := searcher.BestMove(pos, c, depth)
	if !ok {
		return SimpleMove{}, false
	}
	return simpleMove(m), true
}

// PGN exports the moves played so far.
func (g *Game) PGN() (string, error) {
	g.mu.Lock()
	played := g.pos.Played()
	tags := map[string]string{
		"Event": "chessbot game",
		"Site":  "chessbot",
		"Date":  g.CreatedAt.Format("2006.01.02"),
		"White": g.seatName(engine.White),
		"Black": g.seatName(engine.Black),
		"Mode":  string(g.opts.Mode),
	}
	g.mu.Unlock()

	moves := make([]string, 0, len(played))
	for _, pm := range played {
		moves = append(moves, pm.Move.UCI())
	}
	return pgn.Export(moves, tags)
}

func (g *Game) seatName(c engine.Color) string {
	if id := g.players[c].ID; id != "" {
		return id
	}
	return "?"
}

func (g *Game) state() GameState {
	played := g.pos.Played()
	status := g.pos.Status()
	st := GameState{
		ID:             g.ID,
		Mode:           g.opts.Mode,
		Board:          newBoardState(g.pos),
		ToMove:         g.pos.SideToMove().String(),
		MoveHistory:    moveHistory(played),
		CapturedPieces: capturedPieces(played),
		IsCheck:        status == engine.Check || status == engine.Checkmate,
		Status:         status.String(),
		Players: Players{
			White: g.clientPlayer(engine.White),
			Black: g.clientPlayer(engine.Black),
		},
		FEN:      g.pos.FEN(),
		Thinking: g.thinking,
	}
	if n := len(played); n > 0 {
		last := simpleMove(played[n-1].Move)
		st.LastMove = &last
		st.Sound = sound(played[n-1].Move, status)
	}
	if ep, ok := g.pos.EnPassantTarget(); ok {
		p := positionOf(ep)
		st.EnPassantTarget = &p
	}
	if status.Over() {
		resolve := status.String()
		st.Resolve = &resolve
	}
	if status == engine.Checkmate {
		winner := g.pos.SideToMove().Opposite().String()
		st.Winner = &winner
	}
	return st
}

func (g *Game) clientPlayer(c engine.Color) ClientPlayer {
	p := g.players[c]
	p.ElapsedMs = g.clocks[c].Elapsed().Milliseconds()
	return p
}

func capturedPieces(played []engine.PlayedMove) CapturedPieces {
	captured := CapturedPieces{White: make([]Piece, 0), Black: make([]Piece, 0)}
	for _, pm := range played {
		if !pm.Move.IsCapture() {
			continue
		}
		p := *pieceView(pm.Move.Captured, pm.Move.CaptureSquare())
		if pm.Color == engine.White {
			captured.White = append(captured.White, p)
		} else {
			captured.Black = append(captured.Black, p)
		}
	}
	return captured
}

// sound names the effect the client plays for the last move.
func sound(m engine.Move, status engine.Status) string {
	switch {
	case status == engine.Check || status == engine.Checkmate:
		return "check"
	case m.Kind == engine.Castle:
		return "castle"
	case m.Kind == engine.Promotion:
		return "promote"
	case m.IsCapture():
		return "capture"
	}
	return "move"
}

// RegisterConnection attaches a websocket to the game and sends it the
// current state. A player reconnecting replaces their previous socket.
func (g *Game) RegisterConnection(playerID string, conn Conn) error {
	g.mu.Lock()
	isAuthorized := g.isPlayerInGame(playerID) || g.canSpectate()
	if isAuthorized {
		g.lastActive = time.Now()
	}
	g.mu.Unlock()

	if !isAuthorized {
		return fmt.Errorf("%w: not authorized to join this game", ErrNotInGame)
	}

	g.connections.mu.Lock()
	if old, exists := g.connections.connections[playerID]; exists && old != conn {
		log.Printf("game %s: replacing connection for player %s", g.ID, playerID)
		old.Close()
	}
	g.connections.connections[playerID] = conn
	g.connections.mu.Unlock()

	msg, err := ws.NewMessage(ws.MessageTypeGameState, g.GetState())
	if err != nil {
		return err
	}
	return g.SendTo(playerID, msg)
}

// UnregisterConnection drops conn if it is still the player's current socket.
func (g *Game) UnregisterConnection(playerID string, conn Conn) {
	g.connections.mu.Lock()
	current, exists := g.connections.connections[playerID]
	if exists && current == conn {
		delete(g.connections.connections, playerID)
	}
	g.connections.mu.Unlock()

	g.mu.Lock()
	g.lastActive = time.Now()
	g.mu.Unlock()
}

// Abandoned reports whether the game has no socket attached, no computer
// reply pending, and nothing has happened in it for idle.
func (g *Game) Abandoned(now time.Time, idle time.Duration) bool {
	g.mu.Lock()
	quiet := !g.thinking && now.Sub(g.lastActive) >= idle
	g.mu.Unlock()
	if !quiet {
		return false
	}

	g.connections.mu.Lock()
	defer g.connections.mu.Unlock()
	return len(g.connections.connections) == 0
}

// SendTo writes msg to one player's socket.
func (g *Game) SendTo(playerID string, msg ws.Message) error {
	g.connections.mu.Lock()
	defer g.connections.mu.Unlock()

	conn, ok := g.connections.connections[playerID]
	if !ok {
		return fmt.Errorf("no connection for player %s", playerID)
	}
	if err := conn.WriteJSON(msg); err != nil {
		delete(g.connections.connections, playerID)
		return err
	}
	return nil
}

func (g *Game) broadcastState() {
	msg, err := ws.NewMessage(ws.MessageTypeGameState, g.GetState())
	if err != nil {
		log.Printf("game %s: failed to marshal state: %v", g.ID, err)
		return
	}

	g.connections.mu.Lock()
	defer g.connections.mu.Unlock()
	for playerID, conn := range g.connections.connections {
		if err := conn.WriteJSON(msg); err != nil {
			log.Printf("game %s: failed to send state to player %s: %v", g.ID, playerID, err)
			delete(g.connections.connections, playerID)
		}
	}
}
