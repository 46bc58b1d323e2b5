// Command selfplay lets the engine play itself and prints the game as PGN.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/benbeisheim/chessbot-backend/internal/engine"
	"github.com/benbeisheim/chessbot-backend/internal/pgn"
)

func main() {
	depth := flag.Int("depth", 2, "Search depth per move")
	plies := flag.Int("plies", 200, "Stop after this many plies")
	seed := flag.Int64("seed", 0, "Random seed for tie-breaking (0 = time based)")
	fen := flag.String("fen", "", "Start from this FEN instead of the initial position (no PGN output)")
	flag.Parse()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	pos := engine.NewPosition()
	if *fen != "" {
		var err error
		if pos, err = engine.ParseFEN(*fen); err != nil {
			fmt.Fprintf(os.Stderr, "ParseFEN error: %v\n", err)
			os.Exit(2)
		}
	}

	s := engine.NewSearcher(*seed)
	for i := 0; i < *plies && !pos.Status().Over(); i++ {
		m, ok := s.BestMove(pos, pos.SideToMove(), *depth)
		if !ok {
			break
		}
		pos.Apply(m)
	}

	var ucis []string
	for i, pm := range pos.Played() {
		if pm.Color == engine.White {
			fmt.Printf("%d. ", i/2+1)
		}
		fmt.Printf("%s ", pm.SAN)
		ucis = append(ucis, pm.Move.UCI())
	}
	fmt.Println()
	fmt.Printf("status: %s, searched %d nodes, fen %s\n", pos.Status(), s.Nodes, pos.FEN())

	if *fen != "" {
		return
	}
	out, err := pgn.Export(ucis, map[string]string{
		"Event": "selfplay",
		"White": fmt.Sprintf("chessbot depth %d", *depth),
		"Black": fmt.Sprintf("chessbot depth %d", *depth),
		"Round": fmt.Sprint(*seed),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "pgn: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(out)
}
