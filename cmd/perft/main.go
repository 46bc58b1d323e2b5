// Command perft counts move-tree leaves from a position, for checking the
// move generator against published figures.
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/benbeisheim/chessbot-backend/internal/engine"
	"golang.org/x/exp/maps"
)

func main() {
	fen := flag.String("fen", engine.StartFEN, "FEN string (defaults to initial position)")
	depth := flag.Int("depth", 0, "Perft depth (required)")
	divide := flag.Bool("divide", false, "Print per-move node counts at root")
	flag.Parse()

	if *depth <= 0 {
		fmt.Fprintln(os.Stderr, "-depth must be > 0")
		os.Exit(2)
	}

	pos, err := engine.ParseFEN(*fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ParseFEN error: %v\n", err)
		os.Exit(2)
	}

	if *divide {
		div := pos.PerftDivide(*depth)
		keys := maps.Keys(div)
		sort.Strings(keys)
		var sum uint64
		for _, k := range keys {
			fmt.Printf("%s: %d\n", k, div[k])
			sum += div[k]
		}
		fmt.Printf("Total: %d\n", sum)
		return
	}

	start := time.Now()
	nodes := pos.Perft(*depth)
	elapsed := time.Since(start)
	nps := float64(nodes) / elapsed.Seconds()
	fmt.Printf("depth %d: %d nodes in %s (%.0f nps)\n", *depth, nodes, elapsed.Round(time.Millisecond), nps)
}
