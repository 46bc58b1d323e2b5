// Package pgn exports finished or running games as Portable Game Notation.
package pgn

import (
	"errors"
	"fmt"

	"github.com/notnil/chess"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

var ErrReplay = errors.New("pgn: move does not replay")

// roster is the seven tag roster, written first and in this order.
var roster = []string{"Event", "Site", "Date", "Round", "White", "Black", "Result"}

// Export replays moves (UCI, from the standard start) and renders the game
// with the given tags. The result tag is filled in from the final position
// unless tags already sets it.
func Export(moves []string, tags map[string]string) (string, error) {
	game := chess.NewGame()
	notation := chess.UCINotation{}
	for i, uci := range moves {
		m, err := notation.Decode(game.Position(), uci)
		if err != nil {
			return "", fmt.Errorf("%w: ply %d %q: %v", ErrReplay, i+1, uci, err)
		}
		if err := game.Move(m); err != nil {
			return "", fmt.Errorf("%w: ply %d %q: %v", ErrReplay, i+1, uci, err)
		}
	}

	for _, k := range orderedKeys(tags) {
		game.AddTagPair(k, tags[k])
	}
	if _, ok := tags["Result"]; !ok {
		game.AddTagPair("Result", string(game.Outcome()))
	}
	return game.String(), nil
}

func orderedKeys(tags map[string]string) []string {
	keys := make([]string, 0, len(tags))
	for _, k := range roster {
		if _, ok := tags[k]; ok {
			keys = append(keys, k)
		}
	}
	rest := maps.Keys(tags)
	slices.Sort(rest)
	for _, k := range rest {
		if !slices.Contains(roster, k) {
			keys = append(keys, k)
		}
	}
	return keys
}
