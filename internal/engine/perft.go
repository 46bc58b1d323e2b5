package engine

// Perft counts the leaf nodes of the legal move tree depth plies deep.
func (p *Position) Perft(depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := p.LegalMoves(p.toMove)
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		restore := p.simulate(m)
		nodes += p.Perft(depth - 1)
		restore()
	}
	return nodes
}

// PerftDivide reports the node count below each root move, keyed by UCI.
func (p *Position) PerftDivide(depth int) map[string]uint64 {
	out := make(map[string]uint64)
	for _, m := range p.LegalMoves(p.toMove) {
		restore := p.simulate(m)
		out[m.UCI()] = p.Perft(depth - 1)
		restore()
	}
	return out
}
