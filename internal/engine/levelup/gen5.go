package levelup

import (
	"github.com/KirkDiggler/rpg-legality/internal/entities/game"
	"github.com/KirkDiggler/rpg-legality/internal/learnset"
)

// gen5 resolves Black/White and Black 2/White 2. The Black/White table lacks
// the Kyurem form movepools, so the wildcard never answers Kyurem from it.
type gen5 struct {
	bw   learnset.Lookup
	b2w2 learnset.Lookup
}

func newGen5(reg *learnset.Registry) gen5 {
	return gen5{
		bw:   lookup(reg, game.BW, game.BW),
		b2w2: lookup(reg, game.B2W2, game.B2W2),
	}
}

func (g gen5) isLevelUp(q Query) learnset.Result {
	switch q.Version {
	case game.Any:
		first := g.bw.QueryLevelUp(q.Species, q.Form, q.Move, q.Level, 0)
		if first.IsLevelUp && q.Species != game.Kyurem {
			return first
		}
		return g.b2w2.QueryLevelUp(q.Species, q.Form, q.Move, q.Level, 0)
	case game.B, game.W, game.BW:
		return g.bw.QueryLevelUp(q.Species, q.Form, q.Move, q.Level, 0)
	case game.B2, game.W2, game.B2W2:
		return g.b2w2.QueryLevelUp(q.Species, q.Form, q.Move, q.Level, 0)
	}
	return learnset.None
}

func (g gen5) levelUpMoves(q Query) []int {
	var moves []int
	switch q.Version {
	case game.Any:
		if q.Species != game.Kyurem {
			moves = g.bw.AddMoves(moves, q.Species, q.Form, q.Level, 0)
		}
		moves = g.b2w2.AddMoves(moves, q.Species, q.Form, q.Level, 0)
	case game.B, game.W, game.BW:
		moves = g.bw.AddMoves(moves, q.Species, q.Form, q.Level, 0)
	case game.B2, game.W2, game.B2W2:
		moves = g.b2w2.AddMoves(moves, q.Species, q.Form, q.Level, 0)
	}
	return moves
}
