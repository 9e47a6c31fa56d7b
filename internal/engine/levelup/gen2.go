package levelup

import (
	"github.com/KirkDiggler/rpg-legality/internal/entities/game"
	"github.com/KirkDiggler/rpg-legality/internal/learnset"
)

// gen2 resolves Gold/Silver and Crystal. Crystal was never released in
// Korean, so Korean records only consult Gold/Silver.
type gen2 struct {
	gs learnset.Lookup
	c  learnset.Lookup
}

func newGen2(reg *learnset.Registry) gen2 {
	return gen2{
		gs: lookup(reg, game.GS, game.GS),
		c:  lookup(reg, game.C, game.C),
	}
}

func (g gen2) isLevelUp(q Query) learnset.Result {
	if q.Move > game.MaxMoveID1 && q.NewGen2MovesDisallowed {
		return learnset.None
	}

	switch q.Version {
	case game.Any, game.GSC:
		first := g.gs.QueryLevelUp(q.Species, q.Form, q.Move, q.Level, q.MinLevelG2)
		if first.IsLevelUp || q.Korean {
			return first
		}
		return g.c.QueryLevelUp(q.Species, q.Form, q.Move, q.Level, q.MinLevelG2)
	case game.GD, game.SV, game.GS:
		return g.gs.QueryLevelUp(q.Species, q.Form, q.Move, q.Level, q.MinLevelG2)
	case game.C:
		if q.Korean {
			return learnset.None
		}
		return g.c.QueryLevelUp(q.Species, q.Form, q.Move, q.Level, q.MinLevelG2)
	}
	return learnset.None
}

func (g gen2) levelUpMoves(q Query) []int {
	var moves []int
	switch q.Version {
	case game.Any, game.GSC:
		moves = g.gs.AddMoves(moves, q.Species, q.Form, q.Level, q.MinLevelG2)
		if !q.Korean {
			moves = g.c.AddMoves(moves, q.Species, q.Form, q.Level, q.MinLevelG2)
		}
	case game.GD, game.SV, game.GS:
		moves = g.gs.AddMoves(moves, q.Species, q.Form, q.Level, q.MinLevelG2)
	case game.C:
		if !q.Korean {
			moves = g.c.AddMoves(moves, q.Species, q.Form, q.Level, q.MinLevelG2)
		}
	}

	if !q.NewGen2MovesDisallowed {
		return moves
	}
	kept := moves[:0]
	for _, m := range moves {
		if m <= game.MaxMoveID1 {
			kept = append(kept, m)
		}
	}
	return kept
}
