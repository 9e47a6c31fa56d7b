package levelup

import (
	"github.com/KirkDiggler/rpg-legality/internal/entities/game"
	"github.com/KirkDiggler/rpg-legality/internal/learnset"
)

type gen6 struct {
	xy learnset.Lookup
	ao learnset.Lookup
}

func newGen6(reg *learnset.Registry) gen6 {
	return gen6{
		xy: lookup(reg, game.XY, game.XY),
		ao: lookup(reg, game.ORAS, game.ORAS),
	}
}

func (g gen6) isLevelUp(q Query) learnset.Result {
	switch q.Version {
	case game.Any:
		first := g.xy.QueryLevelUp(q.Species, q.Form, q.Move, q.Level, 0)
		if first.IsLevelUp {
			return first
		}
		return g.ao.QueryLevelUp(q.Species, q.Form, q.Move, q.Level, 0)
	case game.X, game.Y, game.XY:
		if q.Move > game.MaxMoveID6XY {
			return learnset.None
		}
		return g.xy.QueryLevelUp(q.Species, q.Form, q.Move, q.Level, 0)
	case game.OR, game.AS, game.ORAS:
		return g.ao.QueryLevelUp(q.Species, q.Form, q.Move, q.Level, 0)
	}
	return learnset.None
}

func (g gen6) levelUpMoves(q Query) []int {
	var moves []int
	switch q.Version {
	case game.Any:
		moves = g.xy.AddMoves(moves, q.Species, q.Form, q.Level, 0)
		moves = g.ao.AddMoves(moves, q.Species, q.Form, q.Level, 0)
	case game.X, game.Y, game.XY:
		moves = g.xy.AddMoves(moves, q.Species, q.Form, q.Level, 0)
	case game.OR, game.AS, game.ORAS:
		moves = g.ao.AddMoves(moves, q.Species, q.Form, q.Level, 0)
	}
	return moves
}
