package levelup

import (
	"github.com/KirkDiggler/rpg-legality/internal/entities/game"
	"github.com/KirkDiggler/rpg-legality/internal/learnset"
)

// gen1 resolves Red/Blue/Green and Yellow. Both tables are always consulted
// for the wildcard and the lower level wins.
type gen1 struct {
	rb learnset.Lookup
	y  learnset.Lookup
}

func newGen1(reg *learnset.Registry) gen1 {
	return gen1{
		rb: lookup(reg, game.RB, game.RB),
		y:  lookup(reg, game.YW, game.YW),
	}
}

func (g gen1) isLevelUp(q Query) learnset.Result {
	if q.Move > game.MaxMoveID1 {
		return learnset.None
	}

	switch q.Version {
	case game.Any, game.RBY:
		return lower(
			g.rb.QueryLevelUpG1(q.Species, q.Move, q.Level, q.MinLevelG1),
			g.y.QueryLevelUpG1(q.Species, q.Move, q.Level, q.MinLevelG1),
		)
	case game.RD, game.BU, game.GN, game.RB:
		return g.rb.QueryLevelUpG1(q.Species, q.Move, q.Level, q.MinLevelG1)
	case game.YW:
		return g.y.QueryLevelUpG1(q.Species, q.Move, q.Level, q.MinLevelG1)
	}
	return learnset.None
}

func (g gen1) levelUpMoves(q Query) []int {
	var moves []int
	switch q.Version {
	case game.Any, game.RBY:
		moves = g.rb.AddMovesG1(moves, q.Species, q.Level, q.MinLevelG1)
		moves = g.y.AddMovesG1(moves, q.Species, q.Level, q.MinLevelG1)
	case game.RD, game.BU, game.GN, game.RB:
		moves = g.rb.AddMovesG1(moves, q.Species, q.Level, q.MinLevelG1)
	case game.YW:
		moves = g.y.AddMovesG1(moves, q.Species, q.Level, q.MinLevelG1)
	}
	return moves
}
