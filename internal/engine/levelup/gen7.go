package levelup

import (
	"github.com/KirkDiggler/rpg-legality/internal/entities/game"
	"github.com/KirkDiggler/rpg-legality/internal/learnset"
)

// gen7 resolves Sun/Moon, Ultra Sun/Ultra Moon and Let's Go. The move
// reminder can teach any movepool entry in these releases, so resolution
// ignores the record's level.
type gen7 struct {
	sm   learnset.Lookup
	usum learnset.Lookup
	gg   learnset.Lookup
}

func newGen7(reg *learnset.Registry) gen7 {
	return gen7{
		sm:   lookup(reg, game.SM, game.SM),
		usum: lookup(reg, game.USUM, game.USUM),
		gg:   lookup(reg, game.GG, game.Gen7b),
	}
}

func (g gen7) isLevelUp(q Query) learnset.Result {
	const maxLevel = game.MaxLevel

	switch q.Version {
	case game.GP, game.GE, game.GG, game.GO:
		return g.gg.QueryLevelUp(q.Species, q.Form, q.Move, maxLevel, 0)
	case game.Any:
		if q.Species > game.MaxSpeciesID7USUM {
			return learnset.None
		}
		if first := g.usum.QueryLevelUp(q.Species, q.Form, q.Move, maxLevel, 0); first.IsLevelUp {
			return first
		}
		if q.Species > game.MaxSpeciesID7 {
			return learnset.None
		}
		return g.sm.QueryLevelUp(q.Species, q.Form, q.Move, maxLevel, 0)
	case game.SN, game.MN, game.SM:
		if q.Species > game.MaxSpeciesID7 || q.Move > game.MaxMoveID7 {
			return learnset.None
		}
		return g.sm.QueryLevelUp(q.Species, q.Form, q.Move, maxLevel, 0)
	case game.US, game.UM, game.USUM:
		if q.Species > game.MaxSpeciesID7USUM || q.Move > game.MaxMoveID7USUM {
			return learnset.None
		}
		return g.usum.QueryLevelUp(q.Species, q.Form, q.Move, maxLevel, 0)
	}
	return learnset.None
}

func (g gen7) levelUpMoves(q Query) []int {
	maxLevel := q.Level
	if q.MoveReminder {
		maxLevel = game.MaxLevel
	}

	var moves []int
	switch q.Version {
	case game.GP, game.GE, game.GG, game.GO:
		moves = g.gg.AddMoves(moves, q.Species, q.Form, maxLevel, 0)
	case game.Any:
		if q.Species > game.MaxSpeciesID7USUM {
			return moves
		}
		moves = g.usum.AddMoves(moves, q.Species, q.Form, maxLevel, 0)
		if q.Species > game.MaxSpeciesID7 {
			return moves
		}
		moves = g.sm.AddMoves(moves, q.Species, q.Form, maxLevel, 0)
	case game.SN, game.MN, game.SM:
		if q.Species > game.MaxSpeciesID7 {
			return moves
		}
		moves = g.sm.AddMoves(moves, q.Species, q.Form, maxLevel, 0)
	case game.US, game.UM, game.USUM:
		if q.Species > game.MaxSpeciesID7USUM {
			return moves
		}
		moves = g.usum.AddMoves(moves, q.Species, q.Form, maxLevel, 0)
	}
	return moves
}
