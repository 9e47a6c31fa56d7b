package levelup

import (
	"github.com/KirkDiggler/rpg-legality/internal/entities/game"
	"github.com/KirkDiggler/rpg-legality/internal/learnset"
)

// gen8 resolves Sword/Shield. GO transfers into Sword/Shield use its table.
type gen8 struct {
	swsh learnset.Lookup
}

func newGen8(reg *learnset.Registry) gen8 {
	return gen8{
		swsh: lookup(reg, game.SWSH, game.SWSH),
	}
}

func (g gen8) isLevelUp(q Query) learnset.Result {
	switch q.Version {
	case game.Any, game.GO, game.SW, game.SH, game.SWSH:
		if q.Species > game.MaxSpeciesID8 {
			return learnset.None
		}
		return g.swsh.QueryLevelUp(q.Species, q.Form, q.Move, q.Level, 0)
	}
	return learnset.None
}

func (g gen8) levelUpMoves(q Query) []int {
	switch q.Version {
	case game.Any, game.GO, game.SW, game.SH, game.SWSH:
		if q.Species > game.MaxSpeciesID8 {
			return nil
		}
		return g.swsh.AddMoves(nil, q.Species, q.Form, q.Level, 0)
	}
	return nil
}
