package levelup

import (
	"github.com/KirkDiggler/rpg-legality/internal/entities/game"
	"github.com/KirkDiggler/rpg-legality/internal/learnset"
)

// gen4 resolves Diamond/Pearl, Platinum and HeartGold/SoulSilver in that order.
// DPPt stops before HeartGold/SoulSilver.
type gen4 struct {
	dp   learnset.Lookup
	pt   learnset.Lookup
	hgss learnset.Lookup
}

func newGen4(reg *learnset.Registry) gen4 {
	return gen4{
		dp:   lookup(reg, game.DP, game.DP),
		pt:   lookup(reg, game.Pt, game.Pt),
		hgss: lookup(reg, game.HGSS, game.HGSS),
	}
}

func (g gen4) isLevelUp(q Query) learnset.Result {
	switch q.Version {
	case game.Any, game.DPPt:
		if first := g.dp.QueryLevelUp(q.Species, q.Form, q.Move, q.Level, 0); first.IsLevelUp {
			return first
		}
		if second := g.pt.QueryLevelUp(q.Species, q.Form, q.Move, q.Level, 0); second.IsLevelUp {
			return second
		}
		if q.Version == game.DPPt {
			return learnset.None
		}
		return g.hgss.QueryLevelUp(q.Species, q.Form, q.Move, q.Level, 0)
	case game.D, game.P, game.DP:
		return g.dp.QueryLevelUp(q.Species, q.Form, q.Move, q.Level, 0)
	case game.Pt:
		return g.pt.QueryLevelUp(q.Species, q.Form, q.Move, q.Level, 0)
	case game.HG, game.SS, game.HGSS:
		return g.hgss.QueryLevelUp(q.Species, q.Form, q.Move, q.Level, 0)
	}
	return learnset.None
}

func (g gen4) levelUpMoves(q Query) []int {
	var moves []int
	switch q.Version {
	case game.Any, game.DPPt:
		moves = g.dp.AddMoves(moves, q.Species, q.Form, q.Level, 0)
		moves = g.pt.AddMoves(moves, q.Species, q.Form, q.Level, 0)
		if q.Version == game.Any {
			moves = g.hgss.AddMoves(moves, q.Species, q.Form, q.Level, 0)
		}
	case game.D, game.P, game.DP:
		moves = g.dp.AddMoves(moves, q.Species, q.Form, q.Level, 0)
	case game.Pt:
		moves = g.pt.AddMoves(moves, q.Species, q.Form, q.Level, 0)
	case game.HG, game.SS, game.HGSS:
		moves = g.hgss.AddMoves(moves, q.Species, q.Form, q.Level, 0)
	}
	return moves
}
