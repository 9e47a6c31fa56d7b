// Package levelup resolves level-up move legality across the releases of each
// generation. One resolver per generation encodes which releases exist, the
// order sibling releases are tried in when no release is given, and the
// historical exceptions of that generation.
//
// Resolution never fails: data the tables do not cover, unknown releases and
// out-of-range IDs all resolve to learnset.None.
package levelup

import (
	"github.com/KirkDiggler/rpg-legality/internal/entities"
	"github.com/KirkDiggler/rpg-legality/internal/entities/game"
	"github.com/KirkDiggler/rpg-legality/internal/learnset"
)

// Query is one level-up question. Level is the highest level the creature
// could have learned the move at.
type Query struct {
	Species int
	Form    int
	Move    int
	Level   int

	// MinLevelG1 and MinLevelG2 floor the learn entries reachable in
	// generations 1 and 2.
	MinLevelG1 int
	MinLevelG2 int

	Generation int
	Version    game.Version

	Korean                 bool
	NewGen2MovesDisallowed bool

	// MoveReminder lifts the generation 7 listing level to the maximum
	MoveReminder bool
}

// NewQuery builds a query for c. Records from releases whose movesets are
// restricted to their own release are pinned to it.
func NewQuery(c *entities.Creature, move, generation int, version game.Version) Query {
	if c.IsMovesetRestricted(generation) {
		version = c.Version
	}
	return Query{
		Species:                c.Species,
		Form:                   c.Form,
		Move:                   move,
		Level:                  c.CurrentLevel,
		Generation:             generation,
		Version:                version,
		Korean:                 c.Korean,
		NewGen2MovesDisallowed: c.NewGen2MovesDisallowed(),
	}
}

type resolver interface {
	isLevelUp(q Query) learnset.Result
	levelUpMoves(q Query) []int
}

// Engine dispatches queries to the resolver of their generation. It only
// reads the registry and is safe for concurrent use.
type Engine struct {
	registry  *learnset.Registry
	resolvers map[int]resolver
}

// New binds every generation resolver to the tables in reg. Tables missing
// from reg behave as empty.
func New(reg *learnset.Registry) *Engine {
	return &Engine{
		registry: reg,
		resolvers: map[int]resolver{
			1: newGen1(reg),
			2: newGen2(reg),
			3: newGen3(reg),
			4: newGen4(reg),
			5: newGen5(reg),
			6: newGen6(reg),
			7: newGen7(reg),
			8: newGen8(reg),
		},
	}
}

// IsLevelUpMove reports whether q.Move is learnable by level-up, at which
// level and from which release's table.
func (e *Engine) IsLevelUpMove(q Query) learnset.Result {
	r, ok := e.resolvers[q.Generation]
	if !ok {
		return learnset.None
	}
	if q.Move <= 0 || q.Move > game.MaxMoveID(q.Generation) {
		return learnset.None
	}
	if q.Species <= 0 || q.Species > game.MaxSpeciesID(q.Generation) {
		return learnset.None
	}
	return r.isLevelUp(q)
}

// LevelUpMoves lists every move learnable by level-up up to q.Level. Moves
// learnable in several sibling releases appear once per release, in the
// order the releases are consulted.
func (e *Engine) LevelUpMoves(q Query) []int {
	r, ok := e.resolvers[q.Generation]
	if !ok {
		return nil
	}
	if q.Species <= 0 || q.Species > game.MaxSpeciesID(q.Generation) {
		return nil
	}
	return r.levelUpMoves(q)
}

// EncounterMoves returns the default moves of (species, form) met at level in
// version. Generation 1 records start from their base moves and generation 2
// records from the moves known at level 1.
func (e *Engine) EncounterMoves(species, form, level int, version game.Version) [4]int {
	tableVersion := TableVersion(version)
	table := e.registry.Table(tableVersion)
	l := learnset.NewLookup(table, tableVersion)

	switch {
	case game.RBY.Contains(version):
		return l.EncounterMoves(species, 0, level, table.BaseMoves(species))
	case game.GSC.Contains(version):
		initial := l.EncounterMoves(species, 0, 1, nil)
		return l.EncounterMoves(species, 0, level, initial[:])
	default:
		return l.EncounterMoves(species, form, level, nil)
	}
}

// TableVersion returns the release whose table holds the movepools of
// version, or game.Invalid when no table does.
func TableVersion(version game.Version) game.Version {
	switch version {
	case game.RD, game.GN, game.BU, game.RB, game.RBY:
		return game.RB
	case game.YW:
		return game.YW
	case game.GD, game.SV, game.GS, game.GSC:
		return game.GS
	case game.C:
		return game.C
	case game.R, game.S, game.RS, game.RSE:
		return game.RS
	case game.E:
		return game.E
	case game.FR:
		return game.FR
	case game.LG, game.FRLG:
		return game.LG
	case game.D, game.P, game.DP, game.DPPt:
		return game.DP
	case game.Pt:
		return game.Pt
	case game.HG, game.SS, game.HGSS:
		return game.HGSS
	case game.B, game.W, game.BW:
		return game.BW
	case game.B2, game.W2, game.B2W2:
		return game.B2W2
	case game.X, game.Y, game.XY:
		return game.XY
	case game.OR, game.AS, game.ORAS:
		return game.ORAS
	case game.SN, game.MN, game.SM:
		return game.SM
	case game.US, game.UM, game.USUM:
		return game.USUM
	case game.GP, game.GE, game.GG, game.Gen7b, game.GO:
		return game.GG
	case game.SW, game.SH, game.SWSH:
		return game.SWSH
	}
	return game.Invalid
}

// lookup binds the table dumped from tableVersion to the tag reported on
// its results.
func lookup(reg *learnset.Registry, tableVersion, tag game.Version) learnset.Lookup {
	return learnset.NewLookup(reg.Table(tableVersion), tag)
}

// lower returns the learnable result with the lower level
func lower(a, b learnset.Result) learnset.Result {
	if !a.IsLevelUp {
		return b
	}
	if !b.IsLevelUp {
		return a
	}
	if a.Level > b.Level {
		return b
	}
	return a
}
