package learnset

import "github.com/KirkDiggler/rpg-legality/internal/entities/game"

// Result is the answer to one level-up query. Level and Version carry no
// meaning unless IsLevelUp is set.
type Result struct {
	IsLevelUp bool         `json:"is_level_up"`
	Level     int          `json:"level"`
	Version   game.Version `json:"version"`
}

// None is the "not learnable" result
var None = Result{Level: -1, Version: game.Invalid}

func learned(level int, version game.Version) Result {
	return Result{IsLevelUp: true, Level: level, Version: version}
}

// Lookup answers per-release queries against one table. Version is the tag
// reported on learnable results; it may name a family wider than the release
// the table was dumped from.
type Lookup struct {
	table   *Table
	version game.Version
}

// NewLookup binds table to the version reported on its results
func NewLookup(table *Table, version game.Version) Lookup {
	return Lookup{table: table, version: version}
}

// Version returns the tag reported on learnable results
func (l Lookup) Version() game.Version {
	return l.version
}

// QueryLevelUp reports whether move is learned by level-up at a level within
// [minLevel, maxLevel].
func (l Lookup) QueryLevelUp(species, form, move, maxLevel, minLevel int) Result {
	learnset, ok := l.table.Learnset(species, form)
	if !ok {
		return None
	}
	lv := learnset.LevelLearnMove(move, minLevel)
	if lv < 0 {
		return None
	}
	if lv >= minLevel && lv <= maxLevel {
		return learned(lv, l.version)
	}
	return None
}

// QueryLevelUpG1 is QueryLevelUp for generation 1 tables. Forms do not exist
// there, and a species' level 1 base moves count as learned at level 1.
func (l Lookup) QueryLevelUpG1(species, move, maxLevel, minLevel int) Result {
	if r := l.QueryLevelUp(species, 0, move, maxLevel, minLevel); r.IsLevelUp {
		return r
	}
	if minLevel > 1 || maxLevel < 1 {
		return None
	}
	for _, m := range l.table.BaseMoves(species) {
		if m == move {
			return learned(1, l.version)
		}
	}
	return None
}

// AddMoves appends every move learned within [minLevel, maxLevel] to dst
func (l Lookup) AddMoves(dst []int, species, form, maxLevel, minLevel int) []int {
	learnset, ok := l.table.Learnset(species, form)
	if !ok {
		return dst
	}
	if minLevel < 0 {
		minLevel = 0
	}
	return learnset.AppendMoves(dst, maxLevel, minLevel)
}

// AddMovesG1 is AddMoves for generation 1 tables. Base moves come first when
// level 1 is inside the range.
func (l Lookup) AddMovesG1(dst []int, species, maxLevel, minLevel int) []int {
	if minLevel <= 1 && maxLevel >= 1 {
		for _, m := range l.table.BaseMoves(species) {
			if m != 0 {
				dst = append(dst, m)
			}
		}
	}
	return l.AddMoves(dst, species, 0, maxLevel, minLevel)
}

// EncounterMoves returns the default move slots of (species, form) met at
// level, seeded with the slots already known at encounter start.
func (l Lookup) EncounterMoves(species, form, level int, initial []int) [4]int {
	learnset, ok := l.table.Learnset(species, form)
	if !ok {
		var slots [4]int
		copy(slots[:], initial)
		return slots
	}
	return learnset.EncounterMoves(level, initial)
}
