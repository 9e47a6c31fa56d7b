// Package learnset binds releases to their immutable personal and level-up
// movepool tables and answers per-release level-up questions against them.
//
// Tables are built once from a Dataset into a Registry and are never mutated
// afterwards, so every type here is safe for concurrent reads.
package learnset

// Learnset is the ordered level-up movepool of one species form in one release.
// Entries are kept in table order; a move appears at most once per level.
type Learnset struct {
	moves  []int
	levels []int
}

// Entry is a single (move, level) learn entry
type Entry struct {
	Move  int `json:"move" yaml:"move"`
	Level int `json:"level" yaml:"level"`
}

// NewLearnset builds a learnset from entries in table order
func NewLearnset(entries []Entry) Learnset {
	l := Learnset{
		moves:  make([]int, len(entries)),
		levels: make([]int, len(entries)),
	}
	for i, e := range entries {
		l.moves[i] = e.Move
		l.levels[i] = e.Level
	}
	return l
}

// Len returns the number of learn entries
func (l Learnset) Len() int {
	return len(l.moves)
}

// LevelLearnMove returns the level of the first entry teaching move at or
// above minLevel, or -1 when there is none.
func (l Learnset) LevelLearnMove(move, minLevel int) int {
	for i, m := range l.moves {
		if m == move && l.levels[i] >= minLevel {
			return l.levels[i]
		}
	}
	return -1
}

// AppendMoves appends every move learned within [minLevel, maxLevel] to dst in
// table order.
func (l Learnset) AppendMoves(dst []int, maxLevel, minLevel int) []int {
	for i, m := range l.moves {
		lv := l.levels[i]
		if lv < minLevel || lv > maxLevel {
			continue
		}
		dst = append(dst, m)
	}
	return dst
}

// EncounterMoves returns the four move slots a creature met at level knows by
// default. Slots start from initial (gen 1 base moves) and are filled in a
// rolling fashion, skipping moves already known. Empty slots are 0.
func (l Learnset) EncounterMoves(level int, initial []int) [4]int {
	var slots [4]int
	ctr := 0
	for _, m := range initial {
		if m == 0 || ctr == len(slots) {
			break
		}
		slots[ctr] = m
		ctr++
	}
	ctr &= 3

	for i, m := range l.moves {
		if l.levels[i] > level {
			continue
		}
		if hasMove(slots, m) {
			continue
		}
		slots[ctr] = m
		ctr = (ctr + 1) & 3
	}
	return slots
}

func hasMove(slots [4]int, move int) bool {
	for _, s := range slots {
		if s == move {
			return true
		}
	}
	return false
}
