package learnset

import "github.com/KirkDiggler/rpg-legality/internal/entities/game"

// Table is the immutable personal + level-up data of one release
type Table struct {
	version   game.Version
	personal  *PersonalTable
	learnsets map[Key]Learnset
}

// Version returns the release the table was dumped from
func (t *Table) Version() game.Version {
	if t == nil {
		return game.Invalid
	}
	return t.version
}

// Personal returns the table's personal data
func (t *Table) Personal() *PersonalTable {
	if t == nil {
		return nil
	}
	return t.personal
}

// Learnset returns the movepool of (species, form). A nil table behaves as an
// empty one.
func (t *Table) Learnset(species, form int) (Learnset, bool) {
	if t == nil {
		return Learnset{}, false
	}
	key, ok := t.personal.FormKey(species, form)
	if !ok {
		return Learnset{}, false
	}
	l, ok := t.learnsets[key]
	return l, ok
}

// BaseMoves returns the generation 1 level 1 moves of species
func (t *Table) BaseMoves(species int) []int {
	if t == nil {
		return nil
	}
	info, ok := t.personal.Info(species)
	if !ok {
		return nil
	}
	return info.BaseMoves
}
