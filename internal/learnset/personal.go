package learnset

import "github.com/KirkDiggler/rpg-legality/internal/pkg/experience"

// PersonalInfo is the per-species personal data the legality engine needs
type PersonalInfo struct {
	Species   int                   `json:"species" yaml:"species"`
	FormCount int                   `json:"form_count" yaml:"form_count"`
	EXPGrowth experience.GrowthRate `json:"exp_growth" yaml:"exp_growth"`

	// BaseMoves are the level 1 moves of generation 1 personal data
	BaseMoves []int `json:"base_moves,omitempty" yaml:"base_moves,omitempty"`
}

// Key addresses one species form inside a table
type Key struct {
	Species int
	Form    int
}

// PersonalTable maps species to personal data for one release
type PersonalTable struct {
	maxSpecies int
	entries    map[int]PersonalInfo
}

// NewPersonalTable builds a personal table capped at maxSpecies
func NewPersonalTable(maxSpecies int, infos []PersonalInfo) *PersonalTable {
	t := &PersonalTable{
		maxSpecies: maxSpecies,
		entries:    make(map[int]PersonalInfo, len(infos)),
	}
	for _, info := range infos {
		t.entries[info.Species] = info
	}
	return t
}

// MaxSpeciesID returns the highest species the table covers
func (t *PersonalTable) MaxSpeciesID() int {
	if t == nil {
		return 0
	}
	return t.maxSpecies
}

// Info returns the personal data of species
func (t *PersonalTable) Info(species int) (PersonalInfo, bool) {
	if t == nil || species <= 0 || species > t.maxSpecies {
		return PersonalInfo{}, false
	}
	info, ok := t.entries[species]
	return info, ok
}

// FormKey resolves (species, form) to the key of its movepool. Forms the table
// does not know fall back to the base form; species outside the table do not
// resolve at all.
func (t *PersonalTable) FormKey(species, form int) (Key, bool) {
	info, ok := t.Info(species)
	if !ok {
		return Key{}, false
	}
	if form <= 0 || form >= info.FormCount {
		return Key{Species: species}, true
	}
	return Key{Species: species, Form: form}, true
}
