// Package builders provides test data builders for creating test fixtures
package builders

import (
	"github.com/KirkDiggler/rpg-legality/internal/entities/game"
	"github.com/KirkDiggler/rpg-legality/internal/learnset"
	"github.com/KirkDiggler/rpg-legality/internal/pkg/experience"
)

// Learn is shorthand for a learn entry
func Learn(move, level int) learnset.Entry {
	return learnset.Entry{Move: move, Level: level}
}

// DatasetBuilder provides a fluent interface for building small learnset
// datasets. Species methods apply to the most recently added table.
type DatasetBuilder struct {
	dataset *learnset.Dataset
}

// NewDatasetBuilder creates an empty dataset builder
func NewDatasetBuilder() *DatasetBuilder {
	return &DatasetBuilder{
		dataset: &learnset.Dataset{},
	}
}

// WithTable starts a new table for version covering species 1..maxSpecies
func (b *DatasetBuilder) WithTable(version game.Version, maxSpecies int) *DatasetBuilder {
	b.dataset.Tables = append(b.dataset.Tables, learnset.TableData{
		Version:      version,
		MaxSpeciesID: maxSpecies,
	})
	return b
}

// WithSpecies adds personal data for species and appends entries to its base
// form movepool.
func (b *DatasetBuilder) WithSpecies(species int, entries ...learnset.Entry) *DatasetBuilder {
	return b.WithFormLearnset(species, 0, entries...)
}

// WithGrowth sets the growth rate of species
func (b *DatasetBuilder) WithGrowth(species int, growth experience.GrowthRate) *DatasetBuilder {
	b.personal(species).EXPGrowth = growth
	return b
}

// WithFormCount sets how many forms species has
func (b *DatasetBuilder) WithFormCount(species, forms int) *DatasetBuilder {
	b.personal(species).FormCount = forms
	return b
}

// WithBaseMoves sets the level 1 base moves of species
func (b *DatasetBuilder) WithBaseMoves(species int, moves ...int) *DatasetBuilder {
	b.personal(species).BaseMoves = moves
	return b
}

// WithFormLearnset appends entries to the movepool of (species, form). The form
// count grows to cover form.
func (b *DatasetBuilder) WithFormLearnset(species, form int, entries ...learnset.Entry) *DatasetBuilder {
	info := b.personal(species)
	if form >= info.FormCount {
		info.FormCount = form + 1
	}

	table := b.current()
	for i := range table.Learnsets {
		ld := &table.Learnsets[i]
		if ld.Species == species && ld.Form == form {
			ld.Entries = append(ld.Entries, entries...)
			return b
		}
	}
	table.Learnsets = append(table.Learnsets, learnset.LearnsetData{
		Species: species,
		Form:    form,
		Entries: entries,
	})
	return b
}

// Build returns the dataset
func (b *DatasetBuilder) Build() *learnset.Dataset {
	return b.dataset
}

// MustBuildRegistry builds the registry and panics on invalid data
func (b *DatasetBuilder) MustBuildRegistry() *learnset.Registry {
	reg, err := learnset.NewRegistry(b.dataset)
	if err != nil {
		panic(err)
	}
	return reg
}

func (b *DatasetBuilder) current() *learnset.TableData {
	if len(b.dataset.Tables) == 0 {
		panic("builders: WithTable must be called before adding species")
	}
	return &b.dataset.Tables[len(b.dataset.Tables)-1]
}

func (b *DatasetBuilder) personal(species int) *learnset.PersonalInfo {
	table := b.current()
	for i := range table.Personal {
		if table.Personal[i].Species == species {
			return &table.Personal[i]
		}
	}
	table.Personal = append(table.Personal, learnset.PersonalInfo{
		Species:   species,
		FormCount: 1,
	})
	return &table.Personal[len(table.Personal)-1]
}
