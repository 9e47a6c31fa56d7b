package builders

import (
	"github.com/KirkDiggler/rpg-legality/internal/entities"
	"github.com/KirkDiggler/rpg-legality/internal/entities/game"
)

// CreatureBuilder provides a fluent interface for building test Creature instances
type CreatureBuilder struct {
	creature *entities.Creature
}

// NewCreatureBuilder creates a builder for a level 5 Emerald record kept in
// its origin format.
func NewCreatureBuilder() *CreatureBuilder {
	return &CreatureBuilder{
		creature: &entities.Creature{
			ID:                "creature-test-001",
			Species:           1,
			CurrentLevel:      5,
			MetLevel:          5,
			MetLocation:       16,
			Version:           game.E,
			Format:            3,
			FromActiveTrainer: true,
		},
	}
}

// WithID sets the record ID
func (b *CreatureBuilder) WithID(id string) *CreatureBuilder {
	b.creature.ID = id
	return b
}

// WithSpecies sets species and form
func (b *CreatureBuilder) WithSpecies(species, form int) *CreatureBuilder {
	b.creature.Species = species
	b.creature.Form = form
	return b
}

// WithLevel sets the current level
func (b *CreatureBuilder) WithLevel(level int) *CreatureBuilder {
	b.creature.CurrentLevel = level
	return b
}

// WithMet sets the met level and location
func (b *CreatureBuilder) WithMet(level, location int) *CreatureBuilder {
	b.creature.MetLevel = level
	b.creature.MetLocation = location
	return b
}

// WithEXP sets the stored experience
func (b *CreatureBuilder) WithEXP(exp uint32) *CreatureBuilder {
	b.creature.EXP = exp
	return b
}

// WithMoves sets the current moves
func (b *CreatureBuilder) WithMoves(moves ...int) *CreatureBuilder {
	b.creature.Moves = moves
	return b
}

// WithOrigin sets the origin release and the format the record now lives in
func (b *CreatureBuilder) WithOrigin(version game.Version, format int) *CreatureBuilder {
	b.creature.Version = version
	b.creature.Format = format
	return b
}

// AsEgg marks the record as an egg
func (b *CreatureBuilder) AsEgg() *CreatureBuilder {
	b.creature.IsEgg = true
	return b
}

// AsKorean marks the record as coming from a Korean release
func (b *CreatureBuilder) AsKorean() *CreatureBuilder {
	b.creature.Korean = true
	return b
}

// AsVirtualConsole marks the record as a virtual console transfer
func (b *CreatureBuilder) AsVirtualConsole() *CreatureBuilder {
	b.creature.VirtualConsole = true
	return b
}

// WithTradeback sets the tradeback status
func (b *CreatureBuilder) WithTradeback(status entities.TradebackStatus) *CreatureBuilder {
	b.creature.Tradeback = status
	return b
}

// FromOtherTrainer marks the record as not belonging to the loaded save's trainer
func (b *CreatureBuilder) FromOtherTrainer() *CreatureBuilder {
	b.creature.FromActiveTrainer = false
	return b
}

// Build returns the built creature
func (b *CreatureBuilder) Build() *entities.Creature {
	return b.creature
}
