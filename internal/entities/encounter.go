package entities

import (
	"github.com/KirkDiggler/rpg-legality/internal/entities/game"
	"github.com/KirkDiggler/rpg-legality/internal/errors"
)

// EncounterKind classifies how a creature was obtained
type EncounterKind string

// Encounter kinds
const (
	EncounterWild        EncounterKind = "wild"
	EncounterStatic      EncounterKind = "static"
	EncounterTrade       EncounterKind = "trade"
	EncounterMysteryGift EncounterKind = "mystery_gift"
	EncounterEgg         EncounterKind = "egg"
)

// Encounter describes the matched origin of a creature record
type Encounter struct {
	Kind     EncounterKind `json:"kind" yaml:"kind"`
	Species  int           `json:"species" yaml:"species"`
	Version  game.Version  `json:"version" yaml:"version"`
	LevelMin int           `json:"level_min" yaml:"level_min"`
	LevelMax int           `json:"level_max" yaml:"level_max"`
	Gift     *Gift         `json:"gift,omitempty" yaml:"gift,omitempty"`
}

// Gift is the fixed content of a distributed gift. Generation selects the
// distribution format rules (3 = WC3, 4 = PGT, 7 = WC7).
type Gift struct {
	Generation   int  `json:"generation" yaml:"generation"`
	Level        int  `json:"level" yaml:"level"`
	MetLevel     int  `json:"met_level" yaml:"met_level"`
	IsEgg        bool `json:"is_egg" yaml:"is_egg"`
	IsManaphyEgg bool `json:"is_manaphy_egg" yaml:"is_manaphy_egg"`
}

// IsMysteryGift reports whether the encounter is a fixed-content distribution
func (e *Encounter) IsMysteryGift() bool {
	return e.Kind == EncounterMysteryGift && e.Gift != nil
}

// IsWithinEncounterRange reports whether the record is still at the level it
// was obtained at: the gift level for distributions, the hatch level for eggs
// and the met level otherwise. Records whose met data was rewritten by a
// transfer can only be checked against the minimum.
func (e *Encounter) IsWithinEncounterRange(c *Creature) bool {
	lvl := c.CurrentLevel
	if !c.HasOriginalMetLocation() {
		return e.LevelMin <= lvl
	}
	switch {
	case e.IsMysteryGift():
		return lvl == e.Gift.Level
	case e.Kind == EncounterEgg:
		return lvl == e.LevelMin
	default:
		return lvl == c.MetLevel
	}
}

// Validate reports descriptors the verifier cannot evaluate
func (e *Encounter) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("kind", string(e.Kind), []string{
		string(EncounterWild), string(EncounterStatic), string(EncounterTrade),
		string(EncounterMysteryGift), string(EncounterEgg),
	}, vb)
	errors.ValidateRange("level_min", e.LevelMin, 0, game.MaxLevel, vb)
	errors.ValidateRange("level_max", e.LevelMax, 0, game.MaxLevel, vb)
	if e.Kind == EncounterMysteryGift && e.Gift == nil {
		vb.RequiredField("gift")
	}
	if e.Gift != nil {
		errors.ValidateRange("gift.level", e.Gift.Level, 0, game.MaxLevel, vb)
	}
	return vb.Build()
}
