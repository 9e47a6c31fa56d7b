// Package entities holds the read-only record shapes the legality engine consumes.
package entities

import (
	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/rpg-legality/internal/entities/game"
	"github.com/KirkDiggler/rpg-legality/internal/errors"
)

// EntityTypeCreature is the entity type reported for creature records
const EntityTypeCreature = "creature"

// TradebackStatus records whether a generation 1/2 record moved between the two
// generations' games.
type TradebackStatus int

// Tradeback states
const (
	TradebackAny TradebackStatus = iota
	TradebackNotTradeback
	TradebackWasTradeback
)

// Creature is a snapshot of one imported creature record. It is owned by the
// save-file layer; legality code only reads it.
type Creature struct {
	ID             string          `json:"id" yaml:"id"`
	Species        int             `json:"species" yaml:"species"`
	Form           int             `json:"form" yaml:"form"`
	CurrentLevel   int             `json:"current_level" yaml:"current_level"`
	MetLevel       int             `json:"met_level" yaml:"met_level"`
	MetLocation    int             `json:"met_location" yaml:"met_location"`
	EXP            uint32          `json:"exp" yaml:"exp"`
	Moves          []int           `json:"moves,omitempty" yaml:"moves,omitempty"`
	Version        game.Version    `json:"version" yaml:"version"`
	Format         int             `json:"format" yaml:"format"`
	IsEgg          bool            `json:"is_egg" yaml:"is_egg"`
	Korean         bool            `json:"korean" yaml:"korean"`
	VirtualConsole bool            `json:"virtual_console" yaml:"virtual_console"`
	Tradeback      TradebackStatus `json:"tradeback" yaml:"tradeback"`

	// FromActiveTrainer is true when the record's trainer matches the loaded save
	FromActiveTrainer bool `json:"from_active_trainer" yaml:"from_active_trainer"`
}

var _ core.Entity = (*Creature)(nil)

// GetID returns the record identifier
func (c *Creature) GetID() string {
	return c.ID
}

// GetType returns the entity type
func (c *Creature) GetType() string {
	return EntityTypeCreature
}

// Generation returns the generation of the release the record originated in
func (c *Creature) Generation() int {
	return c.Version.Generation()
}

// VC1 reports a virtual console transfer from a generation 1 release
func (c *Creature) VC1() bool {
	return c.VirtualConsole && c.Version.Generation() == 1
}

// HasOriginalMetLocation reports whether the met data was written by the
// origin game rather than by a transfer.
func (c *Creature) HasOriginalMetLocation() bool {
	if c.Format < 3 || c.VirtualConsole {
		return false
	}
	gen := c.Generation()
	if gen <= 4 && c.Format != gen {
		return false
	}
	return true
}

// IsMovesetRestricted reports whether level-up queries for generation must be
// pinned to the record's own origin release.
func (c *Creature) IsMovesetRestricted(generation int) bool {
	return generation == 7 && game.GG.Contains(c.Version)
}

// NewGen2MovesDisallowed reports whether moves introduced in generation 2 are
// unreachable for the record: it lives in a generation 1 format, or it was
// transferred from a generation 1 virtual console release.
func (c *Creature) NewGen2MovesDisallowed() bool {
	return c.Format == 1 || (c.Format >= 7 && c.VC1())
}

// Validate reports record content no legality rule can be evaluated against.
// Empty move slots are 0.
func (c *Creature) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Species <= 0 {
		vb.Field("species", "must be positive")
	}
	if c.Form < 0 {
		vb.Field("form", "must not be negative")
	}
	errors.ValidateRange("current_level", c.CurrentLevel, 1, game.MaxLevel, vb)
	errors.ValidateRange("met_level", c.MetLevel, 0, game.MaxLevel, vb)
	errors.ValidateRange("format", c.Format, 1, 8, vb)
	if c.Version.Generation() == 0 {
		vb.Fieldf("version", "%s is not a known release", c.Version)
	}
	for _, m := range c.Moves {
		if m < 0 {
			vb.Fieldf("moves", "move %d is negative", m)
		}
	}
	return vb.Build()
}
