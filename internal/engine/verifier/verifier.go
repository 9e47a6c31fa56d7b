// Package verifier checks the level data of a creature record against the
// encounter it was matched to: gift levels, egg levels and experience, met
// level against current level, and the generation 1 trade evolution rule.
//
// Every check resolves to a Verdict. Malformed input is an invalid verdict,
// never an error, so batch scans can continue past bad records.
package verifier

import (
	"fmt"

	"github.com/KirkDiggler/rpg-legality/internal/entities"
	"github.com/KirkDiggler/rpg-legality/internal/entities/game"
	"github.com/KirkDiggler/rpg-legality/internal/errors"
	"github.com/KirkDiggler/rpg-legality/internal/pkg/experience"
)

//go:generate mockgen -destination=mock/mock_growth.go -package=verifiermock github.com/KirkDiggler/rpg-legality/internal/engine/verifier GrowthSource

// GrowthSource resolves the experience curve of a species
type GrowthSource interface {
	GrowthRate(species int) (experience.GrowthRate, bool)
}

// Severity grades a verdict
type Severity string

// Severities
const (
	SeverityValid      Severity = "valid"
	SeverityInvalid    Severity = "invalid"
	SeveritySuspicious Severity = "suspicious"
)

// Reason codes
const (
	CodeMalformedRecord   = "MALFORMED_RECORD"
	CodeLevelMetGift      = "LEVEL_MET_GIFT"
	CodeLevelMetGiftFail  = "LEVEL_MET_GIFT_FAIL"
	CodeEggMetLevel       = "EGG_MET_LEVEL"
	CodeEggEXP            = "EGG_EXP"
	CodeLevelMetBelow     = "LEVEL_MET_BELOW"
	CodeLevelEXPThreshold = "LEVEL_EXP_THRESHOLD"
	CodeLevelMetSane      = "LEVEL_MET_SANE"
	CodeGrowthUnknown     = "GROWTH_UNKNOWN"
	CodeEvoTradeRequired  = "EVO_TRADE_REQUIRED"
)

// crystalEggEXP is the experience Crystal's static egg gifts are stored with,
// regardless of their growth curve.
const crystalEggEXP = 125

// eggLevelG1 is the only level a generation 1/2 egg can have
const eggLevelG1 = 5

// Verdict is the outcome of one level check
type Verdict struct {
	Severity Severity `json:"severity"`
	Code     string   `json:"code"`
	Comment  string   `json:"comment"`
}

// Valid reports whether the verdict passed
func (v Verdict) Valid() bool {
	return v.Severity == SeverityValid
}

func valid(code, comment string) Verdict {
	return Verdict{Severity: SeverityValid, Code: code, Comment: comment}
}

func invalid(code, comment string) Verdict {
	return Verdict{Severity: SeverityInvalid, Code: code, Comment: comment}
}

func suspicious(code, comment string) Verdict {
	return Verdict{Severity: SeveritySuspicious, Code: code, Comment: comment}
}

// Config configures a Verifier
type Config struct {
	Growth GrowthSource

	// ActiveTrainerGeneration is the generation of the loaded save. Trade
	// evolution checks only apply to generation 1/2 saves.
	ActiveTrainerGeneration int

	// AllowGBCartEra accepts records that may have moved between the
	// original cartridges without a trade.
	AllowGBCartEra bool
}

// Validate validates the config
func (cfg *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if cfg.Growth == nil {
		vb.RequiredField("Growth")
	}
	errors.ValidateRange("ActiveTrainerGeneration", cfg.ActiveTrainerGeneration, 0, 8, vb)
	return vb.Build()
}

// Verifier checks creature levels. It holds no mutable state.
type Verifier struct {
	growth                  GrowthSource
	activeTrainerGeneration int
	allowGBCartEra          bool
}

// New creates a verifier
func New(cfg *Config) (*Verifier, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid verifier config")
	}
	return &Verifier{
		growth:                  cfg.Growth,
		activeTrainerGeneration: cfg.ActiveTrainerGeneration,
		allowGBCartEra:          cfg.AllowGBCartEra,
	}, nil
}

// VerifyLevel checks c against enc, using the generation 1/2 rules for
// records living in those formats.
func (v *Verifier) VerifyLevel(c *entities.Creature, enc *entities.Encounter) Verdict {
	if verdict, ok := malformed(c, enc); !ok {
		return verdict
	}
	if c.Format <= 2 {
		return v.verifyG1(c, enc)
	}
	return v.verify(c, enc)
}

func malformed(c *entities.Creature, enc *entities.Encounter) (Verdict, bool) {
	if c == nil {
		return invalid(CodeMalformedRecord, "creature record is missing"), false
	}
	if enc == nil {
		return invalid(CodeMalformedRecord, "encounter is missing"), false
	}
	if err := c.Validate(); err != nil {
		return invalid(CodeMalformedRecord, errors.GetMessage(err)), false
	}
	if err := enc.Validate(); err != nil {
		return invalid(CodeMalformedRecord, errors.GetMessage(err)), false
	}
	return Verdict{}, true
}

func (v *Verifier) verify(c *entities.Creature, enc *entities.Encounter) Verdict {
	if enc.IsMysteryGift() {
		if verdict, ok := verifyGift(c, enc.Gift); !ok {
			return verdict
		}
	}

	if c.IsEgg {
		return v.verifyEgg(c, enc)
	}

	lvl := c.CurrentLevel
	if lvl < c.MetLevel {
		return invalid(CodeLevelMetBelow, "Current level is below met level.")
	}

	if !enc.IsWithinEncounterRange(c) && lvl != game.MaxLevel {
		growth, ok := v.growth.GrowthRate(c.Species)
		if !ok {
			return suspicious(CodeGrowthUnknown,
				fmt.Sprintf("Growth rate of %s is unknown; experience was not checked.", game.SpeciesName(c.Species)))
		}
		if c.EXP == experience.EXP(lvl, growth) {
			return suspicious(CodeLevelEXPThreshold, "Current experience matches level threshold.")
		}
	}
	return valid(CodeLevelMetSane, "Current level is not below met level.")
}

func verifyGift(c *entities.Creature, gift *entities.Gift) (Verdict, bool) {
	if gift.Level != c.MetLevel && c.HasOriginalMetLocation() {
		switch {
		case gift.Generation == 3 && (gift.MetLevel == c.MetLevel || gift.IsEgg):
		case gift.Generation == 7 && gift.MetLevel == c.MetLevel:
		case gift.Generation == 4 && gift.IsManaphyEgg && c.MetLevel == 0:
		default:
			return invalid(CodeLevelMetGift, "Met level does not match Mystery Gift level."), false
		}
	}
	if gift.Level > c.CurrentLevel {
		return invalid(CodeLevelMetGiftFail, "Current level is below Mystery Gift level."), false
	}
	return Verdict{}, true
}

func (v *Verifier) verifyEgg(c *entities.Creature, enc *entities.Encounter) Verdict {
	elvl := enc.LevelMin
	if elvl != c.CurrentLevel {
		return invalid(CodeEggMetLevel, fmt.Sprintf("Invalid Met Level, expected %d.", elvl))
	}

	var required uint32
	if enc.Kind == entities.EncounterStatic && enc.Version == game.C {
		required = crystalEggEXP
	} else {
		growth, ok := v.growth.GrowthRate(c.Species)
		if !ok {
			return suspicious(CodeGrowthUnknown,
				fmt.Sprintf("Growth rate of %s is unknown; egg experience was not checked.", game.SpeciesName(c.Species)))
		}
		required = experience.EXP(elvl, growth)
	}

	if required != c.EXP {
		return invalid(CodeEggEXP, "Eggs cannot receive experience.")
	}
	return valid(CodeLevelMetSane, "Egg level and experience match its origin.")
}

func (v *Verifier) verifyG1(c *entities.Creature, enc *entities.Encounter) Verdict {
	if c.IsEgg {
		if c.CurrentLevel != eggLevelG1 {
			return invalid(CodeEggMetLevel, fmt.Sprintf("Invalid Met Level, expected %d.", eggLevelG1))
		}
		return valid(CodeLevelMetSane, "Egg level matches its origin.")
	}

	// Only Crystal records carry met data
	if c.MetLocation != 0 && c.CurrentLevel < c.MetLevel {
		return invalid(CodeLevelMetBelow, "Current level is below met level.")
	}

	if c.Format <= 2 && enc.Kind != entities.EncounterTrade && enc.Species == c.Species && game.IsTradeEvolution1(enc.Species) {
		if verdict, ok := v.verifyTradeEvolution(c); !ok {
			return verdict
		}
	}
	return valid(CodeLevelMetSane, "Current level is not below met level.")
}

// verifyTradeEvolution rejects trade evolution species that must have been
// traded but were not evolved. Held items could not block evolution in
// generation 1, and trade evolutions are sequential species IDs.
func (v *Verifier) verifyTradeEvolution(c *entities.Creature) (Verdict, bool) {
	// A generation 3+ save or a Stadium 2 era transfer moves records without a trade
	if v.activeTrainerGeneration >= 3 || v.allowGBCartEra {
		return Verdict{}, true
	}

	mustEvolve := c.Tradeback == entities.TradebackWasTradeback ||
		(c.Format == 1 && !c.FromActiveTrainer) ||
		isTradedKadabra(c)
	if !mustEvolve {
		return Verdict{}, true
	}

	return invalid(CodeEvoTradeRequired, fmt.Sprintf("Outsider %s should be evolved into %s.",
		game.SpeciesName(c.Species), game.SpeciesName(c.Species+1))), false
}

func isTradedKadabra(c *entities.Creature) bool {
	return c.Species == game.Kadabra && c.Format == 2 && !c.FromActiveTrainer && c.MetLocation == 0
}
