package legality

import (
	"time"

	"github.com/KirkDiggler/rpg-legality/internal/engine/verifier"
	"github.com/KirkDiggler/rpg-legality/internal/entities"
	"github.com/KirkDiggler/rpg-legality/internal/entities/game"
	"github.com/KirkDiggler/rpg-legality/internal/learnset"
)

// Outcome classifies a level-up answer
type Outcome string

// Outcomes
const (
	OutcomeLearnable    Outcome = "learnable"
	OutcomeNotLearnable Outcome = "not_learnable"
	OutcomeMalformed    Outcome = "malformed"
)

// ResolveLevelUpInput defines the request for resolving one move
type ResolveLevelUpInput struct {
	Creature   *entities.Creature
	Move       int
	Generation int

	// Version pins a release. game.Any consults every release of the generation.
	Version game.Version

	MinLevelG1 int
	MinLevelG2 int
}

// ResolveLevelUpOutput defines the response for resolving one move
type ResolveLevelUpOutput struct {
	Outcome Outcome
	Result  learnset.Result

	// Reason explains a malformed outcome
	Reason string
}

// ListLevelUpMovesInput defines the request for listing level-up moves
type ListLevelUpMovesInput struct {
	Creature     *entities.Creature
	Generation   int
	Version      game.Version
	MoveReminder bool
	MinLevelG1   int
	MinLevelG2   int
}

// ListLevelUpMovesOutput defines the response for listing level-up moves
type ListLevelUpMovesOutput struct {
	Outcome Outcome
	Moves   []int
	Reason  string
}

// EncounterMovesInput defines the request for a default moveset
type EncounterMovesInput struct {
	Species int
	Form    int
	Level   int
	Version game.Version
}

// EncounterMovesOutput defines the response for a default moveset. Empty
// slots are 0.
type EncounterMovesOutput struct {
	Moves [4]int
}

// VerifyLevelInput defines the request for verifying one record
type VerifyLevelInput struct {
	Creature  *entities.Creature
	Encounter *entities.Encounter
}

// VerifyLevelOutput defines the response for verifying one record
type VerifyLevelOutput struct {
	Verdict verifier.Verdict
}

// BatchRecord pairs a record with its matched encounter
type BatchRecord struct {
	Creature  *entities.Creature  `json:"creature" yaml:"creature"`
	Encounter *entities.Encounter `json:"encounter" yaml:"encounter"`
}

// VerifyBatchInput defines the request for a batch scan
type VerifyBatchInput struct {
	Records []BatchRecord
}

// VerifyBatchOutput defines the response for a batch scan
type VerifyBatchOutput struct {
	Report *ScanReport
}

// ScanReport is the result of one batch scan. Verdicts are keyed by record ID.
type ScanReport struct {
	ScanID     string                      `json:"scan_id" yaml:"scan_id"`
	StartedAt  time.Time                   `json:"started_at" yaml:"started_at"`
	Verdicts   map[string]verifier.Verdict `json:"verdicts" yaml:"verdicts"`
	Valid      int                         `json:"valid" yaml:"valid"`
	Invalid    int                         `json:"invalid" yaml:"invalid"`
	Suspicious int                         `json:"suspicious" yaml:"suspicious"`
}
