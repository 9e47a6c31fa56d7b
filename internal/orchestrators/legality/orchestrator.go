// Package legality implements the legality orchestrator: request validation,
// level-up resolution, level verification and batch scans.
package legality

//go:generate mockgen -destination=mock/mock_service.go -package=legalitymock github.com/KirkDiggler/rpg-legality/internal/orchestrators/legality Service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/rpg-legality/internal/engine/levelup"
	"github.com/KirkDiggler/rpg-legality/internal/engine/verifier"
	"github.com/KirkDiggler/rpg-legality/internal/entities"
	"github.com/KirkDiggler/rpg-legality/internal/entities/game"
	"github.com/KirkDiggler/rpg-legality/internal/errors"
	"github.com/KirkDiggler/rpg-legality/internal/learnset"
	"github.com/KirkDiggler/rpg-legality/internal/metrics"
	"github.com/KirkDiggler/rpg-legality/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-legality/internal/pkg/idgen"
)

const (
	minGeneration = 1
	maxGeneration = 8
)

// Service defines the interface for legality operations
type Service interface {
	// Level-up move legality
	ResolveLevelUp(ctx context.Context, input *ResolveLevelUpInput) (*ResolveLevelUpOutput, error)
	ListLevelUpMoves(ctx context.Context, input *ListLevelUpMovesInput) (*ListLevelUpMovesOutput, error)
	EncounterMoves(ctx context.Context, input *EncounterMovesInput) (*EncounterMovesOutput, error)

	// Level verification
	VerifyLevel(ctx context.Context, input *VerifyLevelInput) (*VerifyLevelOutput, error)
	VerifyBatch(ctx context.Context, input *VerifyBatchInput) (*VerifyBatchOutput, error)
}

// Config holds the dependencies for the legality orchestrator
type Config struct {
	Engine      *levelup.Engine
	Verifier    *verifier.Verifier
	IDGenerator idgen.Generator
	Clock       clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.Verifier == nil {
		vb.RequiredField("Verifier")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}

	return vb.Build()
}

type orchestrator struct {
	engine   *levelup.Engine
	verifier *verifier.Verifier
	idGen    idgen.Generator
	clock    clock.Clock
}

// NewOrchestrator creates a new legality orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		engine:   cfg.Engine,
		verifier: cfg.Verifier,
		idGen:    cfg.IDGenerator,
		clock:    cfg.Clock,
	}, nil
}

func validateGeneration(vb *errors.ValidationBuilder, generation int) {
	errors.ValidateRange("generation", generation, minGeneration, maxGeneration, vb)
}

// ResolveLevelUp answers whether the creature can learn the move by level-up
func (o *orchestrator) ResolveLevelUp(ctx context.Context, input *ResolveLevelUpInput) (*ResolveLevelUpOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	if input.Creature == nil {
		vb.RequiredField("creature")
	}
	validateGeneration(vb, input.Generation)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	if reason, ok := malformed(input.Creature, input.MinLevelG1, input.MinLevelG2); !ok {
		metrics.ObserveLevelUpQuery(input.Generation, string(OutcomeMalformed))
		return &ResolveLevelUpOutput{Outcome: OutcomeMalformed, Result: learnset.None, Reason: reason}, nil
	}
	if input.Move <= 0 {
		metrics.ObserveLevelUpQuery(input.Generation, string(OutcomeMalformed))
		return &ResolveLevelUpOutput{
			Outcome: OutcomeMalformed,
			Result:  learnset.None,
			Reason:  fmt.Sprintf("move %d is not a valid move", input.Move),
		}, nil
	}

	q := levelup.NewQuery(input.Creature, input.Move, input.Generation, input.Version)
	q.MinLevelG1 = input.MinLevelG1
	q.MinLevelG2 = input.MinLevelG2

	result := o.engine.IsLevelUpMove(q)

	outcome := OutcomeNotLearnable
	if result.IsLevelUp {
		outcome = OutcomeLearnable
	}
	metrics.ObserveLevelUpQuery(input.Generation, string(outcome))

	slog.DebugContext(ctx, "Resolved level-up move",
		"creature_id", input.Creature.GetID(),
		"species", q.Species,
		"move", q.Move,
		"generation", q.Generation,
		"version", q.Version.String(),
		"outcome", outcome,
		"level", result.Level)

	return &ResolveLevelUpOutput{Outcome: outcome, Result: result}, nil
}

// ListLevelUpMoves lists the moves the creature can learn by level-up
func (o *orchestrator) ListLevelUpMoves(ctx context.Context, input *ListLevelUpMovesInput) (*ListLevelUpMovesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	if input.Creature == nil {
		vb.RequiredField("creature")
	}
	validateGeneration(vb, input.Generation)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	if reason, ok := malformed(input.Creature, input.MinLevelG1, input.MinLevelG2); !ok {
		return &ListLevelUpMovesOutput{Outcome: OutcomeMalformed, Reason: reason}, nil
	}

	q := levelup.NewQuery(input.Creature, 0, input.Generation, input.Version)
	q.MinLevelG1 = input.MinLevelG1
	q.MinLevelG2 = input.MinLevelG2
	q.MoveReminder = input.MoveReminder

	moves := o.engine.LevelUpMoves(q)
	metrics.ObserveMoveListing(input.Generation)

	slog.DebugContext(ctx, "Listed level-up moves",
		"creature_id", input.Creature.GetID(),
		"species", q.Species,
		"generation", q.Generation,
		"count", len(moves))

	outcome := OutcomeLearnable
	if len(moves) == 0 {
		outcome = OutcomeNotLearnable
	}
	return &ListLevelUpMovesOutput{Outcome: outcome, Moves: moves}, nil
}

// EncounterMoves returns the default moveset of a species met at a level
func (o *orchestrator) EncounterMoves(ctx context.Context, input *EncounterMovesInput) (*EncounterMovesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	if input.Species <= 0 {
		vb.Field("species", "must be positive")
	}
	if input.Form < 0 {
		vb.Field("form", "must not be negative")
	}
	errors.ValidateRange("level", input.Level, 1, game.MaxLevel, vb)
	if input.Version.Generation() == 0 {
		vb.Fieldf("version", "%s is not a known release", input.Version)
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	moves := o.engine.EncounterMoves(input.Species, input.Form, input.Level, input.Version)

	slog.DebugContext(ctx, "Computed encounter moves",
		"species", input.Species,
		"level", input.Level,
		"version", input.Version.String())

	return &EncounterMovesOutput{Moves: moves}, nil
}

// VerifyLevel checks the level data of one record
func (o *orchestrator) VerifyLevel(ctx context.Context, input *VerifyLevelInput) (*VerifyLevelOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Creature == nil {
		return nil, errors.InvalidArgument("creature is required")
	}

	verdict := o.verifier.VerifyLevel(input.Creature, input.Encounter)
	metrics.ObserveVerdict(string(verdict.Severity), verdict.Code)

	slog.DebugContext(ctx, "Verified level",
		"creature_id", input.Creature.GetID(),
		"severity", verdict.Severity,
		"code", verdict.Code)

	return &VerifyLevelOutput{Verdict: verdict}, nil
}

// VerifyBatch verifies every record, continuing past malformed ones. Records
// without an ID are keyed by their position, and repeated IDs by ID and
// position. Generated keys never reuse a key already in the report or an ID
// present in the batch.
func (o *orchestrator) VerifyBatch(ctx context.Context, input *VerifyBatchInput) (*VerifyBatchOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if len(input.Records) == 0 {
		return nil, errors.InvalidArgument("at least one record is required")
	}

	report := &ScanReport{
		ScanID:    o.idGen.Generate(),
		StartedAt: o.clock.Now(),
		Verdicts:  make(map[string]verifier.Verdict, len(input.Records)),
	}

	ids := recordIDs(input.Records)
	taken := func(key string) bool {
		if _, ok := report.Verdicts[key]; ok {
			return true
		}
		_, ok := ids[key]
		return ok
	}
	seen := make(map[string]struct{}, len(ids))

	for i, rec := range input.Records {
		if err := ctx.Err(); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeCanceled, "batch scan canceled")
		}

		var key string
		switch id := recordID(rec.Creature); {
		case id == "":
			key = freeKey(fmt.Sprintf("record-%d", i), taken)
		default:
			if _, dup := seen[id]; dup {
				key = freeKey(fmt.Sprintf("%s#%d", id, i), taken)
				report.Verdicts[key] = verifier.Verdict{
					Severity: verifier.SeverityInvalid,
					Code:     verifier.CodeMalformedRecord,
					Comment:  "Duplicate record ID in batch.",
				}
				report.Invalid++
				continue
			}
			seen[id] = struct{}{}
			key = id
		}

		verdict := o.verifier.VerifyLevel(rec.Creature, rec.Encounter)
		metrics.ObserveVerdict(string(verdict.Severity), verdict.Code)
		report.Verdicts[key] = verdict

		switch verdict.Severity {
		case verifier.SeverityValid:
			report.Valid++
		case verifier.SeveritySuspicious:
			report.Suspicious++
		default:
			report.Invalid++
		}
	}

	metrics.ObserveBatchScan(len(input.Records))

	slog.InfoContext(ctx, "Batch scan complete",
		"scan_id", report.ScanID,
		"records", len(input.Records),
		"valid", report.Valid,
		"invalid", report.Invalid,
		"suspicious", report.Suspicious)

	return &VerifyBatchOutput{Report: report}, nil
}

func recordID(c *entities.Creature) string {
	if c == nil {
		return ""
	}
	return c.GetID()
}

// recordIDs collects every record ID in the batch so generated keys never
// shadow a real one
func recordIDs(records []BatchRecord) map[string]struct{} {
	ids := make(map[string]struct{}, len(records))
	for _, rec := range records {
		if id := recordID(rec.Creature); id != "" {
			ids[id] = struct{}{}
		}
	}
	return ids
}

// freeKey returns base, or base with the first numeric suffix not taken
func freeKey(base string, taken func(string) bool) string {
	key := base
	for n := 1; taken(key); n++ {
		key = fmt.Sprintf("%s~%d", base, n)
	}
	return key
}

// malformed reports record content and level floors no resolution can be
// evaluated against
func malformed(c *entities.Creature, minLevelG1, minLevelG2 int) (string, bool) {
	if err := c.Validate(); err != nil {
		return errors.GetMessage(err), false
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRange("min_level_g1", minLevelG1, 0, game.MaxLevel, vb)
	errors.ValidateRange("min_level_g2", minLevelG2, 0, game.MaxLevel, vb)
	if err := vb.Build(); err != nil {
		return errors.GetMessage(err), false
	}
	return "", true
}
