// Package v1alpha1 handles the legality grpc service interface
package v1alpha1

import (
	"context"

	legalityv1alpha1 "github.com/KirkDiggler/rpg-legality/internal/api/legality/v1alpha1"
	"github.com/KirkDiggler/rpg-legality/internal/errors"
	"github.com/KirkDiggler/rpg-legality/internal/orchestrators/legality"
)

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	LegalityService legality.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c.LegalityService == nil {
		return errors.InvalidArgument("legality service is required")
	}
	return nil
}

// Handler implements the legality gRPC service
type Handler struct {
	legalityv1alpha1.UnimplementedLegalityServiceServer
	legalityService legality.Service
}

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		legalityService: cfg.LegalityService,
	}, nil
}

// ResolveLevelUp answers whether a record can learn a move by level-up
func (h *Handler) ResolveLevelUp(
	ctx context.Context,
	req *legalityv1alpha1.ResolveLevelUpRequest,
) (*legalityv1alpha1.ResolveLevelUpResponse, error) {
	creature, err := convertCreature(req.GetCreature())
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	version, err := parseRequestVersion("version", req.GetVersion())
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.legalityService.ResolveLevelUp(ctx, &legality.ResolveLevelUpInput{
		Creature:   creature,
		Move:       int(req.GetMove()),
		Generation: int(req.GetGeneration()),
		Version:    version,
		MinLevelG1: int(req.MinLevelG1),
		MinLevelG2: int(req.MinLevelG2),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	resp := &legalityv1alpha1.ResolveLevelUpResponse{
		Outcome:   string(output.Outcome),
		Learnable: output.Result.IsLevelUp,
		Level:     int32(output.Result.Level),
		Reason:    output.Reason,
	}
	if output.Result.IsLevelUp {
		resp.Version = output.Result.Version.String()
	}
	return resp, nil
}

// ListLevelUpMoves lists every level-up move of a record
func (h *Handler) ListLevelUpMoves(
	ctx context.Context,
	req *legalityv1alpha1.ListLevelUpMovesRequest,
) (*legalityv1alpha1.ListLevelUpMovesResponse, error) {
	creature, err := convertCreature(req.GetCreature())
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	version, err := parseRequestVersion("version", req.GetVersion())
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.legalityService.ListLevelUpMoves(ctx, &legality.ListLevelUpMovesInput{
		Creature:     creature,
		Generation:   int(req.GetGeneration()),
		Version:      version,
		MoveReminder: req.MoveReminder,
		MinLevelG1:   int(req.MinLevelG1),
		MinLevelG2:   int(req.MinLevelG2),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &legalityv1alpha1.ListLevelUpMovesResponse{
		Outcome: string(output.Outcome),
		Moves:   convertMoves(output.Moves),
		Reason:  output.Reason,
	}, nil
}

// EncounterMoves returns the default moveset of a wild encounter
func (h *Handler) EncounterMoves(
	ctx context.Context,
	req *legalityv1alpha1.EncounterMovesRequest,
) (*legalityv1alpha1.EncounterMovesResponse, error) {
	version, err := parseRequestVersion("version", req.GetVersion())
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.legalityService.EncounterMoves(ctx, &legality.EncounterMovesInput{
		Species: int(req.Species),
		Form:    int(req.Form),
		Level:   int(req.Level),
		Version: version,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &legalityv1alpha1.EncounterMovesResponse{
		Moves: convertMoves(output.Moves[:]),
	}, nil
}

// VerifyLevel returns the level verdict of one record
func (h *Handler) VerifyLevel(
	ctx context.Context,
	req *legalityv1alpha1.VerifyLevelRequest,
) (*legalityv1alpha1.VerifyLevelResponse, error) {
	creature, err := convertCreature(req.GetCreature())
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.legalityService.VerifyLevel(ctx, &legality.VerifyLevelInput{
		Creature:  creature,
		Encounter: convertEncounter(req.GetEncounter()),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &legalityv1alpha1.VerifyLevelResponse{
		Verdict: convertVerdict(output.Verdict),
	}, nil
}

// VerifyBatch returns a scan report over many records
func (h *Handler) VerifyBatch(
	ctx context.Context,
	req *legalityv1alpha1.VerifyBatchRequest,
) (*legalityv1alpha1.VerifyBatchResponse, error) {
	records := make([]legality.BatchRecord, 0, len(req.GetRecords()))
	for i, rec := range req.GetRecords() {
		if rec == nil {
			return nil, errors.ToGRPCError(errors.InvalidArgumentf("records[%d] is empty", i))
		}
		creature, err := convertCreature(rec.Creature)
		if err != nil {
			return nil, errors.ToGRPCError(errors.InvalidArgumentf("records[%d]: %s", i, errors.GetMessage(err)))
		}
		records = append(records, legality.BatchRecord{
			Creature:  creature,
			Encounter: convertEncounter(rec.Encounter),
		})
	}

	output, err := h.legalityService.VerifyBatch(ctx, &legality.VerifyBatchInput{Records: records})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return convertReport(output.Report), nil
}
