package v1alpha1

import (
	"strings"
	"time"

	legalityv1alpha1 "github.com/KirkDiggler/rpg-legality/internal/api/legality/v1alpha1"
	"github.com/KirkDiggler/rpg-legality/internal/engine/verifier"
	"github.com/KirkDiggler/rpg-legality/internal/entities"
	"github.com/KirkDiggler/rpg-legality/internal/entities/game"
	"github.com/KirkDiggler/rpg-legality/internal/errors"
	"github.com/KirkDiggler/rpg-legality/internal/orchestrators/legality"
)

var tradebackNames = map[string]entities.TradebackStatus{
	"":              entities.TradebackAny,
	"any":           entities.TradebackAny,
	"not_tradeback": entities.TradebackNotTradeback,
	"was_tradeback": entities.TradebackWasTradeback,
}

// parseRequestVersion resolves the release a request is pinned to. Empty means
// every release.
func parseRequestVersion(field, name string) (game.Version, error) {
	if strings.TrimSpace(name) == "" {
		return game.Any, nil
	}
	v, err := game.ParseVersion(name)
	if err != nil {
		return game.Invalid, errors.InvalidArgumentf("%s: %v", field, err)
	}
	return v, nil
}

// convertCreature maps a wire record to the domain record. An unknown origin
// release becomes game.Invalid and is reported as a malformed record.
func convertCreature(c *legalityv1alpha1.Creature) (*entities.Creature, error) {
	if c == nil {
		return nil, nil
	}

	tradeback, ok := tradebackNames[strings.ToLower(c.Tradeback)]
	if !ok {
		return nil, errors.InvalidArgumentf("creature.tradeback: unknown status %q", c.Tradeback)
	}

	version, err := game.ParseVersion(c.Version)
	if err != nil {
		version = game.Invalid
	}

	moves := make([]int, len(c.GetMoves()))
	for i, m := range c.GetMoves() {
		moves[i] = int(m)
	}

	return &entities.Creature{
		ID:                c.GetId(),
		Species:           int(c.Species),
		Form:              int(c.Form),
		CurrentLevel:      int(c.CurrentLevel),
		MetLevel:          int(c.MetLevel),
		MetLocation:       int(c.MetLocation),
		EXP:               c.Exp,
		Moves:             moves,
		Version:           version,
		Format:            int(c.Format),
		IsEgg:             c.IsEgg,
		Korean:            c.Korean,
		VirtualConsole:    c.VirtualConsole,
		Tradeback:         tradeback,
		FromActiveTrainer: c.FromActiveTrainer,
	}, nil
}

// convertEncounter maps a wire encounter to the domain descriptor
func convertEncounter(e *legalityv1alpha1.Encounter) *entities.Encounter {
	if e == nil {
		return nil
	}

	version, err := game.ParseVersion(e.Version)
	if err != nil {
		version = game.Invalid
	}

	enc := &entities.Encounter{
		Kind:     entities.EncounterKind(strings.ToLower(e.Kind)),
		Species:  int(e.Species),
		Version:  version,
		LevelMin: int(e.LevelMin),
		LevelMax: int(e.LevelMax),
	}
	if g := e.GetGift(); g != nil {
		enc.Gift = &entities.Gift{
			Generation:   int(g.Generation),
			Level:        int(g.Level),
			MetLevel:     int(g.MetLevel),
			IsEgg:        g.IsEgg,
			IsManaphyEgg: g.IsManaphyEgg,
		}
	}
	return enc
}

func convertVerdict(v verifier.Verdict) *legalityv1alpha1.Verdict {
	return &legalityv1alpha1.Verdict{
		Severity: string(v.Severity),
		Code:     v.Code,
		Comment:  v.Comment,
	}
}

func convertMoves(moves []int) []int32 {
	out := make([]int32, len(moves))
	for i, m := range moves {
		out[i] = int32(m)
	}
	return out
}

func convertReport(r *legality.ScanReport) *legalityv1alpha1.VerifyBatchResponse {
	verdicts := make(map[string]*legalityv1alpha1.Verdict, len(r.Verdicts))
	for id, v := range r.Verdicts {
		verdicts[id] = convertVerdict(v)
	}
	return &legalityv1alpha1.VerifyBatchResponse{
		ScanId:     r.ScanID,
		StartedAt:  r.StartedAt.UTC().Format(time.RFC3339),
		Verdicts:   verdicts,
		Valid:      int32(r.Valid),
		Invalid:    int32(r.Invalid),
		Suspicious: int32(r.Suspicious),
	}
}
