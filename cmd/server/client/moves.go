package client

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	legalityv1alpha1 "github.com/KirkDiggler/rpg-legality/internal/api/legality/v1alpha1"
)

var (
	movesCreature   creatureFlags
	movesGeneration int32
	movesPin        string
	movesReminder   bool
)

var movesCmd = &cobra.Command{
	Use:   "moves",
	Short: "List the level-up moves of a record",
	Long:  `List every move a record can learn by level-up in one generation, in table order.`,
	RunE:  runMoves,
}

func init() {
	movesCreature.register(movesCmd)
	movesCmd.Flags().Int32Var(&movesGeneration, "generation", 0, "Generation to list")
	movesCmd.Flags().StringVar(&movesPin, "release", "", "Release to pin the listing to")
	movesCmd.Flags().BoolVar(&movesReminder, "reminder", false, "Include moves above the current level the move reminder can teach")
	_ = movesCmd.MarkFlagRequired("generation")
}

func runMoves(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createLegalityClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	log.Printf("Listing level-up moves for species %d in generation %d via %s...",
		movesCreature.species, movesGeneration, serverAddr)

	resp, err := client.ListLevelUpMoves(ctx, &legalityv1alpha1.ListLevelUpMovesRequest{
		Creature:     movesCreature.creature(),
		Generation:   movesGeneration,
		Version:      movesPin,
		MoveReminder: movesReminder,
	})
	if err != nil {
		return fmt.Errorf("failed to list level-up moves: %w", err)
	}

	if jsonOutput {
		return printJSON(resp)
	}

	if resp.Reason != "" {
		fmt.Printf("%s: %s\n", resp.Outcome, resp.Reason)
		return nil
	}
	fmt.Printf("%d moves: %v\n", len(resp.Moves), resp.Moves)
	return nil
}
