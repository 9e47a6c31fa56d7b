package client

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	legalityv1alpha1 "github.com/KirkDiggler/rpg-legality/internal/api/legality/v1alpha1"
)

var (
	resolveCreature   creatureFlags
	resolveMove       int32
	resolveGeneration int32
	resolvePin        string
)

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Check whether a record can learn a move by level-up",
	Long:  `Resolve a level-up move for a record in one generation, optionally pinned to a release.`,
	RunE:  runResolve,
}

func init() {
	resolveCreature.register(resolveCmd)
	resolveCmd.Flags().Int32Var(&resolveMove, "move", 0, "Move ID")
	resolveCmd.Flags().Int32Var(&resolveGeneration, "generation", 0, "Generation to resolve in")
	resolveCmd.Flags().StringVar(&resolvePin, "release", "", "Release to pin the query to")
	_ = resolveCmd.MarkFlagRequired("move")
	_ = resolveCmd.MarkFlagRequired("generation")
}

func runResolve(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createLegalityClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	log.Printf("Resolving move %d for species %d in generation %d via %s...",
		resolveMove, resolveCreature.species, resolveGeneration, serverAddr)

	resp, err := client.ResolveLevelUp(ctx, &legalityv1alpha1.ResolveLevelUpRequest{
		Creature:   resolveCreature.creature(),
		Move:       resolveMove,
		Generation: resolveGeneration,
		Version:    resolvePin,
	})
	if err != nil {
		return fmt.Errorf("failed to resolve level-up move: %w", err)
	}

	if jsonOutput {
		return printJSON(resp)
	}

	switch {
	case resp.Reason != "":
		fmt.Printf("%s: %s\n", resp.Outcome, resp.Reason)
	case resp.Learnable:
		fmt.Printf("learnable at level %d (%s)\n", resp.Level, resp.Version)
	default:
		fmt.Println("not learnable by level-up")
	}
	return nil
}
