package client

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	legalityv1alpha1 "github.com/KirkDiggler/rpg-legality/internal/api/legality/v1alpha1"
)

var (
	encounterSpecies int32
	encounterForm    int32
	encounterLevel   int32
	encounterVersion string
)

var encounterCmd = &cobra.Command{
	Use:   "encounter",
	Short: "Show the default moveset of a wild encounter",
	Long:  `Show the four moves a species knows when met at a level in a release.`,
	RunE:  runEncounter,
}

func init() {
	encounterCmd.Flags().Int32Var(&encounterSpecies, "species", 0, "Species ID")
	encounterCmd.Flags().Int32Var(&encounterForm, "form", 0, "Form index")
	encounterCmd.Flags().Int32Var(&encounterLevel, "level", 0, "Encounter level")
	encounterCmd.Flags().StringVar(&encounterVersion, "release", "", "Release of the encounter")
	_ = encounterCmd.MarkFlagRequired("species")
	_ = encounterCmd.MarkFlagRequired("level")
	_ = encounterCmd.MarkFlagRequired("release")
}

func runEncounter(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createLegalityClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	log.Printf("Requesting encounter moves for species %d at level %d in %s via %s...",
		encounterSpecies, encounterLevel, encounterVersion, serverAddr)

	resp, err := client.EncounterMoves(ctx, &legalityv1alpha1.EncounterMovesRequest{
		Species: encounterSpecies,
		Form:    encounterForm,
		Level:   encounterLevel,
		Version: encounterVersion,
	})
	if err != nil {
		return fmt.Errorf("failed to get encounter moves: %w", err)
	}

	if jsonOutput {
		return printJSON(resp)
	}
	fmt.Printf("moves: %v\n", resp.Moves)
	return nil
}
