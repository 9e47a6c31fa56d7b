// Package client provides commands that call a running legality server
package client

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	legalityv1alpha1 "github.com/KirkDiggler/rpg-legality/internal/api/legality/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
	jsonOutput bool
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Client commands for the legality service",
	Long:  `Client commands query a running legality server over gRPC.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")
	ClientCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	ClientCmd.AddCommand(resolveCmd)
	ClientCmd.AddCommand(movesCmd)
	ClientCmd.AddCommand(encounterCmd)
	ClientCmd.AddCommand(verifyCmd)
}

// createLegalityClient creates a legality service client
func createLegalityClient() (legalityv1alpha1.LegalityServiceClient, func(), error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return legalityv1alpha1.NewLegalityServiceClient(conn), cleanup, nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// creatureFlags are the record fields shared by resolve and moves
type creatureFlags struct {
	id        string
	species   int32
	form      int32
	level     int32
	metLevel  int32
	version   string
	format    int32
	korean    bool
	vc        bool
	tradeback string
}

func (f *creatureFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.id, "id", "", "Record ID")
	cmd.Flags().Int32Var(&f.species, "species", 0, "Species ID")
	cmd.Flags().Int32Var(&f.form, "form", 0, "Form index")
	cmd.Flags().Int32Var(&f.level, "level", 100, "Current level")
	cmd.Flags().Int32Var(&f.metLevel, "met-level", 0, "Met level")
	cmd.Flags().StringVar(&f.version, "origin", "", "Origin release of the record")
	cmd.Flags().Int32Var(&f.format, "format", 8, "Format the record lives in")
	cmd.Flags().BoolVar(&f.korean, "korean", false, "Record comes from a Korean release")
	cmd.Flags().BoolVar(&f.vc, "virtual-console", false, "Record was transferred from a virtual console release")
	cmd.Flags().StringVar(&f.tradeback, "tradeback", "", "Tradeback status: any, not_tradeback, was_tradeback")
	_ = cmd.MarkFlagRequired("species")
	_ = cmd.MarkFlagRequired("origin")
}

func (f *creatureFlags) creature() *legalityv1alpha1.Creature {
	return &legalityv1alpha1.Creature{
		Id:                f.id,
		Species:           f.species,
		Form:              f.form,
		CurrentLevel:      f.level,
		MetLevel:          f.metLevel,
		Version:           f.version,
		Format:            f.format,
		Korean:            f.korean,
		VirtualConsole:    f.vc,
		Tradeback:         f.tradeback,
		FromActiveTrainer: true,
	}
}
