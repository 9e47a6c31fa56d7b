// Package main is the entry point for the legality gRPC server and its CLI
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-legality/cmd/server/client"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "rpg-legality",
	Short: "Level-up move legality gRPC server",
	Long: `rpg-legality answers level-up move legality questions for creature records
across eight generations and verifies the level data of those records.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML config file")

	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
