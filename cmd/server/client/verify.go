package client

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	legalityv1alpha1 "github.com/KirkDiggler/rpg-legality/internal/api/legality/v1alpha1"
)

var verifyFile string

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify the levels of records from a file",
	Long: `Verify reads a YAML list of records, each with a creature and its matched
encounter, and prints the level verdict of every record.`,
	RunE: runVerify,
}

func init() {
	verifyCmd.Flags().StringVar(&verifyFile, "file", "", "YAML file of records to verify")
	_ = verifyCmd.MarkFlagRequired("file")
}

// readRecords decodes a YAML record list into the wire records. Field names
// in the file match the JSON names of the wire messages.
func readRecords(path string) ([]*legalityv1alpha1.BatchRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read records file: %w", err)
	}

	var raw []map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse records file: %w", err)
	}

	doc, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to convert records: %w", err)
	}

	var records []*legalityv1alpha1.BatchRecord
	if err := json.Unmarshal(doc, &records); err != nil {
		return nil, fmt.Errorf("failed to decode records: %w", err)
	}
	return records, nil
}

func runVerify(_ *cobra.Command, _ []string) error {
	records, err := readRecords(verifyFile)
	if err != nil {
		return err
	}

	client, cleanup, err := createLegalityClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	log.Printf("Verifying %d records from %s via %s...", len(records), verifyFile, serverAddr)

	resp, err := client.VerifyBatch(ctx, &legalityv1alpha1.VerifyBatchRequest{Records: records})
	if err != nil {
		return fmt.Errorf("failed to verify records: %w", err)
	}

	if jsonOutput {
		return printJSON(resp)
	}

	fmt.Printf("scan %s started %s\n", resp.ScanId, resp.StartedAt)
	ids := make([]string, 0, len(resp.Verdicts))
	for id := range resp.Verdicts {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		v := resp.Verdicts[id]
		fmt.Printf("  %-24s %-10s %-20s %s\n", id, v.Severity, v.Code, v.Comment)
	}
	fmt.Printf("valid=%d invalid=%d suspicious=%d\n", resp.Valid, resp.Invalid, resp.Suspicious)
	return nil
}
