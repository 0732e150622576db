// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/briefcase/internal/search"
)

var detailsCmd = &cobra.Command{
	Use:   "details <source> <case-id>",
	Short: "Fetch the full record of one case",
	Long: `Details fetches the full case record from a structured source (LawNet,
vLex). The scraped public sources have no per-case endpoint and return a
pointer to their website instead.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		sourceID, caseID := args[0], args[1]
		apiKey, _ := cmd.Flags().GetString("api-key")

		svc := search.NewDefaultService(loadConfig())

		ctx, cancel := context.WithTimeout(cmd.Context(), searchTimeout)
		defer cancel()

		d, err := svc.Details(ctx, sourceID, caseID, credentialFor(sourceID, apiKey))
		if err != nil {
			return err
		}

		asJSON, _ := cmd.Flags().GetBool("json")
		if asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(d)
		}

		if d.Message != "" {
			fmt.Println(d.Message)
			return nil
		}
		fmt.Printf("Title:      %s\n", d.Title)
		fmt.Printf("Citation:   %s\n", orDash(d.Citation))
		fmt.Printf("Court:      %s\n", d.Court)
		fmt.Printf("Date:       %s\n", orDash(d.Date))
		if len(d.Judges) > 0 {
			fmt.Printf("Coram:      %v\n", d.Judges)
		}
		if d.Catchwords != "" {
			fmt.Printf("Catchwords: %s\n", d.Catchwords)
		}
		if d.Summary != "" {
			fmt.Printf("\n%s\n", d.Summary)
		}
		if len(d.CitedCases) > 0 {
			fmt.Println("\nCited cases:")
			for _, c := range d.CitedCases {
				fmt.Printf("  %s\n", c)
			}
		}
		if len(d.Legislation) > 0 {
			fmt.Println("\nLegislation:")
			for _, l := range d.Legislation {
				fmt.Printf("  %s\n", l)
			}
		}
		return nil
	},
}

func init() {
	detailsCmd.Flags().String("api-key", "", "API key for authenticated sources")
	detailsCmd.Flags().Bool("json", false, "output the record as JSON")

	rootCmd.AddCommand(detailsCmd)
}
