// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/briefcase/internal/citation"
)

var extractCmd = &cobra.Command{
	Use:   "extract [file]",
	Short: "Extract case citations from a document",
	Long: `Extract scans a text document for Singapore case citations (for example
"Tan v. Lim [2023] SGCA 15") and prints them in order of first appearance,
deduplicated. Reads from stdin when no file is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var data []byte
		var err error
		if len(args) == 1 {
			data, err = os.ReadFile(args[0])
		} else {
			data, err = io.ReadAll(os.Stdin)
		}
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}

		citations := citation.Extract(string(data))

		asJSON, _ := cmd.Flags().GetBool("json")
		if asJSON {
			if citations == nil {
				citations = []string{}
			}
			out := struct {
				Total     int      `json:"total"`
				Citations []string `json:"citations"`
			}{len(citations), citations}
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		}

		if len(citations) == 0 {
			fmt.Println("No citations found.")
			return nil
		}
		for _, c := range citations {
			fmt.Println(c)
		}
		return nil
	},
}

func init() {
	extractCmd.Flags().Bool("json", false, "output citations as JSON")

	rootCmd.AddCommand(extractCmd)
}
