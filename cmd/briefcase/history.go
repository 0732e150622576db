// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pdiddy/briefcase/internal/history"
	"github.com/pdiddy/briefcase/internal/search"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect past searches",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent searches, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := history.NewStore(loadConfig().History)
		if err != nil {
			return err
		}
		defer store.Close()

		n, _ := cmd.Flags().GetInt("limit")
		entries, err := store.Recent(n)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Println("No recorded searches.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "WHEN\tRESULTS\tSOURCES\tTERM")
		for _, e := range entries {
			fmt.Fprintf(w, "%s\t%d\t%d\t%s\n",
				e.SearchedAt.Format("2006-01-02 15:04"), len(e.Results), len(e.Sources), e.Term)
		}
		return w.Flush()
	},
}

var historyShowCmd = &cobra.Command{
	Use:   "show <term>",
	Short: "Show the recorded results for a search term",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := history.NewStore(loadConfig().History)
		if err != nil {
			return err
		}
		defer store.Close()

		entry, err := store.Get(args[0])
		if err != nil {
			return err
		}

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(entry.ResultSet())
		}

		fmt.Printf("Searched %s across %v\n\n", entry.SearchedAt.Format("2006-01-02 15:04"), entry.Sources)
		printResults(search.Output{Results: entry.Results})
		return nil
	},
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all recorded searches",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := history.NewStore(loadConfig().History)
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.Clear(); err != nil {
			return err
		}
		fmt.Println("History cleared.")
		return nil
	},
}

func init() {
	historyListCmd.Flags().Int("limit", 0, "maximum entries to list")
	historyShowCmd.Flags().Bool("json", false, "emit the result set as JSON")

	historyCmd.AddCommand(historyListCmd, historyShowCmd, historyClearCmd)
	rootCmd.AddCommand(historyCmd)
}
