// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pdiddy/briefcase/internal/search"
)

var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "List the registered legal sources",
	Run: func(cmd *cobra.Command, args []string) {
		svc := search.NewDefaultService(loadConfig())

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tAUTH")
		for _, info := range svc.Registry().List() {
			auth := "-"
			if info.RequiresAuth {
				auth = "API key"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\n", info.ID, info.Name, auth)
		}
		w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(sourcesCmd)
}
