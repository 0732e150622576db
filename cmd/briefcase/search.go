// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pdiddy/briefcase/internal/citation"
	"github.com/pdiddy/briefcase/internal/history"
	"github.com/pdiddy/briefcase/internal/search"
	"github.com/pdiddy/briefcase/pkg/types"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search Singapore legal databases for cases",
	Long: `Search queries one or all registered legal sources for cases matching the
query, merges and deduplicates the results, and prints them ranked by
relevance.

With --file, the document is scanned for case citations first and each
extracted citation is searched in turn.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().String("source", "", "search a single source (e.g. lawnet, commonlii)")
	searchCmd.Flags().StringSlice("sources", nil, "search a subset of sources (comma-separated ids)")
	searchCmd.Flags().String("api-key", "", "API key for authenticated sources")
	searchCmd.Flags().String("file", "", "extract citations from this document and search each one")
	searchCmd.Flags().Int("limit", 0, "maximum results per source")
	searchCmd.Flags().String("from", "", "decision date range start (YYYY-MM-DD)")
	searchCmd.Flags().String("to", "", "decision date range end (YYYY-MM-DD)")
	searchCmd.Flags().String("court", "", "restrict to a court (structured sources only)")
	searchCmd.Flags().Bool("json", false, "output results as JSON")
	searchCmd.Flags().String("out", "", "save the search and its results to a YAML file")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	file, _ := cmd.Flags().GetString("file")
	if file == "" && len(args) == 0 {
		return fmt.Errorf("provide a query or --file")
	}

	var queries []string
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("reading document: %w", err)
		}
		queries = citation.Extract(string(data))
		if len(queries) == 0 {
			fmt.Println("No citations found in document.")
			return nil
		}
		fmt.Fprintf(os.Stderr, "Extracted %d citation(s) from %s\n", len(queries), file)
	} else {
		queries = []string{args[0]}
	}

	cfg := loadConfig()
	svc := search.NewDefaultService(cfg)

	hist, err := history.NewStore(cfg.History)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: history unavailable: %v\n", err)
	} else {
		defer hist.Close()
	}

	sourceID, _ := cmd.Flags().GetString("source")
	sourceIDs, _ := cmd.Flags().GetStringSlice("sources")
	apiKey, _ := cmd.Flags().GetString("api-key")
	limit, _ := cmd.Flags().GetInt("limit")
	from, _ := cmd.Flags().GetString("from")
	to, _ := cmd.Flags().GetString("to")
	court, _ := cmd.Flags().GetString("court")
	asJSON, _ := cmd.Flags().GetBool("json")
	outPath, _ := cmd.Flags().GetString("out")

	for i, query := range queries {
		req := search.Request{
			Query:      query,
			Credential: apiKey,
			Filters: types.SearchFilters{
				Limit:    limit,
				DateFrom: from,
				DateTo:   to,
				Court:    court,
			},
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), searchTimeout)
		out, searched, err := dispatch(ctx, svc, sourceID, sourceIDs, req)
		cancel()
		if err != nil {
			return err
		}

		if hist != nil {
			entry := history.Entry{Term: query, Sources: searched, Results: out.Results}
			if recErr := hist.Record(entry); recErr != nil {
				fmt.Fprintf(os.Stderr, "warning: could not record history: %v\n", recErr)
			}
		}

		if i > 0 {
			fmt.Println()
		}
		if len(queries) > 1 {
			fmt.Printf("== %s ==\n", query)
		}
		if asJSON {
			if err := printJSON(out); err != nil {
				return err
			}
		} else {
			printResults(out)
		}

		if outPath != "" {
			path := outPath
			if len(queries) > 1 {
				path = numberedPath(outPath, i+1)
			}
			if err := search.WriteQueryFile(path, req, searched, out); err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "Saved to %s\n", path)
		}
	}
	return nil
}

// dispatch runs the query against one source or fans out, returning the
// output and the list of sources searched.
func dispatch(ctx context.Context, svc *search.Service, sourceID string, sourceIDs []string, req search.Request) (search.Output, []string, error) {
	if sourceID != "" && sourceID != "all" {
		req.Credential = credentialFor(sourceID, req.Credential)
		results, err := svc.Search(ctx, sourceID, req)
		if err != nil {
			return search.Output{}, nil, err
		}
		return search.Output{Results: results}, []string{sourceID}, nil
	}

	if req.Credential == "" {
		// Fan-out reaches the authenticated sources too; fall back to the
		// stored LawNet key.
		req.Credential = credentialFor(search.SourceLawNet, "")
	}
	out, err := svc.SearchAll(ctx, sourceIDs, req)
	if err != nil {
		return search.Output{}, nil, err
	}
	searched := sourceIDs
	if len(searched) == 0 {
		for _, info := range svc.Registry().List() {
			searched = append(searched, info.ID)
		}
	}
	return out, searched, nil
}

func printJSON(out search.Output) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(struct {
		TotalResults int                  `json:"totalResults"`
		Results      []types.CaseResult   `json:"results"`
		SourceErrors []search.SourceError `json:"sourceErrors,omitempty"`
	}{len(out.Results), out.Results, out.SourceErrors})
}

func printResults(out search.Output) {
	for _, se := range out.SourceErrors {
		fmt.Fprintf(os.Stderr, "warning: %s: %s\n", se.Source, se.Error)
	}
	if len(out.Results) == 0 {
		fmt.Println("No results.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SCORE\tCITATION\tCOURT\tDATE\tSOURCE\tTITLE")
	for _, r := range out.Results {
		fmt.Fprintf(w, "%.0f\t%s\t%s\t%s\t%s\t%s\n",
			r.RelevanceScore, orDash(r.Citation), r.Court, orDash(r.Date), r.Source, truncate(r.Title, 60))
	}
	w.Flush()
	fmt.Printf("\n%d result(s)\n", len(out.Results))
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}

// numberedPath inserts an index before the extension: results.yaml with
// index 2 becomes results.2.yaml.
func numberedPath(path string, i int) string {
	if dot := strings.LastIndex(path, "."); dot > 0 {
		return fmt.Sprintf("%s.%d%s", path[:dot], i, path[dot:])
	}
	return fmt.Sprintf("%s.%d", path, i)
}
