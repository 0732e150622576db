// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the briefcase CLI: citation
// extraction and case-law search across Singapore legal databases.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/briefcase/internal/secrets"
	"github.com/pdiddy/briefcase/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// credentialFor resolves an API key for a source: an explicit flag value
// wins, then the key file from .secrets/.
func credentialFor(sourceID, flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return secrets.CredentialFor(loadedSecrets, sourceID)
}

// rootCmd is the base command for the briefcase CLI.
var rootCmd = &cobra.Command{
	Use:   "briefcase",
	Short: "Singapore legal research from the command line",
	Long: `briefcase extracts case citations from documents and searches Singapore
legal databases: the LawNet and vLex APIs plus the free public sources
(CommonLII, the Singapore Courts judgments portal, the judiciary listing,
Singapore Law Watch, and the OGP judgments site).

Results from every source are normalized into one record shape,
deduplicated by citation, and ranked by relevance.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./briefcase.yaml or ~/.config/briefcase/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("briefcase")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "briefcase"))
		}
	}

	viper.SetEnvPrefix("BRIEFCASE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig resolves the effective configuration: defaults overlaid with
// whatever the config file or BRIEFCASE_* environment variables set.
func loadConfig() types.Config {
	cfg := types.DefaultConfig()

	if v := viper.GetDuration("search.timeout"); v > 0 {
		cfg.Search.Timeout = v
	}
	if v := viper.GetString("search.user_agent"); v != "" {
		cfg.Search.UserAgent = v
	}
	if v := viper.GetInt("search.max_results"); v > 0 {
		cfg.Search.MaxResults = v
	}
	for key, enabled := range map[string]*bool{
		"sources.lawnet":           &cfg.Search.EnableLawNet,
		"sources.vlex":             &cfg.Search.EnableVLex,
		"sources.commonlii":        &cfg.Search.EnableCommonLII,
		"sources.singapore_courts": &cfg.Search.EnableSingaporeCourts,
		"sources.judiciary":        &cfg.Search.EnableJudiciary,
		"sources.slw":              &cfg.Search.EnableSLW,
		"sources.ogp":              &cfg.Search.EnableOGP,
	} {
		if viper.IsSet(key) {
			*enabled = viper.GetBool(key)
		}
	}
	if viper.IsSet("scrape.respect_robots") {
		cfg.Scrape.RespectRobots = viper.GetBool("scrape.respect_robots")
	}
	if v := viper.GetInt64("scrape.max_body_bytes"); v > 0 {
		cfg.Scrape.MaxBodyBytes = v
	}
	if v := viper.GetDuration("scrape.robots_cache_ttl"); v > 0 {
		cfg.Scrape.RobotsCacheTTL = v
	}
	if v := viper.GetInt("server.port"); v > 0 {
		cfg.Server.Port = v
	}
	if v := viper.GetString("history.dir"); v != "" {
		cfg.History.Dir = v
	}
	if v := viper.GetInt("history.max_entries"); v > 0 {
		cfg.History.MaxEntries = v
	}
	return cfg
}

// searchTimeout bounds one CLI search end to end.
const searchTimeout = 2 * time.Minute

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
