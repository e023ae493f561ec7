// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the get-papers-list CLI. It searches
// PubMed, classifies each paper's authors, and prints the results or writes
// them to CSV.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/pdiddy/get-papers-list/internal/secrets"
	"github.com/pdiddy/get-papers-list/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// secretsDir is where NCBI credentials are read from.
const secretsDir = ".secrets/"

// loadedSecrets holds credentials loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// rootCmd searches PubMed for the query given as positional arguments.
var rootCmd = &cobra.Command{
	Use:   "get-papers-list [flags] <query>",
	Short: "Find PubMed papers with authors affiliated with companies",
	Long: `get-papers-list searches PubMed for a query, fetches each matching record,
and lists the authors whose affiliation or email points to a company rather
than an academic institution.

The query uses PubMed search syntax and may span several arguments:

  get-papers-list "cancer immunotherapy"
  get-papers-list -f results.csv cancer AND 2023[dp]

A query whose first word names a subcommand (fetch, config, version, help,
search) must follow "--" or use the search subcommand:

  get-papers-list -- version control
  get-papers-list search fetch behavior

Results are printed to the console unless --file is given.`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s := secrets.Load(secretsDir, cmd.ErrOrStderr())
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(cmd.ErrOrStderr(), "Loaded secrets: %v\n", keys)
		}
		return nil
	},
	RunE: runSearchCmd,
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./get-papers-list.yaml or ~/.config/get-papers-list/get-papers-list.yaml)")
	pf.BoolP("debug", "d", false, "print debug information during execution")
	pf.StringP("file", "f", "", "save results to this CSV file instead of printing them")
	pf.String("db", "", "also append results to this SQLite database")

	pf.Int("max-results", types.DefaultMaxResults, "maximum number of PubMed IDs to fetch")

	mustBind("debug", pf.Lookup("debug"))
	mustBind("output.file", pf.Lookup("file"))
	mustBind("output.database", pf.Lookup("db"))
	mustBind("pubmed.max_results", pf.Lookup("max-results"))

	def := types.DefaultConfig()
	viper.SetDefault("http.timeout", def.HTTP.Timeout)
	viper.SetDefault("http.user_agent", def.HTTP.UserAgent)
	viper.SetDefault("pubmed.base_url", def.PubMed.BaseURL)
	viper.SetDefault("pubmed.max_results", def.PubMed.MaxResults)
	viper.SetDefault("pubmed.tool", def.PubMed.Tool)
	viper.SetDefault("pubmed.api_key", "")
	viper.SetDefault("pubmed.email", "")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("get-papers-list")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "get-papers-list"))
		}
	}

	viper.SetEnvPrefix("GET_PAPERS_LIST")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig merges defaults, config file, environment, flags, and secrets,
// then validates the result.
func loadConfig() (types.Config, error) {
	var cfg types.Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	secrets.Apply(&cfg.PubMed, loadedSecrets)
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func mustBind(key string, flag *pflag.Flag) {
	if err := viper.BindPFlag(key, flag); err != nil {
		panic(fmt.Sprintf("binding flag for %s: %v", key, err))
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
