// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/get-papers-list/internal/logging"
	"github.com/pdiddy/get-papers-list/internal/pipeline"
	"github.com/pdiddy/get-papers-list/internal/pubmed"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch <pmid>...",
	Short: "Fetch and classify specific PubMed IDs without searching",
	Long: `Fetch skips the search step and processes the given PubMed IDs directly.
Output follows the same rules as a search: console blocks by default, CSV
with --file, and an extra SQLite copy with --db.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		log := logging.New(cmd.ErrOrStderr(), cfg.Debug)
		client := pubmed.New(cfg.PubMed, cfg.HTTP)

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Fetching %d PubMed IDs.\n", len(args))
		result, err := pipeline.FetchAll(cmd.Context(), client, args, log)
		if err != nil {
			return err
		}
		return emit(cmd.Context(), result.Papers, cfg.Output, out, log)
	},
}

func init() {
	rootCmd.AddCommand(fetchCmd)
}
