// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/pdiddy/get-papers-list/internal/logging"
	"github.com/pdiddy/get-papers-list/internal/output"
	"github.com/pdiddy/get-papers-list/internal/pipeline"
	"github.com/pdiddy/get-papers-list/internal/pubmed"
	"github.com/pdiddy/get-papers-list/internal/store"
	"github.com/pdiddy/get-papers-list/pkg/types"
)

// searchCmd runs the same search as the root command. Every argument is
// part of the query, including words that name other subcommands.
var searchCmd = &cobra.Command{
	Use:   "search <query>...",
	Short: "Search PubMed; all arguments form the query",
	Args:  cobra.ArbitraryArgs,
	RunE:  runSearchCmd,
}

func init() {
	rootCmd.AddCommand(searchCmd)
}

func runSearchCmd(cmd *cobra.Command, args []string) error {
	query := strings.TrimSpace(strings.Join(args, " "))
	if query == "" {
		return cmd.Help()
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := logging.New(cmd.ErrOrStderr(), cfg.Debug)
	client := pubmed.New(cfg.PubMed, cfg.HTTP)

	return runSearch(cmd.Context(), client, query, cfg, cmd.OutOrStdout(), log)
}

// runSearch announces the query, runs the batch, and hands the papers to
// the configured sinks.
func runSearch(ctx context.Context, src pipeline.Source, query string, cfg types.Config, w io.Writer, log zerolog.Logger) error {
	if cfg.Debug {
		fmt.Fprintf(w, "Debug mode enabled. Searching for papers on: %s\n", query)
	} else {
		fmt.Fprintf(w, "Searching for papers on: %s\n", query)
	}

	result, err := pipeline.Run(ctx, src, query, cfg.PubMed.MaxResults, log)
	if err != nil {
		return err
	}
	return emit(ctx, result.Papers, cfg.Output, w, log)
}

// emit writes papers to the CSV file or the console, then to the database
// when one is configured.
func emit(ctx context.Context, papers []types.Paper, out types.OutputConfig, w io.Writer, log zerolog.Logger) error {
	if len(papers) == 0 {
		fmt.Fprintln(w, "No results to save.")
		return nil
	}

	if out.File != "" {
		fmt.Fprintf(w, "Saving %d results to %s.\n", len(papers), out.File)
		abs, err := output.WriteCSVFile(out.File, papers)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "Results saved to %s\n", abs)
	} else {
		fmt.Fprintln(w, "Results:")
		output.FormatConsole(papers, w)
	}

	if out.Database == "" {
		return nil
	}
	db, err := store.Open(out.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	runID, err := db.Save(ctx, papers)
	if err != nil {
		return err
	}
	log.Info().Str("run_id", runID).Str("database", out.Database).
		Msgf("Stored %d results", len(papers))
	return nil
}
