// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline drives one batch: search PubMed for IDs, fetch each
// record, parse it, and collect the normalized papers. A record that cannot
// be fetched or parsed is skipped and counted; the batch carries on.
package pipeline

import (
	"bytes"
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/pdiddy/get-papers-list/internal/record"
	"github.com/pdiddy/get-papers-list/pkg/types"
)

// Searcher returns PubMed IDs for a free-text query.
type Searcher interface {
	Search(ctx context.Context, query string, maxResults int) ([]string, error)
}

// Fetcher returns the raw efetch document for one PubMed ID.
type Fetcher interface {
	Fetch(ctx context.Context, pmid string) ([]byte, error)
}

// Source is both a Searcher and a Fetcher, as pubmed.Client is.
type Source interface {
	Searcher
	Fetcher
}

// BatchResult holds the outcome of a batch run.
type BatchResult struct {
	// IDs are the PubMed IDs the batch attempted, in order.
	IDs []string

	// Papers are the parsed results, in the same relative order as IDs.
	Papers []types.Paper

	FetchFailed int
	ParseFailed int
}

// Total returns the number of IDs processed.
func (r BatchResult) Total() int {
	return len(r.IDs)
}

// Skipped returns the number of IDs that produced no paper.
func (r BatchResult) Skipped() int {
	return r.FetchFailed + r.ParseFailed
}

// Run searches for query and processes every returned ID. Only a search
// failure or a cancelled context ends the run with an error.
func Run(ctx context.Context, src Source, query string, maxResults int, log zerolog.Logger) (BatchResult, error) {
	ids, err := src.Search(ctx, query, maxResults)
	if err != nil {
		return BatchResult{}, err
	}
	log.Debug().Int("count", len(ids)).Msgf("Found %d PubMed IDs.", len(ids))

	return FetchAll(ctx, src, ids, log)
}

// FetchAll fetches and parses each ID in turn.
func FetchAll(ctx context.Context, f Fetcher, ids []string, log zerolog.Logger) (BatchResult, error) {
	result := BatchResult{IDs: ids}

	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		log.Debug().Str("pmid", id).Msgf("Fetching details for PubMed ID: %s", id)
		raw, err := f.Fetch(ctx, id)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return result, ctxErr
			}
			log.Debug().Err(err).Str("pmid", id).Msgf("Failed to fetch details for PubMed ID: %s", id)
			result.FetchFailed++
			continue
		}

		paper, err := record.ParseXML(bytes.NewReader(raw))
		if err != nil {
			var pe *record.ParseError
			if errors.As(err, &pe) {
				pe.PMID = id
			}
			log.Debug().Err(err).Str("pmid", id).Msg("skipping record")
			result.ParseFailed++
			continue
		}
		result.Papers = append(result.Papers, paper)
	}

	log.Debug().
		Int("parsed", len(result.Papers)).
		Int("fetch_failed", result.FetchFailed).
		Int("parse_failed", result.ParseFailed).
		Msgf("batch summary: %d parsed, %d skipped (total: %d)",
			len(result.Papers), result.Skipped(), result.Total())
	return result, nil
}
