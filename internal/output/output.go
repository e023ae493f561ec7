// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package output renders papers for the console or as a CSV table. Both
// formats use the column order from types.Columns.
package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/get-papers-list/pkg/types"
)

// ruleWidth is the length of the dashed line after each console block.
const ruleWidth = 50

// FormatConsole writes one key-value block per paper to w.
func FormatConsole(papers []types.Paper, w io.Writer) {
	if len(papers) == 0 {
		fmt.Fprintln(w, "No results to display.")
		return
	}

	fmt.Fprintln(w, "Contents of results:")
	for i, p := range papers {
		fmt.Fprintf(w, "\nArticle %d\n", i+1)
		for _, c := range types.Columns {
			fmt.Fprintf(w, "%s: %s\n", c.Header, c.Value(p))
		}
		fmt.Fprintln(w, strings.Repeat("-", ruleWidth))
	}
}

// FormatCSV writes a header row followed by one row per paper.
func FormatCSV(papers []types.Paper, w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(types.Headers()); err != nil {
		return err
	}
	for _, p := range papers {
		if err := cw.Write(p.Row()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCSVFile writes papers to path, replacing any existing file, and
// returns the absolute path written. The file appears only once complete.
func WriteCSVFile(path string, papers []types.Paper) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", path, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(abs), ".get-papers-list-*.tmp")
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return "", fmt.Errorf("setting file mode: %w", err)
	}
	if err := FormatCSV(papers, tmp); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return "", fmt.Errorf("writing CSV: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpPath, abs); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("renaming temp file: %w", err)
	}
	return abs, nil
}
