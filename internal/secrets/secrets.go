// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets loads NCBI credentials from a directory of plain-text
// files, one value per file, named after the key.
package secrets

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/get-papers-list/pkg/types"
)

// Key file names.
const (
	NCBIAPIKey = "ncbi-api-key"
	NCBIEmail  = "ncbi-email"
)

// Keys lists the files Load looks for. Anything else in the directory is
// ignored.
var Keys = []string{NCBIAPIKey, NCBIEmail}

// Load reads each of Keys from dir and returns the non-empty trimmed values.
// Missing files and a missing directory are not errors. A file that exists
// but cannot be read is reported on w and skipped.
func Load(dir string, w io.Writer) map[string]string {
	found := make(map[string]string, len(Keys))
	for _, key := range Keys {
		data, err := os.ReadFile(filepath.Join(dir, key))
		switch {
		case errors.Is(err, fs.ErrNotExist):
			continue
		case err != nil:
			fmt.Fprintf(w, "warning: could not read secret %s: %v\n", key, err)
			continue
		}
		if v := strings.TrimSpace(string(data)); v != "" {
			found[key] = v
		}
	}
	return found
}

// Apply fills the API key and contact email from s where cfg leaves them
// empty. Configured values always win.
func Apply(cfg *types.PubMedConfig, s map[string]string) {
	if cfg.APIKey == "" {
		cfg.APIKey = s[NCBIAPIKey]
	}
	if cfg.Email == "" {
		cfg.Email = s[NCBIEmail]
	}
}
