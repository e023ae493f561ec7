// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDebugLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, true)

	log.Debug().Str("pmid", "42").Msg("fetching")
	assert.Contains(t, buf.String(), "DBG")
	assert.Contains(t, buf.String(), "fetching")
	assert.Contains(t, buf.String(), "pmid=42")
}

func TestNewInfoLevelDropsDebug(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, false)

	log.Debug().Msg("hidden")
	assert.Empty(t, buf.String())

	log.Warn().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}
