package draft

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tidraft/tidraft/internal/apperr"
)

func TestBuildPoolRequiresBase(t *testing.T) {
	_, err := BuildPool(ModeConfig{IncludeBase: false, IncludePok: true})
	require.Error(t, err)
	assert.Equal(t, apperr.Configuration, apperr.KindOf(err))
}

func TestBuildPoolBaseOnly(t *testing.T) {
	pool, err := BuildPool(ModeConfig{IncludeBase: true})
	require.NoError(t, err)

	for _, f := range pool {
		assert.Equal(t, SourceBase, f.Source, "faction %s has disabled source", f.ID)
	}

	// Every base faction from the catalog appears exactly once.
	seen := make(map[string]int)
	for _, f := range pool {
		seen[f.ID]++
	}
	for _, f := range Factions {
		if f.Source == SourceBase {
			assert.Equal(t, 1, seen[f.ID], "base faction %s missing or duplicated", f.ID)
		}
	}
	assert.Len(t, pool, len(seen))
}

func TestBuildPoolEnabledSourcesOnly(t *testing.T) {
	mode := ModeConfig{IncludeBase: true, IncludePok: true, IncludeCodex2: true}
	pool, err := BuildPool(mode)
	require.NoError(t, err)

	enabled := mode.EnabledSources()
	count := 0
	for _, f := range Factions {
		if enabled[f.Source] {
			count++
		}
	}
	require.Len(t, pool, count)
	for _, f := range pool {
		assert.True(t, enabled[f.Source], "faction %s from disabled source %s", f.ID, f.Source)
		assert.NotEqual(t, SourceCodex1, f.Source)
	}
}

func TestBuildPoolPreservesCatalogOrder(t *testing.T) {
	pool, err := BuildPool(ModeConfig{IncludeBase: true, IncludePok: true, IncludeCodex1: true, IncludeCodex2: true})
	require.NoError(t, err)
	require.Equal(t, Factions, pool)
}
