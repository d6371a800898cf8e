package calculation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReturnPresets(t *testing.T) {
	presets := ReturnPresets()
	require.Len(t, presets, 4)

	seen := make(map[string]bool)
	for _, p := range presets {
		assert.False(t, seen[p.Key], "duplicate preset key %s", p.Key)
		seen[p.Key] = true
		assert.True(t, p.AnnualReturn.IsPositive())
	}

	// The returned slice is a copy; mutating it must not leak into
	// the table.
	presets[0].Key = "mutated"
	assert.NotEqual(t, "mutated", ReturnPresets()[0].Key)
}

func TestPresetByKey(t *testing.T) {
	p, err := PresetByKey("sp500-10y")
	require.NoError(t, err)
	assert.Equal(t, "sp500-10y", p.Key)

	_, err = PresetByKey("nasdaq-100y")
	assert.Error(t, err)
}
