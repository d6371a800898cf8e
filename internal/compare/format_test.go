package compare

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/mhalvorsen/investcalc/internal/calculation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testComparisonSet(t *testing.T) *ComparisonSet {
	t.Helper()
	ce := NewCompareEngine(calculation.NewEngine())
	set, err := ce.Compare(context.Background(), testConfig(), CompareOptions{
		BaseScenarioName: "baseline",
		ConfigPath:       "scenarios.yaml",
	})
	require.NoError(t, err)
	return set
}

func TestTableFormatter(t *testing.T) {
	out := (&TableFormatter{}).Format(testComparisonSet(t))

	assert.Contains(t, out, "INVESTMENT SCENARIO COMPARISON")
	assert.Contains(t, out, "Base Scenario: baseline")
	assert.Contains(t, out, "Configuration: scenarios.yaml")
	assert.Contains(t, out, "baseline (base)")
	assert.Contains(t, out, "aggressive")
	assert.Contains(t, out, "COMPARISON TO BASE")
	assert.Contains(t, out, "Highest final value: aggressive")
}

func TestTableFormatter_DeltaSigns(t *testing.T) {
	out := (&TableFormatter{}).Format(testComparisonSet(t))

	assert.Contains(t, out, "Final Value:    +$", "aggressive gains over the base")
	assert.Contains(t, out, "Final Value:    -$", "frugal trails the base")
}

func TestCSVFormatter(t *testing.T) {
	out, err := (&CSVFormatter{}).Format(testComparisonSet(t))
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4, "header, base, two alternatives")

	assert.Equal(t, "Scenario", records[0][0])
	assert.Equal(t, []string{"baseline", "base"}, records[1][:2])
	assert.Equal(t, "alternative", records[2][1])
	assert.Equal(t, "0.00", records[1][6], "base has no diff from itself")
}

func TestJSONFormatter(t *testing.T) {
	out, err := (&JSONFormatter{Pretty: true}).Format(testComparisonSet(t))
	require.NoError(t, err)

	var decoded ComparisonSet
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "baseline", decoded.BaseScenarioName)
	require.Len(t, decoded.AlternativeResults, 2)
	assert.Equal(t, "aggressive", decoded.AlternativeResults[0].ScenarioName)
}
