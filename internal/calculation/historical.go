package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ReturnPreset is a canned annualized return usable in place of a
// hand-picked annual return. This is a static lookup table, not a
// market-data pipeline.
type ReturnPreset struct {
	Key          string
	Label        string
	AnnualReturn decimal.Decimal
}

// S&P 500 total-return trailing averages, annualized.
var returnPresets = []ReturnPreset{
	{Key: "sp500-10y", Label: "S&P 500, trailing 10 years", AnnualReturn: decimal.NewFromFloat(0.1212)},
	{Key: "sp500-20y", Label: "S&P 500, trailing 20 years", AnnualReturn: decimal.NewFromFloat(0.0980)},
	{Key: "sp500-30y", Label: "S&P 500, trailing 30 years", AnnualReturn: decimal.NewFromFloat(0.1010)},
	{Key: "sp500-50y", Label: "S&P 500, trailing 50 years", AnnualReturn: decimal.NewFromFloat(0.1124)},
}

// ReturnPresets returns the full preset table in display order.
func ReturnPresets() []ReturnPreset {
	out := make([]ReturnPreset, len(returnPresets))
	copy(out, returnPresets)
	return out
}

// PresetByKey looks up a preset by its key.
func PresetByKey(key string) (ReturnPreset, error) {
	for _, p := range returnPresets {
		if p.Key == key {
			return p, nil
		}
	}
	return ReturnPreset{}, fmt.Errorf("unknown return preset %q (run the historical command for the list)", key)
}
