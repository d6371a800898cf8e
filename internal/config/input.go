package config

import (
	"fmt"
	"os"

	"github.com/mhalvorsen/investcalc/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Input bounds. The engine itself accepts any real-valued inputs;
// rejecting out-of-range values before it runs is this layer's job.
var (
	maxAmount       = decimal.NewFromInt(1_000_000)
	maxReturnRate   = decimal.NewFromFloat(0.20)
	maxIncreaseRate = decimal.NewFromFloat(0.10)
)

const (
	MaxYears    = 50
	MaxLumpSums = 5
)

// InputParser handles parsing of scenario configuration files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads and validates a YAML configuration file.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var config domain.Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfig(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfig validates a loaded configuration.
func (ip *InputParser) ValidateConfig(config *domain.Config) error {
	if len(config.Scenarios) == 0 {
		return fmt.Errorf("no scenarios provided")
	}

	seen := make(map[string]bool, len(config.Scenarios))
	for i, scenario := range config.Scenarios {
		if scenario.Name == "" {
			return fmt.Errorf("scenario %d: name is required", i)
		}
		if seen[scenario.Name] {
			return fmt.Errorf("duplicate scenario name %q", scenario.Name)
		}
		seen[scenario.Name] = true

		if err := ip.ValidatePlan(&scenario.Plan); err != nil {
			return fmt.Errorf("scenario %q validation failed: %w", scenario.Name, err)
		}
	}
	return nil
}

// ValidatePlan enforces the input ranges the interactive surfaces
// promise the engine: amounts in [0, 1,000,000], years in [1, 50],
// return rate in [0, 20%], increase and inflation rates in [0, 10%],
// at most 5 lump sums with years inside the horizon.
func (ip *InputParser) ValidatePlan(plan *domain.Plan) error {
	if err := validateAmount("initial_investment", plan.InitialInvestment); err != nil {
		return err
	}
	if err := validateAmount("monthly_contribution", plan.MonthlyContribution); err != nil {
		return err
	}
	if plan.Years < 1 || plan.Years > MaxYears {
		return fmt.Errorf("years must be between 1 and %d, got %d", MaxYears, plan.Years)
	}
	if plan.AnnualReturn.LessThan(decimal.Zero) || plan.AnnualReturn.GreaterThan(maxReturnRate) {
		return fmt.Errorf("annual_return must be between 0 and %s, got %s",
			maxReturnRate.String(), plan.AnnualReturn.String())
	}
	if plan.AnnualIncreaseRate.LessThan(decimal.Zero) || plan.AnnualIncreaseRate.GreaterThan(maxIncreaseRate) {
		return fmt.Errorf("annual_increase_rate must be between 0 and %s, got %s",
			maxIncreaseRate.String(), plan.AnnualIncreaseRate.String())
	}
	if plan.AnnualInflationRate.LessThan(decimal.Zero) || plan.AnnualInflationRate.GreaterThan(maxIncreaseRate) {
		return fmt.Errorf("annual_inflation_rate must be between 0 and %s, got %s",
			maxIncreaseRate.String(), plan.AnnualInflationRate.String())
	}

	if len(plan.LumpSums) > MaxLumpSums {
		return fmt.Errorf("at most %d lump sums are supported, got %d", MaxLumpSums, len(plan.LumpSums))
	}
	for i, ls := range plan.LumpSums {
		if ls.Year < 1 || ls.Year > plan.Years {
			return fmt.Errorf("lump sum %d: year must be between 1 and %d, got %d", i+1, plan.Years, ls.Year)
		}
		if err := validateAmount(fmt.Sprintf("lump sum %d amount", i+1), ls.Amount); err != nil {
			return err
		}
	}

	if plan.Anchor != nil {
		if plan.Anchor.StartMonth < 1 || plan.Anchor.StartMonth > 12 {
			return fmt.Errorf("anchor start_month must be between 1 and 12, got %d", plan.Anchor.StartMonth)
		}
	}
	return nil
}

func validateAmount(field string, amount decimal.Decimal) error {
	if amount.LessThan(decimal.Zero) {
		return fmt.Errorf("%s cannot be negative, got %s", field, amount.String())
	}
	if amount.GreaterThan(maxAmount) {
		return fmt.Errorf("%s cannot exceed %s, got %s", field, maxAmount.String(), amount.String())
	}
	return nil
}
