package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Plan is the immutable set of inputs to a projection. All monetary
// amounts and rates are decimals; rates are fractional (0.08 = 8%).
type Plan struct {
	InitialInvestment   decimal.Decimal `yaml:"initial_investment" json:"initialInvestment"`
	MonthlyContribution decimal.Decimal `yaml:"monthly_contribution" json:"monthlyContribution"`
	Years               int             `yaml:"years" json:"years"`
	AnnualReturn        decimal.Decimal `yaml:"annual_return" json:"annualReturn"`
	AnnualIncreaseRate  decimal.Decimal `yaml:"annual_increase_rate" json:"annualIncreaseRate"`
	AnnualInflationRate decimal.Decimal `yaml:"annual_inflation_rate" json:"annualInflationRate"`
	LumpSums            []LumpSum       `yaml:"lump_sums" json:"lumpSums,omitempty"`

	// Anchor labels the monthly series with calendar dates. It never
	// affects the arithmetic. Nil means month 1 of year 0.
	Anchor *CalendarAnchor `yaml:"anchor" json:"anchor,omitempty"`
}

// LumpSum is a one-time contribution posted at the end of a plan year.
// Multiple lump sums in the same year all apply.
type LumpSum struct {
	Year   int             `yaml:"year" json:"year"`
	Amount decimal.Decimal `yaml:"amount" json:"amount"`
}

// CalendarAnchor maps plan month 1 to a calendar month and year.
type CalendarAnchor struct {
	StartMonth int `yaml:"start_month" json:"startMonth"`
	StartYear  int `yaml:"start_year" json:"startYear"`
}

// DefaultAnchor is used when a plan carries no anchor, so monthly
// calendar labels are always derivable.
var DefaultAnchor = CalendarAnchor{StartMonth: 1, StartYear: 0}

// EffectiveAnchor returns the plan's anchor, or DefaultAnchor.
func (p Plan) EffectiveAnchor() CalendarAnchor {
	if p.Anchor != nil {
		return *p.Anchor
	}
	return DefaultAnchor
}

// Months returns the number of monthly compounding periods.
func (p Plan) Months() int {
	return p.Years * 12
}

// CacheKey returns a stable string identity for the parameter tuple.
// Projections have no identity beyond the plan that produced them, so
// callers that want memoization key their cache on this.
func (p Plan) CacheKey() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s|%s|%d|%s|%s|%s",
		p.InitialInvestment.String(),
		p.MonthlyContribution.String(),
		p.Years,
		p.AnnualReturn.String(),
		p.AnnualIncreaseRate.String(),
		p.AnnualInflationRate.String(),
	)
	for _, ls := range p.LumpSums {
		fmt.Fprintf(&sb, "|%d:%s", ls.Year, ls.Amount.String())
	}
	anchor := p.EffectiveAnchor()
	fmt.Fprintf(&sb, "|%d-%d", anchor.StartMonth, anchor.StartYear)
	return sb.String()
}

// Scenario is a named plan for comparisons and config files.
type Scenario struct {
	Name string `yaml:"name" json:"name"`
	Plan Plan   `yaml:"plan" json:"plan"`
}

// Config is the top-level structure of an input file.
type Config struct {
	Scenarios []Scenario `yaml:"scenarios" json:"scenarios"`
}

// ScenarioByName returns the named scenario, or an error listing the
// available names.
func (c *Config) ScenarioByName(name string) (*Scenario, error) {
	for i := range c.Scenarios {
		if c.Scenarios[i].Name == name {
			return &c.Scenarios[i], nil
		}
	}
	names := make([]string, 0, len(c.Scenarios))
	for _, s := range c.Scenarios {
		names = append(names, s.Name)
	}
	return nil, fmt.Errorf("scenario %q not found (available: %s)", name, strings.Join(names, ", "))
}
