package domain

import (
	"time"
)

// AnnualPoint is one year of the annual equity series. Year 0 is "now".
// Monetary fields are rounded to whole currency units.
type AnnualPoint struct {
	Year        int     `json:"year"`
	HomeValue   float64 `json:"homeValue"`
	LoanBalance float64 `json:"loanBalance"`
	Equity      float64 `json:"equity"`
	CashFlow    float64 `json:"cashFlow"` // pre-tax
	TaxBenefit  float64 `json:"taxBenefit"`
}

// MonthlyPoint is one month of the 10-year monthly cash-flow series
type MonthlyPoint struct {
	Month       int     `json:"month"`
	Label       string  `json:"label,omitempty"`
	Income      float64 `json:"income"`
	Expenses    float64 `json:"expenses"`
	Net         float64 `json:"net"`
	TaxBenefit  float64 `json:"taxBenefit"`
	AdjustedNet float64 `json:"adjustedNet"` // net + taxBenefit
	Cumulative  float64 `json:"cumulative"`
	LoanBalance float64 `json:"loanBalance"`
}

// ScenarioDefinition names a rate offset applied to the projection
type ScenarioDefinition struct {
	Name       string  `yaml:"name" json:"name"`
	RateOffset float64 `yaml:"rate_offset" json:"rateOffset"`
}

// CashFlowStats summarizes the monthly adjusted net cash flow of a scenario
type CashFlowStats struct {
	MeanAdjustedNet   float64 `json:"meanAdjustedNet"`
	MedianAdjustedNet float64 `json:"medianAdjustedNet"`
	StdDevAdjustedNet float64 `json:"stdDevAdjustedNet"`
	MinAdjustedNet    float64 `json:"minAdjustedNet"`
	MaxAdjustedNet    float64 `json:"maxAdjustedNet"`
	TotalTaxBenefit   float64 `json:"totalTaxBenefit"`
}

// BreakEvenResult is the point where cumulative cash flow first turns non-negative
type BreakEvenResult struct {
	Month           int     `json:"month"`
	FractionalMonth float64 `json:"fractionalMonth"`
	Years           float64 `json:"years"`
}

// ScenarioProjection bundles both series for one scenario
type ScenarioProjection struct {
	Scenario  ScenarioDefinition `json:"scenario"`
	Annual    []AnnualPoint      `json:"annual"`
	Monthly   []MonthlyPoint     `json:"monthly"`
	Stats     CashFlowStats      `json:"stats"`
	BreakEven *BreakEvenResult   `json:"breakEven,omitempty"`
}

// SummaryCards are the four headline figures shown on the dashboard
type SummaryCards struct {
	Equity             float64 `json:"equity"`
	EquityDeltaMonthly float64 `json:"equityDeltaMonthly"`
	MonthCashFlow      float64 `json:"monthCashFlow"`
	RunningBalance     float64 `json:"runningBalance"`
}

// ResolvedValue is a starting value together with where it came from
type ResolvedValue struct {
	Value  float64 `json:"value"`
	Source string  `json:"source"`
}

// Value sources reported by the resolver
const (
	SourceStored    = "stored"
	SourceOverride  = "override"
	SourceAmortized = "amortized"
)

// DashboardReport is the full computed view handed to formatters
type DashboardReport struct {
	ID          string               `json:"id"`
	GeneratedAt time.Time            `json:"generatedAt"`
	AsOf        time.Time            `json:"asOf"`
	Property    PropertyAssumptions  `json:"property"`
	Owner       string               `json:"owner,omitempty"`
	Share       float64              `json:"share"`
	Scaled      bool                 `json:"scaled"`
	HomeValue   ResolvedValue        `json:"homeValue"`
	LoanBalance ResolvedValue        `json:"loanBalance"`
	MonthlyPI   float64              `json:"monthlyPI"`
	Summary     SummaryCards         `json:"summary"`
	Scenarios   []ScenarioProjection `json:"scenarios"`
}

// Scenario returns the projection with the given name
func (r *DashboardReport) Scenario(name string) (*ScenarioProjection, bool) {
	for i := range r.Scenarios {
		if r.Scenarios[i].Scenario.Name == name {
			return &r.Scenarios[i], true
		}
	}
	return nil, false
}
