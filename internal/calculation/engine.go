package calculation

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/propeq/equity-dashboard/internal/domain"
)

// ErrUnknownScenario is returned when a scenario name is not defined
var ErrUnknownScenario = errors.New("unknown scenario")

// Scenario names
const (
	ScenarioBase        = "base"
	ScenarioOptimistic  = "optimistic"
	ScenarioPessimistic = "pessimistic"
	ScenarioAll         = "all"
)

// DefaultScenarios returns base, optimistic (+2%) and pessimistic (-2%) in display order
func DefaultScenarios() []domain.ScenarioDefinition {
	return []domain.ScenarioDefinition{
		{Name: ScenarioBase, RateOffset: 0},
		{Name: ScenarioOptimistic, RateOffset: 0.02},
		{Name: ScenarioPessimistic, RateOffset: -0.02},
	}
}

// SelectScenarios returns the scenarios matching name ("all" or empty selects every default)
func SelectScenarios(name string) ([]domain.ScenarioDefinition, error) {
	if name == "" || name == ScenarioAll {
		return DefaultScenarios(), nil
	}
	for _, s := range DefaultScenarios() {
		if s.Name == name {
			return []domain.ScenarioDefinition{s}, nil
		}
	}
	return nil, fmt.Errorf("%w: %q (want base, optimistic, pessimistic or all)", ErrUnknownScenario, name)
}

// CalculationEngine runs the projection for a set of scenarios
type CalculationEngine struct {
	Debug  bool // Log per-scenario breakdowns
	Logger Logger
}

// NewCalculationEngine creates a new calculation engine
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{Logger: NopLogger{}}
}

// SetLogger sets the logger for the calculation engine. If nil is provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

func (ce *CalculationEngine) logger() Logger {
	if ce.Logger == nil {
		return NopLogger{}
	}
	return ce.Logger
}

// ScenarioInput is the resolved snapshot every scenario is projected from
type ScenarioInput struct {
	Property         domain.PropertyAssumptions
	StartHomeValue   float64
	StartLoanBalance float64
	Scenarios        []domain.ScenarioDefinition
}

// RunScenarios projects every scenario concurrently. Results keep the order
// of input.Scenarios. The only error is context cancellation.
func (ce *CalculationEngine) RunScenarios(ctx context.Context, input ScenarioInput) ([]domain.ScenarioProjection, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	scenarios := input.Scenarios
	if len(scenarios) == 0 {
		scenarios = DefaultScenarios()
	}

	if ce.Debug {
		ce.logger().Debugf("monthly P&I %.2f on starting balance %.2f",
			MonthlyPayment(input.StartLoanBalance, input.Property.InterestRate.InexactFloat64(), input.Property.LoanTermYears),
			input.StartLoanBalance)
	}

	results := make([]domain.ScenarioProjection, len(scenarios))
	var wg sync.WaitGroup
	for i, scenario := range scenarios {
		wg.Add(1)
		go func(idx int, def domain.ScenarioDefinition) {
			defer wg.Done()
			results[idx] = ce.runScenario(input, def)
		}(i, scenario)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if ce.Debug {
		for _, r := range results {
			last := r.Annual[len(r.Annual)-1]
			ce.logger().Debugf("scenario %s (offset %+.2f): year %d equity %.0f, cumulative cash %.0f",
				r.Scenario.Name, r.Scenario.RateOffset, last.Year, last.Equity, r.Monthly[len(r.Monthly)-1].Cumulative)
		}
	}

	return results, nil
}

func (ce *CalculationEngine) runScenario(input ScenarioInput, def domain.ScenarioDefinition) domain.ScenarioProjection {
	home, loan := input.StartHomeValue, input.StartLoanBalance
	opts := ProjectionOptions{
		RateOffset:       def.RateOffset,
		StartHomeValue:   &home,
		StartLoanBalance: &loan,
	}

	monthly := ProjectMonthly(input.Property, opts)
	return domain.ScenarioProjection{
		Scenario:  def,
		Annual:    ProjectAnnual(input.Property, opts),
		Monthly:   monthly,
		Stats:     CalculateCashFlowStats(monthly),
		BreakEven: CumulativeBreakEven(monthly),
	}
}
