package calculation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/propeq/equity-dashboard/internal/domain"
)

func TestApplyShare(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		share    float64
		expected float64
	}{
		{"Full ownership", 55196, 1, 55196},
		{"Third share", 55196, 0.3333, 18397},
		{"Negative cash flow", -9289, 0.5, -4644}, // -4644.5 rounds toward +Inf
		{"Zero share", 12345, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ApplyShare(tt.value, tt.share))
		})
	}
}

func TestScaleAnnual(t *testing.T) {
	points := ProjectAnnual(referenceProperty(), ProjectionOptions{})
	share := 0.3333

	scaled := ScaleAnnual(points, share)
	require.Len(t, scaled, len(points))

	for i, p := range points {
		s := scaled[i]
		assert.Equal(t, p.Year, s.Year)
		assert.Equal(t, roundWhole(p.HomeValue*share), s.HomeValue)
		assert.Equal(t, roundWhole(p.LoanBalance*share), s.LoanBalance)
		assert.Equal(t, roundWhole(p.Equity*share), s.Equity)
		assert.Equal(t, roundWhole(p.CashFlow*share), s.CashFlow)
		assert.Equal(t, roundWhole(p.TaxBenefit*share), s.TaxBenefit)

		// doubling the share doubles the unrounded figure exactly
		assert.Equal(t, 2*(p.Equity*share), p.Equity*(2*share))
	}

	assert.Equal(t, 330000.0, points[0].HomeValue, "input must not be mutated")
}

func TestScaleMonthly(t *testing.T) {
	points := ProjectMonthly(referenceProperty(), ProjectionOptions{})

	scaled := ScaleMonthly(points, 0.5)
	assert.Equal(t, "Now", scaled[0].Label)
	assert.Equal(t, 0, scaled[0].Month)
	assert.Equal(t, 879.0, scaled[0].Income)
	assert.Equal(t, -12860.0, scaled[119].Cumulative)
	assert.Equal(t, 1758.0, points[0].Income, "input must not be mutated")
}

func TestScaleProjection(t *testing.T) {
	monthly := []domain.MonthlyPoint{
		{Month: 0, AdjustedNet: -100, Cumulative: -100},
		{Month: 1, AdjustedNet: 300, Cumulative: 200},
	}
	sp := domain.ScenarioProjection{
		Scenario: domain.ScenarioDefinition{Name: ScenarioBase},
		Annual:   []domain.AnnualPoint{{Year: 0, Equity: 1000}},
		Monthly:  monthly,
	}

	scaled := ScaleProjection(sp, 0.5)
	assert.Equal(t, ScenarioBase, scaled.Scenario.Name)
	assert.Equal(t, 500.0, scaled.Annual[0].Equity)
	assert.Equal(t, 50.0, scaled.Stats.MeanAdjustedNet)
	require.NotNil(t, scaled.BreakEven)
	assert.Equal(t, 1, scaled.BreakEven.Month)
}
