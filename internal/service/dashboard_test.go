package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/propeq/equity-dashboard/internal/calculation"
	"github.com/propeq/equity-dashboard/internal/config"
	"github.com/propeq/equity-dashboard/internal/domain"
	"github.com/propeq/equity-dashboard/internal/store"
	mock_store "github.com/propeq/equity-dashboard/internal/store/mocks"
)

var asOf = time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC) // 22 payments into the loan

func expectSnapshot(s *mock_store.MockStore, ds *domain.Dataset, latestLoan *domain.ValueOverride) {
	s.EXPECT().GetProperty(gomock.Any()).Return(ds.Property, nil)
	s.EXPECT().ListPartners(gomock.Any()).Return(ds.Partners, nil)
	s.EXPECT().ListTransactions(gomock.Any()).Return(ds.Transactions, nil)
	s.EXPECT().LatestOverride(gomock.Any(), domain.LoanBalanceOverride).Return(latestLoan, nil)
	s.EXPECT().LatestOverride(gomock.Any(), domain.HomeValueOverride).Return(domain.LatestOverride(ds.PropertyValueHistory), nil)
}

func TestDashboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := mock_store.NewMockStore(ctrl)
	ds := config.NewInputParser().CreateExampleDataset()
	expectSnapshot(s, ds, nil)

	svc := NewDashboardService(s, nil, nil)
	report, err := svc.Dashboard(context.Background(), DashboardOptions{Owner: "Sam", AsOf: asOf})
	require.NoError(t, err)

	assert.NotEmpty(t, report.ID)
	assert.Equal(t, "Sam", report.Owner)
	assert.Equal(t, 0.3333, report.Share)
	assert.False(t, report.Scaled)
	assert.Equal(t, domain.ResolvedValue{Value: 273522.95, Source: domain.SourceAmortized}, report.LoanBalance)
	assert.Equal(t, domain.ResolvedValue{Value: 338500, Source: domain.SourceOverride}, report.HomeValue)
	assert.InDelta(t, 1638.15, report.MonthlyPI, 0.01)

	require.Len(t, report.Scenarios, 3)
	base := report.Scenarios[0]
	assert.Equal(t, calculation.ScenarioBase, base.Scenario.Name)
	assert.Equal(t, 338500.0, base.Annual[0].HomeValue)
	assert.Equal(t, 273523.0, base.Annual[0].LoanBalance)
	assert.Equal(t, 64977.0, base.Annual[0].Equity)

	// equity card is the share of the unscaled year-0 equity
	assert.Equal(t, 21657.0, report.Summary.Equity)
	// no transactions fall in October 2026
	assert.Equal(t, 0.0, report.Summary.MonthCashFlow)
}

func TestDashboardMyShare(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := mock_store.NewMockStore(ctrl)
	ds := config.NewInputParser().CreateExampleDataset()
	expectSnapshot(s, ds, nil)

	svc := NewDashboardService(s, calculation.NewCalculationEngine(), calculation.NopLogger{})
	report, err := svc.Dashboard(context.Background(), DashboardOptions{
		Owner:    "Sam",
		MyShare:  true,
		AsOf:     asOf,
		Scenario: calculation.ScenarioOptimistic,
	})
	require.NoError(t, err)

	require.Len(t, report.Scenarios, 1)
	assert.True(t, report.Scaled)
	assert.Equal(t, calculation.ScenarioOptimistic, report.Scenarios[0].Scenario.Name)
	assert.Equal(t, 21657.0, report.Scenarios[0].Annual[0].Equity)
	assert.Equal(t, report.Summary.Equity, report.Scenarios[0].Annual[0].Equity)
}

func TestDashboardFreshLoanOverride(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := mock_store.NewMockStore(ctrl)
	ds := config.NewInputParser().CreateExampleDataset()
	fresh := &domain.ValueOverride{RecordedAt: time.Date(2026, 10, 3, 0, 0, 0, 0, time.UTC), Value: decimal.NewFromInt(273000)}
	expectSnapshot(s, ds, fresh)

	report, err := NewDashboardService(s, nil, nil).Dashboard(context.Background(), DashboardOptions{AsOf: asOf})
	require.NoError(t, err)
	assert.Equal(t, domain.ResolvedValue{Value: 273000, Source: domain.SourceOverride}, report.LoanBalance)
	assert.Equal(t, "Alex", report.Owner, "first partner by default")
}

func TestDashboardErrors(t *testing.T) {
	t.Run("unknown scenario", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		s := mock_store.NewMockStore(ctrl)

		_, err := NewDashboardService(s, nil, nil).Dashboard(context.Background(), DashboardOptions{Scenario: "bullish"})
		assert.True(t, errors.Is(err, calculation.ErrUnknownScenario))
	})

	t.Run("missing property", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		s := mock_store.NewMockStore(ctrl)
		s.EXPECT().GetProperty(gomock.Any()).Return(domain.PropertyAssumptions{}, store.ErrNotFound)

		_, err := NewDashboardService(s, nil, nil).Dashboard(context.Background(), DashboardOptions{AsOf: asOf})
		assert.True(t, errors.Is(err, store.ErrNotFound))
	})

	t.Run("unknown owner", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		s := mock_store.NewMockStore(ctrl)
		ds := config.NewInputParser().CreateExampleDataset()
		s.EXPECT().GetProperty(gomock.Any()).Return(ds.Property, nil)
		s.EXPECT().ListPartners(gomock.Any()).Return(ds.Partners, nil)
		s.EXPECT().ListTransactions(gomock.Any()).Return(ds.Transactions, nil)

		_, err := NewDashboardService(s, nil, nil).Dashboard(context.Background(), DashboardOptions{Owner: "Casey", AsOf: asOf})
		assert.True(t, errors.Is(err, ErrUnknownOwner))
	})

	t.Run("history failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		s := mock_store.NewMockStore(ctrl)
		ds := config.NewInputParser().CreateExampleDataset()
		s.EXPECT().GetProperty(gomock.Any()).Return(ds.Property, nil)
		s.EXPECT().LatestOverride(gomock.Any(), domain.LoanBalanceOverride).Return(nil, errors.New("connection reset"))

		_, err := NewDashboardService(s, nil, nil).Balance(context.Background(), asOf)
		assert.ErrorContains(t, err, "failed to load loan balance history: connection reset")
	})
}

func TestSelectShare(t *testing.T) {
	owner, share, err := selectShare(nil, "")
	require.NoError(t, err)
	assert.Equal(t, "", owner)
	assert.Equal(t, 1.0, share)

	_, _, err = selectShare(nil, "Sam")
	assert.ErrorIs(t, err, ErrUnknownOwner)
}

func TestBalance(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := mock_store.NewMockStore(ctrl)
	ds := config.NewInputParser().CreateExampleDataset()
	s.EXPECT().GetProperty(gomock.Any()).Return(ds.Property, nil)
	s.EXPECT().LatestOverride(gomock.Any(), domain.LoanBalanceOverride).Return(nil, nil)
	s.EXPECT().LatestOverride(gomock.Any(), domain.HomeValueOverride).Return(nil, nil)

	report, err := NewDashboardService(s, nil, nil).Balance(context.Background(), time.Date(2025, 10, 19, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, domain.ResolvedValue{Value: 277143.67, Source: domain.SourceAmortized}, report.LoanBalance)
	assert.Equal(t, domain.ResolvedValue{Value: 330000, Source: domain.SourceStored}, report.HomeValue)
}

func TestHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := mock_store.NewMockStore(ctrl)
	older := domain.ValueOverride{ID: "old", RecordedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	newer := domain.ValueOverride{ID: "new", RecordedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	s.EXPECT().ListOverrides(gomock.Any(), domain.HomeValueOverride).Return([]domain.ValueOverride{older, newer}, nil)
	s.EXPECT().ListOverrides(gomock.Any(), domain.LoanBalanceOverride).Return(nil, nil)

	h, err := NewDashboardService(s, nil, nil).History(context.Background())
	require.NoError(t, err)
	require.Len(t, h.HomeValues, 2)
	assert.Equal(t, "new", h.HomeValues[0].ID)
	assert.Empty(t, h.LoanBalances)
}
