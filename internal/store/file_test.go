package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/propeq/equity-dashboard/internal/config"
	"github.com/propeq/equity-dashboard/internal/domain"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func exampleDataset() *domain.Dataset {
	ds := config.NewInputParser().CreateExampleDataset()
	ds.LoanBalanceHistory = []domain.ValueOverride{
		{RecordedAt: day(2026, 3, 1), Value: decimal.NewFromInt(276000)},
		{RecordedAt: day(2026, 9, 30), Value: decimal.NewFromInt(274000), Note: "statement"},
		{ID: "fixed", RecordedAt: day(2025, 12, 1), Value: decimal.NewFromInt(277000)},
	}
	return ds
}

func TestFileStore(t *testing.T) {
	ctx := context.Background()
	ds := exampleDataset()
	s := NewFileStore(ds)

	p, err := s.GetProperty(ctx)
	require.NoError(t, err)
	assert.True(t, p.HomeValue.Equal(decimal.NewFromInt(330000)))

	partners, err := s.ListPartners(ctx)
	require.NoError(t, err)
	require.Len(t, partners, 3)
	for _, partner := range partners {
		assert.NotEmpty(t, partner.ID)
	}
	assert.Empty(t, ds.Partners[0].ID, "source dataset must not be mutated")

	txns, err := s.ListTransactions(ctx)
	require.NoError(t, err)
	require.Len(t, txns, 4)
	assert.Equal(t, domain.CategoryRepair, txns[0].Category, "newest first")

	history, err := s.ListOverrides(ctx, domain.LoanBalanceOverride)
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, "statement", history[0].Note)
	assert.Equal(t, "fixed", history[2].ID)

	latest, err := s.LatestOverride(ctx, domain.LoanBalanceOverride)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.True(t, latest.Value.Equal(decimal.NewFromInt(274000)))

	home, err := s.LatestOverride(ctx, domain.HomeValueOverride)
	require.NoError(t, err)
	require.NotNil(t, home)
	assert.Equal(t, "Zillow", home.Source)

	_, err = s.ListOverrides(ctx, "rent")
	assert.Error(t, err)
}

func TestFileStoreEmptyHistory(t *testing.T) {
	ds := exampleDataset()
	ds.PropertyValueHistory = nil
	s := NewFileStore(ds)

	latest, err := s.LatestOverride(context.Background(), domain.HomeValueOverride)
	require.NoError(t, err)
	assert.Nil(t, latest)
}

func TestFileStoreWithoutDataset(t *testing.T) {
	s := NewFileStore(nil)

	_, err := s.GetProperty(context.Background())
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.Dataset()
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFileStoreCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewFileStore(exampleDataset()).GetProperty(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLoadFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dashboard.yaml")
	parser := config.NewInputParser()
	require.NoError(t, parser.SaveToFile(parser.CreateExampleDataset(), path))

	s, err := LoadFileStore(path)
	require.NoError(t, err)
	ds, err := s.Dataset()
	require.NoError(t, err)
	assert.Equal(t, "Maple Street Duplex", ds.Property.Name)

	require.NoError(t, os.WriteFile(path, []byte("property:\n  loan_term_years: 0\n"), 0o644))
	_, err = LoadFileStore(path)
	assert.ErrorContains(t, err, "loan term years must be positive")

	// a zero rate would turn every projected figure into NaN
	require.NoError(t, os.WriteFile(path, []byte("property:\n  loan_term_years: 30\n  interest_rate: 0\n"), 0o644))
	_, err = LoadFileStore(path)
	assert.ErrorContains(t, err, "interest_rate must be greater than 0")
}

func TestFileStoreDatasetIsDeepCopy(t *testing.T) {
	s := NewFileStore(exampleDataset())

	ds, err := s.Dataset()
	require.NoError(t, err)
	ds.Partners[0].Name = "Mallory"
	ds.Transactions[0].Amount = decimal.NewFromInt(1)
	ds.LoanBalanceHistory[0].Value = decimal.NewFromInt(1)
	*ds.Property.LoanStartDate = day(1999, 1, 1)

	again, err := s.Dataset()
	require.NoError(t, err)
	assert.NotEqual(t, "Mallory", again.Partners[0].Name)
	assert.False(t, again.Transactions[0].Amount.Equal(decimal.NewFromInt(1)))
	assert.False(t, again.LoanBalanceHistory[0].Value.Equal(decimal.NewFromInt(1)))
	assert.Equal(t, day(2024, 12, 19), *again.Property.LoanStartDate)

	p, err := s.GetProperty(context.Background())
	require.NoError(t, err)
	*p.LoanStartDate = day(1999, 1, 1)
	again, err = s.Dataset()
	require.NoError(t, err)
	assert.Equal(t, day(2024, 12, 19), *again.Property.LoanStartDate)
}
