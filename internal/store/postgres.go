package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/propeq/equity-dashboard/internal/domain"
)

// PostgresStore reads the five dashboard tables with plain SQL
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore wraps an open database handle
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// OpenPostgres connects using a lib/pq connection string and verifies the connection
func OpenPostgres(ctx context.Context, dsn string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return &PostgresStore{db: db}, nil
}

// Close closes the underlying database handle
func (s *PostgresStore) Close() error {
	return s.db.Close()
}

const propertyQuery = `
	SELECT home_value, loan_balance, original_loan_amount, loan_start_date,
		interest_rate, loan_term_years, monthly_rent, monthly_maintenance,
		monthly_management, monthly_escrow, property_tax_annual, insurance_annual,
		pmi_annual, pmi_years, depreciation_annual, home_growth_rate,
		rent_growth_rate, inflation_rate, vacancy_rate, effective_tax_rate
	FROM property
	LIMIT 1`

// GetProperty retrieves the single property row
func (s *PostgresStore) GetProperty(ctx context.Context) (domain.PropertyAssumptions, error) {
	var (
		p         domain.PropertyAssumptions
		original  decimal.NullDecimal
		startDate sql.NullTime
	)
	err := s.db.QueryRowContext(ctx, propertyQuery).Scan(
		&p.HomeValue, &p.LoanBalance, &original, &startDate,
		&p.InterestRate, &p.LoanTermYears, &p.MonthlyRent, &p.MonthlyMaintenance,
		&p.MonthlyManagement, &p.MonthlyEscrow, &p.PropertyTaxAnnual, &p.InsuranceAnnual,
		&p.PMIAnnual, &p.PMIYears, &p.DepreciationAnnual, &p.HomeGrowthRate,
		&p.RentGrowthRate, &p.InflationRate, &p.VacancyRate, &p.EffectiveTaxRate,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.PropertyAssumptions{}, ErrNotFound
	}
	if err != nil {
		return domain.PropertyAssumptions{}, fmt.Errorf("failed to get property: %w", err)
	}
	if original.Valid {
		p.OriginalLoanAmount = original.Decimal
	}
	if startDate.Valid {
		t := startDate.Time
		p.LoanStartDate = &t
	}
	return p, nil
}

// ListPartners retrieves every partner in insertion order
func (s *PostgresStore) ListPartners(ctx context.Context) ([]domain.Partner, error) {
	query := `
		SELECT id::text, name, ownership_share
		FROM partners
		ORDER BY id`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list partners: %w", err)
	}
	defer rows.Close()

	var partners []domain.Partner
	for rows.Next() {
		var p domain.Partner
		if err := rows.Scan(&p.ID, &p.Name, &p.Share); err != nil {
			return nil, fmt.Errorf("failed to scan partner: %w", err)
		}
		partners = append(partners, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate partners: %w", err)
	}
	return partners, nil
}

// ListTransactions retrieves transactions newest first
func (s *PostgresStore) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	query := `
		SELECT id::text, date, category, amount, note
		FROM transactions
		ORDER BY date DESC`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		var (
			t    domain.Transaction
			cat  string
			note sql.NullString
		)
		if err := rows.Scan(&t.ID, &t.Date, &cat, &t.Amount, &note); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		t.Category = domain.Category(cat)
		t.Note = note.String
		transactions = append(transactions, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}
	return transactions, nil
}

// overrideColumns maps each history to its value and source columns
func overrideColumns(kind domain.OverrideKind) (table, value, source string, err error) {
	switch kind {
	case domain.HomeValueOverride:
		return kind.Table(), "home_value", "source", nil
	case domain.LoanBalanceOverride:
		return kind.Table(), "balance", "NULL", nil
	default:
		return "", "", "", fmt.Errorf("unknown override kind %q", kind)
	}
}

// ListOverrides retrieves one override history newest first
func (s *PostgresStore) ListOverrides(ctx context.Context, kind domain.OverrideKind) ([]domain.ValueOverride, error) {
	return s.queryOverrides(ctx, kind, "")
}

// LatestOverride retrieves the most recent entry of one history
func (s *PostgresStore) LatestOverride(ctx context.Context, kind domain.OverrideKind) (*domain.ValueOverride, error) {
	overrides, err := s.queryOverrides(ctx, kind, "LIMIT 1")
	if err != nil {
		return nil, err
	}
	if len(overrides) == 0 {
		return nil, nil
	}
	return &overrides[0], nil
}

func (s *PostgresStore) queryOverrides(ctx context.Context, kind domain.OverrideKind, limit string) ([]domain.ValueOverride, error) {
	table, value, source, err := overrideColumns(kind)
	if err != nil {
		return nil, err
	}
	query := fmt.Sprintf(`
		SELECT id::text, recorded_at, %s, %s, note
		FROM %s
		ORDER BY recorded_at DESC, id DESC
		%s`, value, source, table, limit)

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", table, err)
	}
	defer rows.Close()

	var overrides []domain.ValueOverride
	for rows.Next() {
		var (
			o         domain.ValueOverride
			src, note sql.NullString
		)
		if err := rows.Scan(&o.ID, &o.RecordedAt, &o.Value, &src, &note); err != nil {
			return nil, fmt.Errorf("failed to scan %s row: %w", table, err)
		}
		o.Source = src.String
		o.Note = note.String
		overrides = append(overrides, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate %s: %w", table, err)
	}
	return overrides, nil
}
