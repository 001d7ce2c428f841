package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/propeq/equity-dashboard/internal/calculation"
	"github.com/propeq/equity-dashboard/internal/domain"
	"github.com/propeq/equity-dashboard/internal/store"
)

// ErrUnknownOwner is returned when the requested partner does not exist
var ErrUnknownOwner = errors.New("unknown owner")

// DashboardOptions selects what the dashboard report contains
type DashboardOptions struct {
	Owner    string    // partner name; empty selects the first partner
	MyShare  bool      // scale projection series by the owner's share
	AsOf     time.Time // evaluation date; zero means today
	Scenario string    // base, optimistic, pessimistic or all (default)
}

// BalanceReport is the resolved starting point of every projection
type BalanceReport struct {
	AsOf        time.Time            `json:"asOf"`
	LoanBalance domain.ResolvedValue `json:"loanBalance"`
	HomeValue   domain.ResolvedValue `json:"homeValue"`
	MonthlyPI   float64              `json:"monthlyPI"`
}

// HistoryReport lists both override histories newest first
type HistoryReport struct {
	HomeValues   []domain.ValueOverride `json:"homeValues"`
	LoanBalances []domain.ValueOverride `json:"loanBalances"`
}

// DashboardService assembles reports from a record store
type DashboardService struct {
	Store  store.Store
	Engine *calculation.CalculationEngine
	Logger calculation.Logger
}

// NewDashboardService creates a service over the given store
func NewDashboardService(s store.Store, engine *calculation.CalculationEngine, logger calculation.Logger) *DashboardService {
	if engine == nil {
		engine = calculation.NewCalculationEngine()
	}
	if logger == nil {
		logger = calculation.NopLogger{}
	}
	return &DashboardService{Store: s, Engine: engine, Logger: logger}
}

func resolveAsOf(t time.Time) time.Time {
	if t.IsZero() {
		return calculation.Now()
	}
	return t
}

// Balance resolves the current loan balance and home value
func (s *DashboardService) Balance(ctx context.Context, asOf time.Time) (*BalanceReport, error) {
	asOf = resolveAsOf(asOf)

	property, err := s.Store.GetProperty(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load property: %w", err)
	}
	return s.balance(ctx, property, asOf)
}

func (s *DashboardService) balance(ctx context.Context, property domain.PropertyAssumptions, asOf time.Time) (*BalanceReport, error) {
	latestLoan, err := s.Store.LatestOverride(ctx, domain.LoanBalanceOverride)
	if err != nil {
		return nil, fmt.Errorf("failed to load loan balance history: %w", err)
	}
	latestHome, err := s.Store.LatestOverride(ctx, domain.HomeValueOverride)
	if err != nil {
		return nil, fmt.Errorf("failed to load home value history: %w", err)
	}

	loan := calculation.ResolveLoanBalance(property, latestLoan, asOf)
	home := calculation.ResolveHomeValue(property, latestHome)
	s.Logger.Debugf("loan balance %.2f from %s, home value %.2f from %s", loan.Value, loan.Source, home.Value, home.Source)

	return &BalanceReport{
		AsOf:        asOf,
		LoanBalance: loan,
		HomeValue:   home,
		MonthlyPI:   calculation.MonthlyPayment(loan.Value, property.InterestRate.InexactFloat64(), property.LoanTermYears),
	}, nil
}

// History returns both override histories
func (s *DashboardService) History(ctx context.Context) (*HistoryReport, error) {
	homes, err := s.Store.ListOverrides(ctx, domain.HomeValueOverride)
	if err != nil {
		return nil, fmt.Errorf("failed to load home value history: %w", err)
	}
	loans, err := s.Store.ListOverrides(ctx, domain.LoanBalanceOverride)
	if err != nil {
		return nil, fmt.Errorf("failed to load loan balance history: %w", err)
	}
	return &HistoryReport{
		HomeValues:   domain.SortNewestFirst(homes),
		LoanBalances: domain.SortNewestFirst(loans),
	}, nil
}

// Dashboard builds the full report: resolved starting values, every selected
// scenario and the summary cards for the selected owner.
func (s *DashboardService) Dashboard(ctx context.Context, opts DashboardOptions) (*domain.DashboardReport, error) {
	asOf := resolveAsOf(opts.AsOf)

	scenarios, err := calculation.SelectScenarios(opts.Scenario)
	if err != nil {
		return nil, err
	}

	property, err := s.Store.GetProperty(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load property: %w", err)
	}
	partners, err := s.Store.ListPartners(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load partners: %w", err)
	}
	transactions, err := s.Store.ListTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	owner, share, err := selectShare(partners, opts.Owner)
	if err != nil {
		return nil, err
	}

	balance, err := s.balance(ctx, property, asOf)
	if err != nil {
		return nil, err
	}

	projections, err := s.Engine.RunScenarios(ctx, calculation.ScenarioInput{
		Property:         property,
		StartHomeValue:   balance.HomeValue.Value,
		StartLoanBalance: balance.LoanBalance.Value,
		Scenarios:        scenarios,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to run projections: %w", err)
	}

	// summary cards always come from the base series
	home, loan := balance.HomeValue.Value, balance.LoanBalance.Value
	baseAnnual := calculation.ProjectAnnual(property, calculation.ProjectionOptions{
		StartHomeValue:   &home,
		StartLoanBalance: &loan,
	})
	cards := calculation.BuildSummaryCards(baseAnnual, transactions, share, asOf)

	if opts.MyShare {
		for i := range projections {
			projections[i] = calculation.ScaleProjection(projections[i], share)
		}
	}

	s.Logger.Infof("dashboard for %s (share %.4f): %d scenarios as of %s",
		ownerLabel(owner), share, len(projections), asOf.Format("2006-01-02"))

	return &domain.DashboardReport{
		ID:          uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		AsOf:        asOf,
		Property:    property,
		Owner:       owner,
		Share:       share,
		Scaled:      opts.MyShare,
		HomeValue:   balance.HomeValue,
		LoanBalance: balance.LoanBalance,
		MonthlyPI:   balance.MonthlyPI,
		Summary:     cards,
		Scenarios:   projections,
	}, nil
}

// selectShare picks the owner's fraction. With no partners the whole property is shown.
func selectShare(partners []domain.Partner, name string) (string, float64, error) {
	if len(partners) == 0 {
		if name != "" {
			return "", 0, fmt.Errorf("%w: %q (no partners recorded)", ErrUnknownOwner, name)
		}
		return "", 1, nil
	}
	p, ok := domain.FindPartner(partners, name)
	if !ok {
		return "", 0, fmt.Errorf("%w: %q", ErrUnknownOwner, name)
	}
	return p.Name, p.Share.InexactFloat64(), nil
}

func ownerLabel(owner string) string {
	if owner == "" {
		return "whole property"
	}
	return owner
}
