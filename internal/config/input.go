package config

import (
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/propeq/equity-dashboard/internal/domain"
)

// InputParser handles parsing of dataset files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a dataset from a YAML or JSON file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Dataset, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates a dataset document
func (ip *InputParser) Parse(data []byte) (*domain.Dataset, error) {
	var ds domain.Dataset
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateDataset(&ds); err != nil {
		return nil, fmt.Errorf("dataset validation failed: %w", err)
	}

	return &ds, nil
}

// SaveToFile writes the dataset as YAML
func (ip *InputParser) SaveToFile(ds *domain.Dataset, filename string) error {
	data, err := yaml.Marshal(ds)
	if err != nil {
		return fmt.Errorf("failed to encode dataset: %w", err)
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", filename, err)
	}
	return nil
}

// ValidateDataset checks raw record fields before they reach the engine.
// The engine itself accepts anything and lets bad numbers propagate.
func (ip *InputParser) ValidateDataset(ds *domain.Dataset) error {
	if err := ip.validateProperty(&ds.Property); err != nil {
		return fmt.Errorf("property validation failed: %w", err)
	}

	total := decimal.Zero
	for i, p := range ds.Partners {
		if p.Name == "" {
			return fmt.Errorf("partner %d: name is required", i)
		}
		if p.Share.LessThanOrEqual(decimal.Zero) || p.Share.GreaterThan(decimal.NewFromInt(1)) {
			return fmt.Errorf("partner %s: share must be in (0, 1]", p.Name)
		}
		total = total.Add(p.Share)
	}
	if total.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("partner shares add up to %s, more than 1", total.String())
	}

	for i, t := range ds.Transactions {
		if err := ip.validateTransaction(&t); err != nil {
			return fmt.Errorf("transaction %d validation failed: %w", i, err)
		}
	}

	for _, kind := range []domain.OverrideKind{domain.HomeValueOverride, domain.LoanBalanceOverride} {
		for i, o := range ds.History(kind) {
			if o.RecordedAt.IsZero() {
				return fmt.Errorf("%s entry %d: recorded_at is required", kind.Table(), i)
			}
			if o.Value.LessThanOrEqual(decimal.Zero) {
				return fmt.Errorf("%s entry %d: value must be positive", kind.Table(), i)
			}
		}
	}

	return nil
}

func (ip *InputParser) validateProperty(p *domain.PropertyAssumptions) error {
	money := map[string]decimal.Decimal{
		"home_value":           p.HomeValue,
		"loan_balance":         p.LoanBalance,
		"original_loan_amount": p.OriginalLoanAmount,
		"monthly_rent":         p.MonthlyRent,
		"monthly_maintenance":  p.MonthlyMaintenance,
		"monthly_management":   p.MonthlyManagement,
		"monthly_escrow":       p.MonthlyEscrow,
		"property_tax_annual":  p.PropertyTaxAnnual,
		"insurance_annual":     p.InsuranceAnnual,
		"pmi_annual":           p.PMIAnnual,
		"depreciation_annual":  p.DepreciationAnnual,
	}
	for name, v := range money {
		if v.LessThan(decimal.Zero) {
			return fmt.Errorf("%s cannot be negative", name)
		}
	}

	one := decimal.NewFromInt(1)
	rates := map[string]decimal.Decimal{
		"home_growth_rate":   p.HomeGrowthRate,
		"rent_growth_rate":   p.RentGrowthRate,
		"inflation_rate":     p.InflationRate,
		"vacancy_rate":       p.VacancyRate,
		"effective_tax_rate": p.EffectiveTaxRate,
		"interest_rate":      p.InterestRate,
	}
	for name, v := range rates {
		if v.LessThan(decimal.Zero) || v.GreaterThan(one) {
			return fmt.Errorf("%s must be between 0 and 1", name)
		}
	}

	if p.LoanTermYears <= 0 {
		return fmt.Errorf("loan term years must be positive")
	}
	if p.PMIYears < 0 {
		return fmt.Errorf("pmi years cannot be negative")
	}
	if !p.InterestRate.IsPositive() {
		return fmt.Errorf("interest_rate must be greater than 0")
	}
	return nil
}

func (ip *InputParser) validateTransaction(t *domain.Transaction) error {
	if t.Date.IsZero() {
		return fmt.Errorf("date is required")
	}
	if !domain.ValidCategory(t.Category) {
		return fmt.Errorf("invalid category %q", t.Category)
	}
	if t.Amount.IsZero() {
		return fmt.Errorf("amount cannot be zero")
	}
	return nil
}

// DefaultAssumptions returns the projection assumptions a settings reset restores
func DefaultAssumptions() domain.PropertyAssumptions {
	return domain.PropertyAssumptions{
		HomeGrowthRate:     decimal.NewFromFloat(0.04),
		RentGrowthRate:     decimal.NewFromFloat(0.04),
		InflationRate:      decimal.NewFromFloat(0.03),
		VacancyRate:        decimal.NewFromFloat(0.05),
		EffectiveTaxRate:   decimal.NewFromFloat(0.24),
		MonthlyRent:        decimal.NewFromInt(1850),
		MonthlyMaintenance: decimal.NewFromInt(300),
		MonthlyManagement:  decimal.NewFromInt(95),
		PMIAnnual:          decimal.NewFromFloat(488.88),
		PMIYears:           4,
		DepreciationAnnual: decimal.NewFromFloat(10229.09),
	}
}

// ResetProjectionDefaults restores the projection assumptions while keeping
// the property and loan facts.
func ResetProjectionDefaults(p domain.PropertyAssumptions) domain.PropertyAssumptions {
	def := DefaultAssumptions()
	p.HomeGrowthRate = def.HomeGrowthRate
	p.RentGrowthRate = def.RentGrowthRate
	p.InflationRate = def.InflationRate
	p.VacancyRate = def.VacancyRate
	p.EffectiveTaxRate = def.EffectiveTaxRate
	p.MonthlyRent = def.MonthlyRent
	p.MonthlyMaintenance = def.MonthlyMaintenance
	p.MonthlyManagement = def.MonthlyManagement
	p.PMIAnnual = def.PMIAnnual
	p.PMIYears = def.PMIYears
	p.DepreciationAnnual = def.DepreciationAnnual
	return p
}

// CreateExampleDataset creates an example dataset for testing
func (ip *InputParser) CreateExampleDataset() *domain.Dataset {
	start := time.Date(2024, 12, 19, 0, 0, 0, 0, time.UTC)

	property := DefaultAssumptions()
	property.Name = "Maple Street Duplex"
	property.HomeValue = decimal.NewFromInt(330000)
	property.LoanBalance = decimal.NewFromFloat(274803.87)
	property.OriginalLoanAmount = decimal.NewFromInt(280000)
	property.InterestRate = decimal.NewFromFloat(0.0599)
	property.LoanTermYears = 30
	property.LoanStartDate = &start
	property.MonthlyEscrow = decimal.NewFromInt(450)
	property.PropertyTaxAnnual = decimal.NewFromInt(4200)
	property.InsuranceAnnual = decimal.NewFromInt(1500)

	return &domain.Dataset{
		Property: property,
		Partners: []domain.Partner{
			{Name: "Alex", Share: decimal.NewFromFloat(0.3334)},
			{Name: "Sam", Share: decimal.NewFromFloat(0.3333)},
			{Name: "Jordan", Share: decimal.NewFromFloat(0.3333)},
		},
		Transactions: []domain.Transaction{
			{Date: time.Date(2025, 1, 19, 0, 0, 0, 0, time.UTC), Category: domain.CategoryMortgage, Amount: decimal.NewFromFloat(-1676.94), Note: "January payment"},
			{Date: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), Category: domain.CategoryRent, Amount: decimal.NewFromInt(1850)},
			{Date: time.Date(2025, 2, 3, 0, 0, 0, 0, time.UTC), Category: domain.CategoryManagementFee, Amount: decimal.NewFromInt(-95)},
			{Date: time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC), Category: domain.CategoryRepair, Amount: decimal.NewFromFloat(-412.37), Note: "Water heater valve"},
		},
		PropertyValueHistory: []domain.ValueOverride{
			{RecordedAt: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), Value: decimal.NewFromInt(338500), Source: "Zillow"},
		},
		LoanBalanceHistory: []domain.ValueOverride{},
	}
}
