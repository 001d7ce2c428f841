package domain

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// PropertyAssumptions holds the authoritative financial facts for the property.
// Money fields are stored as decimals and converted to float64 at engine entry.
type PropertyAssumptions struct {
	Name string `yaml:"name,omitempty" json:"name,omitempty"`

	HomeValue          decimal.Decimal `yaml:"home_value" json:"home_value"`
	LoanBalance        decimal.Decimal `yaml:"loan_balance" json:"loan_balance"`
	OriginalLoanAmount decimal.Decimal `yaml:"original_loan_amount,omitempty" json:"original_loan_amount,omitempty"`
	MonthlyRent        decimal.Decimal `yaml:"monthly_rent" json:"monthly_rent"`
	MonthlyMaintenance decimal.Decimal `yaml:"monthly_maintenance" json:"monthly_maintenance"`
	MonthlyManagement  decimal.Decimal `yaml:"monthly_management" json:"monthly_management"`
	MonthlyEscrow      decimal.Decimal `yaml:"monthly_escrow" json:"monthly_escrow"`
	PropertyTaxAnnual  decimal.Decimal `yaml:"property_tax_annual" json:"property_tax_annual"`
	InsuranceAnnual    decimal.Decimal `yaml:"insurance_annual" json:"insurance_annual"`
	PMIAnnual          decimal.Decimal `yaml:"pmi_annual" json:"pmi_annual"`
	DepreciationAnnual decimal.Decimal `yaml:"depreciation_annual" json:"depreciation_annual"`

	// Rates are decimal fractions (0.04 = 4%)
	HomeGrowthRate   decimal.Decimal `yaml:"home_growth_rate" json:"home_growth_rate"`
	RentGrowthRate   decimal.Decimal `yaml:"rent_growth_rate" json:"rent_growth_rate"`
	InflationRate    decimal.Decimal `yaml:"inflation_rate" json:"inflation_rate"`
	VacancyRate      decimal.Decimal `yaml:"vacancy_rate" json:"vacancy_rate"`
	EffectiveTaxRate decimal.Decimal `yaml:"effective_tax_rate" json:"effective_tax_rate"`
	InterestRate     decimal.Decimal `yaml:"interest_rate" json:"interest_rate"`

	LoanTermYears int `yaml:"loan_term_years" json:"loan_term_years"`
	PMIYears      int `yaml:"pmi_years" json:"pmi_years"`

	// Required only for auto-amortization
	LoanStartDate *time.Time `yaml:"loan_start_date,omitempty" json:"loan_start_date,omitempty"`
}

// HasOrigination reports whether both origination facts needed for
// amortization are present.
func (p PropertyAssumptions) HasOrigination() bool {
	return !p.OriginalLoanAmount.IsZero() && p.LoanStartDate != nil && !p.LoanStartDate.IsZero()
}

// OverrideKind identifies one of the two override histories
type OverrideKind string

const (
	HomeValueOverride   OverrideKind = "home_value"
	LoanBalanceOverride OverrideKind = "loan_balance"
)

// Table returns the record-store table backing the history
func (k OverrideKind) Table() string {
	switch k {
	case HomeValueOverride:
		return "property_value_history"
	case LoanBalanceOverride:
		return "loan_balance_history"
	default:
		return ""
	}
}

// ParseOverrideKind converts user input into an OverrideKind
func ParseOverrideKind(s string) (OverrideKind, error) {
	switch OverrideKind(s) {
	case HomeValueOverride, LoanBalanceOverride:
		return OverrideKind(s), nil
	}
	return "", fmt.Errorf("unknown override kind %q", s)
}

// ValueOverride is one manually recorded observation in an append-only history
type ValueOverride struct {
	ID         string          `yaml:"id,omitempty" json:"id,omitempty"`
	RecordedAt time.Time       `yaml:"recorded_at" json:"recorded_at"`
	Value      decimal.Decimal `yaml:"value" json:"value"`
	Source     string          `yaml:"source,omitempty" json:"source,omitempty"` // Zillow, Redfin, Appraisal, Statement, Other
	Note       string          `yaml:"note,omitempty" json:"note,omitempty"`
}

// LatestOverride returns the entry with the greatest RecordedAt. When two
// entries share a date the one appended later wins. Returns nil for an empty
// history.
func LatestOverride(history []ValueOverride) *ValueOverride {
	var latest *ValueOverride
	for i := range history {
		if latest == nil || !history[i].RecordedAt.Before(latest.RecordedAt) {
			latest = &history[i]
		}
	}
	if latest == nil {
		return nil
	}
	out := *latest
	return &out
}

// SortNewestFirst returns a copy of the history ordered by RecordedAt descending
func SortNewestFirst(history []ValueOverride) []ValueOverride {
	out := make([]ValueOverride, len(history))
	copy(out, history)
	// reverse first so that equal dates keep "later appended first"
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].RecordedAt.After(out[j].RecordedAt)
	})
	return out
}

// Category classifies a cash transaction
type Category string

const (
	CategoryMortgage      Category = "mortgage"
	CategoryRent          Category = "rent"
	CategoryRepair        Category = "repair"
	CategoryManagementFee Category = "management_fee"
	CategoryInsurance     Category = "insurance"
	CategoryTax           Category = "tax"
	CategoryOther         Category = "other"
)

// Categories lists every valid transaction category
var Categories = []Category{
	CategoryMortgage,
	CategoryRent,
	CategoryRepair,
	CategoryManagementFee,
	CategoryInsurance,
	CategoryTax,
	CategoryOther,
}

// ValidCategory reports whether c is one of the known categories
func ValidCategory(c Category) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Transaction is a signed cash movement: positive is income, negative expense
type Transaction struct {
	ID       string          `yaml:"id,omitempty" json:"id,omitempty"`
	Date     time.Time       `yaml:"date" json:"date"`
	Category Category        `yaml:"category" json:"category"`
	Amount   decimal.Decimal `yaml:"amount" json:"amount"`
	Note     string          `yaml:"note,omitempty" json:"note,omitempty"`
}

// Partner is a co-owner with a fractional ownership share
type Partner struct {
	ID    string          `yaml:"id,omitempty" json:"id,omitempty"`
	Name  string          `yaml:"name" json:"name"`
	Share decimal.Decimal `yaml:"share" json:"share"`
}

// Dataset is a full snapshot of the five record-store tables
type Dataset struct {
	Property             PropertyAssumptions `yaml:"property" json:"property"`
	Partners             []Partner           `yaml:"partners" json:"partners"`
	Transactions         []Transaction       `yaml:"transactions" json:"transactions"`
	PropertyValueHistory []ValueOverride     `yaml:"property_value_history" json:"property_value_history"`
	LoanBalanceHistory   []ValueOverride     `yaml:"loan_balance_history" json:"loan_balance_history"`
}

// History returns the override history of the given kind
func (d *Dataset) History(kind OverrideKind) []ValueOverride {
	switch kind {
	case HomeValueOverride:
		return d.PropertyValueHistory
	case LoanBalanceOverride:
		return d.LoanBalanceHistory
	default:
		return nil
	}
}

// FindPartner looks up a partner by name. An empty name selects the first partner.
func FindPartner(partners []Partner, name string) (Partner, bool) {
	if len(partners) == 0 {
		return Partner{}, false
	}
	if name == "" {
		return partners[0], true
	}
	for _, p := range partners {
		if p.Name == name {
			return p, true
		}
	}
	return Partner{}, false
}
