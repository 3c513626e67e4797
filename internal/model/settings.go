package model

import "slices"

// DashboardScope selects which accounts the dashboard totals consider.
type DashboardScope string

const (
	// ScopeAll aggregates across every account.
	ScopeAll DashboardScope = "ALL"
	// ScopePrimary restricts totals to the primary account.
	ScopePrimary DashboardScope = "PRIMARY"
)

// Settings is the single mutable configuration record of a profile.
type Settings struct {
	CurrencyCode   string `json:"currencyCode"`
	CurrencySymbol string `json:"currencySymbol"`

	BankAccounts []string `json:"bankAccounts"`
	ParkAccounts []string `json:"parkAccounts"`

	ExpenseCategories []string `json:"expenseCategories"`
	IncomeCategories  []string `json:"incomeCategories"`

	// TagLimits maps each tag to a budget percentage (0-100). Limits are
	// compared against actual spending for display, never enforced.
	TagLimits map[Tag]int `json:"tagLimits"`

	PrivacyModeEnabled bool `json:"privacyModeEnabled"`
	EnableAI           bool `json:"enableAI"`

	// PrimaryAccount must be a member of BankAccounts.
	PrimaryAccount string         `json:"primaryAccount"`
	DashboardScope DashboardScope `json:"dashboardScope"`
}

// ProtectedAccounts cannot be removed from settings, only renamed.
var ProtectedAccounts = []string{"Cash", "Main Bank"}

// IsProtectedAccount reports whether name is policy-protected from deletion.
func IsProtectedAccount(name string) bool {
	return slices.Contains(ProtectedAccounts, name)
}

// DefaultSettings returns the configuration seeded on first access.
func DefaultSettings() Settings {
	return Settings{
		CurrencyCode:   "USD",
		CurrencySymbol: "$",
		BankAccounts:   []string{"Cash", "Main Bank"},
		ParkAccounts:   []string{"Cash", "Main Bank", "Vault"},
		ExpenseCategories: []string{
			"Food & Dining",
			"Transportation",
			"Shopping",
			"Bills & Utilities",
			"Entertainment",
			"Health",
			"Other",
		},
		IncomeCategories: []string{
			"Salary",
			"Freelance",
			"Other",
		},
		TagLimits: map[Tag]int{
			TagNeed:       50,
			TagWant:       30,
			TagInvest:     20,
			TagAdjustment: 0,
		},
		PrivacyModeEnabled: false,
		EnableAI:           true,
		PrimaryAccount:     "Main Bank",
		DashboardScope:     ScopeAll,
	}
}
