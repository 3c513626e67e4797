package cli

import (
	"github.com/shopspring/decimal"

	"github.com/fintrackhq/fintrack/internal/model"
)

// MoneyFormatter renders amounts with the profile's currency symbol, masking
// values while privacy mode is on.
type MoneyFormatter struct {
	Symbol  string
	Private bool
}

// NewMoneyFormatter builds a formatter from the profile settings.
func NewMoneyFormatter(settings model.Settings) MoneyFormatter {
	return MoneyFormatter{
		Symbol:  settings.CurrencySymbol,
		Private: settings.PrivacyModeEnabled,
	}
}

// Format renders an amount for display.
func (f MoneyFormatter) Format(amount decimal.Decimal) string {
	if f.Private {
		return f.Symbol + "****"
	}
	return f.Symbol + amount.StringFixed(2)
}
