package ledger

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fintrackhq/fintrack/internal/model"
)

// CategoryTotal is an expense sum for one category bucket.
type CategoryTotal struct {
	Category string
	Amount   decimal.Decimal
}

// CategoryBreakdown sums expense amounts by category over the window, sorted
// largest first. Unrecognized category strings (for instance imported data
// referencing a deleted category) form their own buckets; the engine never
// rejects a string it has not seen before.
func CategoryBreakdown(txs []model.Transaction, window Window, now time.Time) []CategoryTotal {
	sums := make(map[string]decimal.Decimal)
	for _, tx := range window.Filter(txs, now) {
		if tx.Type != model.TypeExpense {
			continue
		}
		sums[tx.Category] = sums[tx.Category].Add(tx.Amount)
	}

	out := make([]CategoryTotal, 0, len(sums))
	for category, amount := range sums {
		out = append(out, CategoryTotal{Category: category, Amount: amount})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Amount.Equal(out[j].Amount) {
			return out[i].Amount.GreaterThan(out[j].Amount)
		}
		return out[i].Category < out[j].Category
	})
	return out
}

// TagUsage is the budget utilization of one tag within a window.
type TagUsage struct {
	Tag    model.Tag
	Amount decimal.Decimal
	// Percentage is this tag's share of the windowed expense total, 0 when
	// nothing was spent in the window.
	Percentage float64
	// Limit is the configured budget percentage, compared for display only.
	Limit int
}

// TagBreakdown computes per-tag expense shares over the window, one entry per
// known tag in display order. Expenses carrying an unknown tag still count
// toward the window total and get a trailing bucket of their own.
func TagBreakdown(txs []model.Transaction, limits map[model.Tag]int, window Window, now time.Time) []TagUsage {
	sums := make(map[model.Tag]decimal.Decimal)
	var total decimal.Decimal
	for _, tx := range window.Filter(txs, now) {
		if tx.Type != model.TypeExpense {
			continue
		}
		sums[tx.Tag] = sums[tx.Tag].Add(tx.Amount)
		total = total.Add(tx.Amount)
	}

	known := model.Tags()
	out := make([]TagUsage, 0, len(known))
	for _, tag := range known {
		out = append(out, TagUsage{
			Tag:        tag,
			Amount:     sums[tag],
			Percentage: share(sums[tag], total),
			Limit:      limits[tag],
		})
		delete(sums, tag)
	}

	// Whatever remains came from data with tags this build does not know.
	extras := make([]model.Tag, 0, len(sums))
	for tag := range sums {
		extras = append(extras, tag)
	}
	sort.Slice(extras, func(i, j int) bool { return extras[i] < extras[j] })
	for _, tag := range extras {
		out = append(out, TagUsage{
			Tag:        tag,
			Amount:     sums[tag],
			Percentage: share(sums[tag], total),
			Limit:      limits[tag],
		})
	}
	return out
}

// share returns amount/total as a percentage, guarding the zero-total case so
// callers never see NaN.
func share(amount, total decimal.Decimal) float64 {
	if total.IsZero() {
		return 0
	}
	pct, _ := amount.Div(total).Mul(decimal.NewFromInt(100)).Float64()
	return pct
}
