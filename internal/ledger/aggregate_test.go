package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintrackhq/fintrack/internal/model"
)

func expense(amount int64, category string, tag model.Tag) model.Transaction {
	return model.Transaction{
		ID:       "tx",
		Type:     model.TypeExpense,
		Amount:   decimal.NewFromInt(amount),
		Category: category,
		Tag:      tag,
		Date:     time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC),
	}
}

func TestCategoryBreakdown(t *testing.T) {
	now := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)

	txs := []model.Transaction{
		expense(100, "Food & Dining", model.TagNeed),
		expense(50, "Food & Dining", model.TagNeed),
		expense(200, "Entertainment", model.TagWant),
		// Categories deleted from settings still bucket under their string.
		expense(25, "Deleted Category", model.TagWant),
		tx(model.TypeIncome, 999, "Main Bank"),
	}

	got := CategoryBreakdown(txs, Window{Kind: WindowAll}, now)

	require.Len(t, got, 3)
	assert.Equal(t, "Entertainment", got[0].Category)
	assert.True(t, got[0].Amount.Equal(decimal.NewFromInt(200)))
	assert.Equal(t, "Food & Dining", got[1].Category)
	assert.True(t, got[1].Amount.Equal(decimal.NewFromInt(150)))
	assert.Equal(t, "Deleted Category", got[2].Category)
}

func TestCategoryBreakdown_TiesSortByName(t *testing.T) {
	now := time.Now()
	txs := []model.Transaction{
		expense(100, "Zebra", model.TagWant),
		expense(100, "Apple", model.TagWant),
	}

	got := CategoryBreakdown(txs, Window{Kind: WindowAll}, now)
	require.Len(t, got, 2)
	assert.Equal(t, "Apple", got[0].Category)
	assert.Equal(t, "Zebra", got[1].Category)
}

func TestTagBreakdown(t *testing.T) {
	now := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
	limits := model.DefaultSettings().TagLimits

	txs := []model.Transaction{
		expense(50, "Food & Dining", model.TagNeed),
		expense(30, "Entertainment", model.TagWant),
		expense(20, "Other", model.TagInvest),
	}

	got := TagBreakdown(txs, limits, Window{Kind: WindowAll}, now)

	// One entry per known tag, display order.
	require.Len(t, got, 4)
	assert.Equal(t, model.TagNeed, got[0].Tag)
	assert.InDelta(t, 50.0, got[0].Percentage, 0.001)
	assert.Equal(t, 50, got[0].Limit)
	assert.Equal(t, model.TagWant, got[1].Tag)
	assert.InDelta(t, 30.0, got[1].Percentage, 0.001)
	assert.Equal(t, model.TagInvest, got[2].Tag)
	assert.InDelta(t, 20.0, got[2].Percentage, 0.001)
	assert.Equal(t, model.TagAdjustment, got[3].Tag)
	assert.Zero(t, got[3].Percentage)
}

func TestTagBreakdown_ZeroTotalHasZeroPercentages(t *testing.T) {
	got := TagBreakdown(nil, model.DefaultSettings().TagLimits, Window{Kind: WindowAll}, time.Now())

	require.Len(t, got, 4)
	for _, usage := range got {
		assert.Zero(t, usage.Percentage, "tag %s", usage.Tag)
		assert.False(t, usage.Percentage != usage.Percentage, "NaN percentage for tag %s", usage.Tag)
	}
}

func TestTagBreakdown_UnknownTagsGetTrailingBuckets(t *testing.T) {
	now := time.Now()
	txs := []model.Transaction{
		expense(60, "Other", model.TagNeed),
		expense(40, "Other", model.Tag("Legacy")),
	}

	got := TagBreakdown(txs, model.DefaultSettings().TagLimits, Window{Kind: WindowAll}, now)

	require.Len(t, got, 5)
	assert.Equal(t, model.Tag("Legacy"), got[4].Tag)
	// The unknown tag still counts toward the total.
	assert.InDelta(t, 40.0, got[4].Percentage, 0.001)
	assert.InDelta(t, 60.0, got[0].Percentage, 0.001)
}

func TestTagBreakdown_WindowApplies(t *testing.T) {
	now := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)

	inWindow := expense(100, "Other", model.TagNeed)
	outOfWindow := expense(900, "Other", model.TagNeed)
	outOfWindow.Date = time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)

	got := TagBreakdown(
		[]model.Transaction{inWindow, outOfWindow},
		model.DefaultSettings().TagLimits,
		Window{Kind: WindowThisMonth},
		now,
	)

	assert.True(t, got[0].Amount.Equal(decimal.NewFromInt(100)))
	assert.InDelta(t, 100.0, got[0].Percentage, 0.001)
}
