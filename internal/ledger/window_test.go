package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/fintrackhq/fintrack/internal/model"
)

func txOn(date time.Time) model.Transaction {
	return model.Transaction{ID: "tx", Type: model.TypeExpense, Date: date}
}

func TestWindow_Filter(t *testing.T) {
	now := time.Date(2026, 8, 15, 12, 30, 0, 0, time.UTC)

	txs := []model.Transaction{
		txOn(time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)),
		txOn(time.Date(2026, 8, 31, 23, 59, 0, 0, time.UTC)),
		txOn(time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)),
		txOn(time.Date(2026, 7, 31, 8, 0, 0, 0, time.UTC)),
		txOn(time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC)),
	}

	tests := []struct {
		name   string
		window Window
		want   int
	}{
		{name: "all", window: Window{Kind: WindowAll}, want: 5},
		{name: "this month includes both ends", window: Window{Kind: WindowThisMonth}, want: 2},
		{name: "last month includes both ends", window: Window{Kind: WindowLastMonth}, want: 2},
		{
			name: "custom includes both endpoints",
			window: Window{
				Kind:  WindowCustom,
				Start: timePtr(time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC)),
				End:   timePtr(time.Date(2026, 7, 31, 0, 0, 0, 0, time.UTC)),
			},
			want: 3,
		},
		{
			name:   "custom missing start behaves as all",
			window: Window{Kind: WindowCustom, End: timePtr(now)},
			want:   5,
		},
		{
			name:   "custom missing end behaves as all",
			window: Window{Kind: WindowCustom, Start: timePtr(now)},
			want:   5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.window.Filter(txs, now)
			assert.Len(t, got, tt.want)
		})
	}
}

func TestWindow_Filter_IgnoresTimeOfDay(t *testing.T) {
	now := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)

	// Late on the boundary day still counts.
	late := txOn(time.Date(2026, 7, 31, 23, 0, 0, 0, time.UTC))
	window := Window{
		Kind:  WindowCustom,
		Start: timePtr(time.Date(2026, 7, 1, 10, 0, 0, 0, time.UTC)),
		End:   timePtr(time.Date(2026, 7, 31, 1, 0, 0, 0, time.UTC)),
	}

	got := window.Filter([]model.Transaction{late}, now)
	assert.Len(t, got, 1)
}

func TestWindow_LastMonthAcrossYearBoundary(t *testing.T) {
	now := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)

	december := txOn(time.Date(2025, 12, 25, 0, 0, 0, 0, time.UTC))
	january := txOn(time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC))

	got := Window{Kind: WindowLastMonth}.Filter([]model.Transaction{december, january}, now)
	assert.Len(t, got, 1)
	assert.Equal(t, december.Date, got[0].Date)
}

func timePtr(t time.Time) *time.Time {
	return &t
}
