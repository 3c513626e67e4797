package ledger

import (
	"time"

	"github.com/fintrackhq/fintrack/internal/model"
)

// WindowKind selects how a time window is derived.
type WindowKind string

const (
	WindowAll       WindowKind = "ALL"
	WindowThisMonth WindowKind = "THIS_MONTH"
	WindowLastMonth WindowKind = "LAST_MONTH"
	WindowCustom    WindowKind = "CUSTOM"
)

// Window is a calendar-date filter over transactions. Month windows follow
// the calendar month of "now" at evaluation time; custom windows include both
// endpoints. A custom window missing either endpoint behaves as WindowAll.
type Window struct {
	Kind  WindowKind
	Start *time.Time
	End   *time.Time
}

// bounds resolves the window into concrete [start, end] dates, reporting
// whether any filtering applies at all.
func (w Window) bounds(now time.Time) (start, end time.Time, bounded bool) {
	switch w.Kind {
	case WindowThisMonth:
		start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		end = start.AddDate(0, 1, -1)
		return start, end, true
	case WindowLastMonth:
		end = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, 0, -1)
		start = time.Date(end.Year(), end.Month(), 1, 0, 0, 0, 0, now.Location())
		return start, end, true
	case WindowCustom:
		if w.Start == nil || w.End == nil {
			return time.Time{}, time.Time{}, false
		}
		return *w.Start, *w.End, true
	default:
		return time.Time{}, time.Time{}, false
	}
}

// Filter returns the transactions whose date falls inside the window. Only
// the calendar date matters; time-of-day is discarded before comparing.
func (w Window) Filter(txs []model.Transaction, now time.Time) []model.Transaction {
	start, end, bounded := w.bounds(now)
	if !bounded {
		return txs
	}

	startDay := truncateToDay(start)
	endDay := truncateToDay(end)

	var out []model.Transaction
	for _, tx := range txs {
		day := truncateToDay(tx.Date)
		if day.Before(startDay) || day.After(endDay) {
			continue
		}
		out = append(out, tx)
	}
	return out
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
