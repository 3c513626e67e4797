package advice

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/fintrackhq/fintrack/internal/model"
)

// maxSummarized caps how many transactions are shared with the model. Only a
// reduced summary line per transaction ever leaves the process.
const maxSummarized = 50

// Fallback messages surfaced instead of errors.
const (
	msgNoTransactions = "Please add some transactions first so I can analyze your spending habits."
	msgUnavailable    = "Sorry, I'm having trouble connecting to the financial brain right now. Please try again later."
)

// Advisor asks the generator for spending insights.
type Advisor struct {
	generator Generator
}

// NewAdvisor wraps a generator.
func NewAdvisor(generator Generator) *Advisor {
	return &Advisor{generator: generator}
}

// Advise summarizes the most recent transactions and returns insight text.
// It never returns an error to the caller: any failure produces a fallback
// message instead.
func (a *Advisor) Advise(ctx context.Context, txs []model.Transaction) string {
	if len(txs) == 0 {
		return msgNoTransactions
	}

	text, err := a.generator.Generate(ctx, BuildPrompt(txs))
	if err != nil {
		slog.Warn("Advice generation failed", "error", err)
		return msgUnavailable
	}
	return text
}

// BuildPrompt renders the advice prompt from at most maxSummarized
// transactions, each reduced to date, type, amount, category and note.
func BuildPrompt(txs []model.Transaction) string {
	if len(txs) > maxSummarized {
		txs = txs[:maxSummarized]
	}

	var summary strings.Builder
	for _, tx := range txs {
		fmt.Fprintf(&summary, "- %s: %s of $%s for %s (%s)\n",
			tx.Date.Format("2006-01-02"),
			strings.ToUpper(string(tx.Type)),
			tx.Amount.String(),
			tx.Category,
			tx.Note)
	}

	return fmt.Sprintf(`You are a personal finance assistant. Here are my recent transactions:

%s
Based on this data, provide:
1. A brief 1-sentence summary of my spending behavior.
2. Three specific, actionable tips to save money or improve my financial health.

Keep the tone encouraging but professional. Format the output with clear headings.`, summary.String())
}
