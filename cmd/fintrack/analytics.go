package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/fintrackhq/fintrack/internal/cli"
	"github.com/fintrackhq/fintrack/internal/ledger"
)

func analyticsCmd() *cobra.Command {
	var (
		period string
		start  string
		end    string
	)

	cmd := &cobra.Command{
		Use:   "analytics",
		Short: "Show account balances and spending breakdowns",
		Long: `Display per-account balances, budget tag utilization and the expense
category breakdown. Balances are lifetime; the breakdowns honor --period.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			window, err := parseWindow(period, start, end)
			if err != nil {
				return err
			}

			kv, s, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer kv.Close()

			settings, err := s.Settings(ctx)
			if err != nil {
				return err
			}
			txs, err := s.Transactions(ctx)
			if err != nil {
				return err
			}

			money := cli.NewMoneyFormatter(settings)
			now := time.Now()

			fmt.Println(cli.TitleStyle.Render("Account Balances"))
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			for _, ab := range ledger.AccountBalances(txs, settings) {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					ab.Name,
					cli.SuccessStyle.Render("+"+money.Format(ab.Income)),
					cli.ErrorStyle.Render("-"+money.Format(ab.Expense)),
					cli.SubtleStyle.Render("pk "+money.Format(ab.Parked)),
					cli.BoldStyle.Render(money.Format(ab.Balance)))
			}
			w.Flush()

			fmt.Println()
			fmt.Println(cli.TitleStyle.Render("Budget Utilization (Tags)"))
			w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			for _, usage := range ledger.TagBreakdown(txs, settings.TagLimits, window, now) {
				if usage.Amount.IsZero() {
					continue
				}
				fmt.Fprintf(w, "%s\t%s\t%.0f%% used\t(limit: %d%%)\n",
					usage.Tag,
					money.Format(usage.Amount),
					usage.Percentage,
					usage.Limit)
			}
			w.Flush()

			fmt.Println()
			fmt.Println(cli.TitleStyle.Render("Category Breakdown"))
			breakdown := ledger.CategoryBreakdown(txs, window, now)
			if len(breakdown) == 0 {
				fmt.Println(cli.InfoStyle.Render("No expense data in this period."))
				return nil
			}
			w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			for _, ct := range breakdown {
				fmt.Fprintf(w, "%s\t%s\n", ct.Category, money.Format(ct.Amount))
			}
			w.Flush()
			return nil
		},
	}

	cmd.Flags().StringVar(&period, "period", "all", "time period (all, this-month, last-month, custom)")
	cmd.Flags().StringVar(&start, "start", "", "custom period start as YYYY-MM-DD")
	cmd.Flags().StringVar(&end, "end", "", "custom period end as YYYY-MM-DD (inclusive)")
	return cmd
}

// parseWindow maps the period flags onto a ledger window.
func parseWindow(period, start, end string) (ledger.Window, error) {
	switch period {
	case "", "all":
		return ledger.Window{Kind: ledger.WindowAll}, nil
	case "this-month":
		return ledger.Window{Kind: ledger.WindowThisMonth}, nil
	case "last-month":
		return ledger.Window{Kind: ledger.WindowLastMonth}, nil
	case "custom":
		window := ledger.Window{Kind: ledger.WindowCustom}
		if start != "" {
			t, err := time.Parse("2006-01-02", start)
			if err != nil {
				return ledger.Window{}, fmt.Errorf("invalid start date %q: %w", start, err)
			}
			window.Start = &t
		}
		if end != "" {
			t, err := time.Parse("2006-01-02", end)
			if err != nil {
				return ledger.Window{}, fmt.Errorf("invalid end date %q: %w", end, err)
			}
			window.End = &t
		}
		return window, nil
	default:
		return ledger.Window{}, fmt.Errorf("unknown period %q", period)
	}
}
