package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/fintrackhq/fintrack/internal/cli"
	"github.com/fintrackhq/fintrack/internal/ledger"
	"github.com/fintrackhq/fintrack/internal/model"
	"github.com/fintrackhq/fintrack/internal/store"
)

func listCmd() *cobra.Command {
	var filterType string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show the dashboard and recent transactions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

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
			summary := ledger.Summarize(txs, settings)

			scopeLabel := "Total Net Worth"
			if settings.DashboardScope == model.ScopePrimary {
				scopeLabel = settings.PrimaryAccount + " Overview"
			}
			if s.Namespace() == store.Foreign {
				scopeLabel += " " + cli.WarningStyle.Render("[foreign view]")
			}

			card := fmt.Sprintf("%s\n%s\n\nIncome   %s\nExpense  %s\nParked   %s",
				cli.SubtleStyle.Render(scopeLabel),
				cli.BoldStyle.Render(money.Format(summary.Balance)),
				cli.SuccessStyle.Render(money.Format(summary.TotalIncome)),
				cli.ErrorStyle.Render(money.Format(summary.TotalExpense)),
				money.Format(summary.TotalParked))
			fmt.Println(cli.BoxStyle.Render(card))

			display := txs
			if filterType != "" {
				display = nil
				for _, tx := range txs {
					if tx.Type == model.TransactionType(filterType) {
						display = append(display, tx)
					}
				}
			}

			// The dashboard lists by date, newest first, regardless of the
			// log's insertion order.
			sorted := make([]model.Transaction, len(display))
			copy(sorted, display)
			sort.SliceStable(sorted, func(i, j int) bool {
				return sorted[i].Date.After(sorted[j].Date)
			})

			if len(sorted) == 0 {
				fmt.Println(cli.InfoStyle.Render("No transactions found."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			headerStyle := cli.BoldStyle
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				headerStyle.Render("Date"),
				headerStyle.Render("Type"),
				headerStyle.Render("Category"),
				headerStyle.Render("Account"),
				headerStyle.Render("Amount"),
				headerStyle.Render("ID"))

			for _, tx := range sorted {
				accounts := tx.BankAccount
				if tx.Type == model.TypeTransfer {
					accounts = fmt.Sprintf("%s -> %s", tx.BankAccount, tx.ToAccount)
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					tx.Date.Format("2006-01-02"),
					tx.Type,
					tx.Category,
					accounts,
					formatSigned(money, tx),
					cli.SubtleStyle.Render(tx.ID))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&filterType, "type", "", "only show one transaction type")
	return cmd
}

// formatSigned prefixes the amount the way the dashboard does: income gains a
// plus, transfers stay unsigned, everything else is an outflow.
func formatSigned(money cli.MoneyFormatter, tx model.Transaction) string {
	formatted := money.Format(tx.Amount)
	switch tx.Type {
	case model.TypeIncome:
		return cli.SuccessStyle.Render("+" + formatted)
	case model.TypeTransfer:
		return formatted
	default:
		return "-" + formatted
	}
}
