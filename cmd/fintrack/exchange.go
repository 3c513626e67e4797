package main

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/fintrackhq/fintrack/internal/cli"
	"github.com/fintrackhq/fintrack/internal/model"
)

func exchangeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exchange",
		Short: "Manage currency exchange viewers",
		Long: `Maintain up to three currency-pair viewer cards. Rates refresh only on
demand; a failed fetch keeps the previous update time so staleness is visible.`,
	}

	cmd.AddCommand(listCardsCmd())
	cmd.AddCommand(addCardCmd())
	cmd.AddCommand(refreshCardCmd())
	cmd.AddCommand(swapCardCmd())
	cmd.AddCommand(amountCardCmd())
	cmd.AddCommand(deleteCardCmd())

	return cmd
}

func listCardsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List exchange cards",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			kv, s, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer kv.Close()

			cards, err := newRateService(s).Cards(ctx)
			if err != nil {
				return err
			}
			if len(cards) == 0 {
				fmt.Println(cli.InfoStyle.Render("No exchange cards. Use 'fintrack exchange add' to create one."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			for _, card := range cards {
				fmt.Fprintf(w, "%s\t%s -> %s\t%s\t%s\t%s\n",
					cli.SubtleStyle.Render(card.ID),
					card.From, card.To,
					formatRate(card),
					formatConverted(card),
					formatUpdated(card))
			}
			return nil
		},
	}
}

func addCardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <from> <to>",
		Short: "Create an exchange card",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			kv, s, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer kv.Close()

			card, err := newRateService(s).Create(ctx, args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Card %s -> %s created (%s).", card.From, card.To, card.ID)))
			return nil
		},
	}
}

func refreshCardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "refresh <id>",
		Short: "Re-fetch a card's rate",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			kv, s, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer kv.Close()

			card, err := newRateService(s).Refresh(ctx, args[0])
			if err != nil {
				return err
			}
			fmt.Printf("%s -> %s: %s (%s)\n", card.From, card.To, formatRate(card), formatUpdated(card))
			return nil
		},
	}
}

func swapCardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "swap <id>",
		Short: "Swap a card's currencies",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			kv, s, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer kv.Close()

			card, err := newRateService(s).Swap(ctx, args[0])
			if err != nil {
				return err
			}
			fmt.Printf("%s -> %s: %s\n", card.From, card.To, formatRate(card))
			return nil
		},
	}
}

func amountCardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "amount <id> <amount>",
		Short: "Change a card's display amount",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			amount, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[1], err)
			}

			kv, s, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer kv.Close()

			card, err := newRateService(s).UpdateAmount(ctx, args[0], amount)
			if err != nil {
				return err
			}
			fmt.Printf("%s -> %s: %s\n", card.From, card.To, formatConverted(card))
			return nil
		},
	}
}

func deleteCardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an exchange card",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			kv, s, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer kv.Close()

			if err := newRateService(s).Delete(ctx, args[0]); err != nil {
				return err
			}
			fmt.Println(cli.SuccessStyle.Render("Card deleted."))
			return nil
		},
	}
}

func formatRate(card model.ExchangeCard) string {
	if card.Rate == nil || *card.Rate == 0 {
		return cli.WarningStyle.Render("rate unknown")
	}
	return fmt.Sprintf("1 %s = %g %s", card.From, *card.Rate, card.To)
}

func formatConverted(card model.ExchangeCard) string {
	if card.Rate == nil || *card.Rate == 0 {
		return "..."
	}
	return fmt.Sprintf("%g %s = %.2f %s", card.Amount, card.From, card.Amount**card.Rate, card.To)
}

func formatUpdated(card model.ExchangeCard) string {
	if card.LastUpdated == nil {
		return cli.SubtleStyle.Render("never updated")
	}
	return cli.SubtleStyle.Render("updated " + card.LastUpdated.Format("2006-01-02 15:04"))
}
