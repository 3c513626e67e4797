package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/fintrackhq/fintrack/internal/cli"
	"github.com/fintrackhq/fintrack/internal/ledger"
	"github.com/fintrackhq/fintrack/internal/model"
)

func goalsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goals",
		Short: "Manage savings goals",
	}

	cmd.AddCommand(listGoalsCmd())
	cmd.AddCommand(addGoalCmd())
	cmd.AddCommand(deleteGoalCmd())

	return cmd
}

func listGoalsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List goals with their progress",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			kv, s, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer kv.Close()

			goals, err := s.Goals(ctx)
			if err != nil {
				return err
			}
			if len(goals) == 0 {
				fmt.Println(cli.InfoStyle.Render("No goals set yet. Use 'fintrack goals add' to create one."))
				return nil
			}

			settings, err := s.Settings(ctx)
			if err != nil {
				return err
			}
			txs, err := s.Transactions(ctx)
			if err != nil {
				return err
			}
			money := cli.NewMoneyFormatter(settings)

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			for _, goal := range goals {
				progress := ledger.GoalProgress(goal, txs)
				fmt.Fprintf(w, "%s\t%s / %s\t%.0f%%\t%s\n",
					cli.BoldStyle.Render(goal.Name),
					money.Format(progress.Saved),
					money.Format(goal.TargetAmount),
					progress.Percent,
					cli.SubtleStyle.Render(goal.ID))

				for account, amount := range progress.PerAccount {
					fmt.Fprintf(w, "  parked at %s\t%s\n", account, money.Format(amount))
				}
			}
			return nil
		},
	}
}

func addGoalCmd() *cobra.Command {
	var (
		target   string
		deadline string
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			value, err := decimal.NewFromString(target)
			if err != nil {
				return fmt.Errorf("invalid target amount %q: %w", target, err)
			}

			goal := model.Goal{
				ID:           uuid.NewString(),
				Name:         args[0],
				TargetAmount: value,
			}
			if deadline != "" {
				t, err := time.Parse("2006-01-02", deadline)
				if err != nil {
					return fmt.Errorf("invalid deadline %q: %w", deadline, err)
				}
				goal.Deadline = &t
			}
			if err := goal.Validate(); err != nil {
				return err
			}

			kv, s, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer kv.Close()

			if err := s.AddGoal(ctx, goal); err != nil {
				return fmt.Errorf("failed to add goal: %w", err)
			}
			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Goal %q created (%s).", goal.Name, goal.ID)))
			return nil
		},
	}

	cmd.Flags().StringVar(&target, "target", "", "target amount (required)")
	cmd.Flags().StringVar(&deadline, "deadline", "", "advisory deadline as YYYY-MM-DD")
	_ = cmd.MarkFlagRequired("target")
	return cmd
}

func deleteGoalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a goal",
		Long: `Delete a goal by id. Parked transactions that referenced it are kept; they
simply no longer count toward any goal.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			kv, s, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer kv.Close()

			if err := s.RemoveGoal(ctx, args[0]); err != nil {
				return fmt.Errorf("failed to delete goal: %w", err)
			}
			fmt.Println(cli.SuccessStyle.Render("Goal deleted."))
			return nil
		},
	}
}
