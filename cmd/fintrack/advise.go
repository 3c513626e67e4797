package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fintrackhq/fintrack/internal/advice"
	"github.com/fintrackhq/fintrack/internal/cli"
	"github.com/fintrackhq/fintrack/internal/common"
)

func adviseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "advise",
		Short: "Get AI insights on recent spending",
		Long: `Summarize the 50 most recent transactions and ask the model for spending
insights. Only reduced summary lines (date, type, amount, category, note)
leave the machine. If the model is unreachable a fallback message is shown.`,
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
			if !settings.EnableAI {
				fmt.Println(cli.InfoStyle.Render("AI insights are disabled in settings."))
				return nil
			}

			txs, err := s.Transactions(ctx)
			if err != nil {
				return err
			}

			generator, err := advice.NewGeminiGenerator(ctx, viper.GetString("ai.model"))
			if err != nil {
				return common.NewUserError("Could not start the AI client. Is GEMINI_API_KEY set?", err)
			}

			fmt.Println(advice.NewAdvisor(generator).Advise(ctx, txs))
			return nil
		},
	}
}
