package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fintrackhq/fintrack/internal/cli"
	"github.com/fintrackhq/fintrack/internal/model"
)

func settingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show and change profile settings",
	}

	cmd.AddCommand(showSettingsCmd())
	cmd.AddCommand(currencyCmd())
	cmd.AddCommand(scopeCmd())
	cmd.AddCommand(privacyCmd())
	cmd.AddCommand(accountCmd())
	cmd.AddCommand(categoryCmd())

	return cmd
}

func showSettingsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the current settings",
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

			fmt.Println(cli.TitleStyle.Render("Settings"))
			fmt.Printf("Currency:          %s (%s)\n", settings.CurrencyCode, settings.CurrencySymbol)
			fmt.Printf("Bank accounts:     %v\n", settings.BankAccounts)
			fmt.Printf("Park accounts:     %v\n", settings.ParkAccounts)
			fmt.Printf("Primary account:   %s\n", settings.PrimaryAccount)
			fmt.Printf("Dashboard scope:   %s\n", settings.DashboardScope)
			fmt.Printf("Expense categories: %v\n", settings.ExpenseCategories)
			fmt.Printf("Income categories:  %v\n", settings.IncomeCategories)
			fmt.Printf("Tag limits:        %v\n", settings.TagLimits)
			fmt.Printf("Privacy mode:      %v\n", settings.PrivacyModeEnabled)
			fmt.Printf("AI insights:       %v\n", settings.EnableAI)
			return nil
		},
	}
}

func currencyCmd() *cobra.Command {
	var symbol string

	cmd := &cobra.Command{
		Use:   "currency <code>",
		Short: "Set the display currency",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
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
			settings.CurrencyCode = args[0]
			if symbol != "" {
				settings.CurrencySymbol = symbol
			}
			if err := s.SaveSettings(ctx, settings); err != nil {
				return err
			}
			fmt.Println(cli.SuccessStyle.Render("Currency updated."))
			return nil
		},
	}

	cmd.Flags().StringVar(&symbol, "symbol", "", "currency symbol shown before amounts")
	return cmd
}

func scopeCmd() *cobra.Command {
	var primary string

	cmd := &cobra.Command{
		Use:   "scope <all|primary>",
		Short: "Set the dashboard scope",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
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

			switch args[0] {
			case "all":
				settings.DashboardScope = model.ScopeAll
			case "primary":
				settings.DashboardScope = model.ScopePrimary
			default:
				return fmt.Errorf("unknown scope %q, want all or primary", args[0])
			}

			if primary != "" {
				found := false
				for _, name := range settings.BankAccounts {
					if name == primary {
						found = true
						break
					}
				}
				if !found {
					return fmt.Errorf("primary account %q is not a declared bank account", primary)
				}
				settings.PrimaryAccount = primary
			}

			if err := s.SaveSettings(ctx, settings); err != nil {
				return err
			}
			fmt.Println(cli.SuccessStyle.Render("Dashboard scope updated."))
			return nil
		},
	}

	cmd.Flags().StringVar(&primary, "primary", "", "also set the primary account")
	return cmd
}

func privacyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "privacy <on|off>",
		Short: "Toggle masking of amounts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
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
			switch args[0] {
			case "on":
				settings.PrivacyModeEnabled = true
			case "off":
				settings.PrivacyModeEnabled = false
			default:
				return fmt.Errorf("unknown value %q, want on or off", args[0])
			}
			if err := s.SaveSettings(ctx, settings); err != nil {
				return err
			}
			fmt.Println(cli.SuccessStyle.Render("Privacy mode updated."))
			return nil
		},
	}
}

func accountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Manage bank accounts",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "add <name>",
		Short: "Declare a new bank account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			kv, s, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer kv.Close()

			if err := s.AddBankAccount(ctx, args[0]); err != nil {
				return err
			}
			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Account %q added.", args[0])))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "rename <old> <new>",
		Short: "Rename an account everywhere",
		Long: `Rename an account. Every transaction referencing the old name is rewritten
along with the settings lists and the primary account. Balances are unchanged:
a rename is a pure relabeling.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			kv, s, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer kv.Close()

			if err := s.RenameAccount(ctx, args[0], args[1]); err != nil {
				return err
			}
			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Renamed %q to %q.", args[0], args[1])))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "remove <name>",
		Short: "Remove an account from settings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			kv, s, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer kv.Close()

			if err := s.RemoveAccount(ctx, args[0]); err != nil {
				return err
			}
			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Account %q removed.", args[0])))
			return nil
		},
	})

	return cmd
}

func categoryCmd() *cobra.Command {
	var income bool

	cmd := &cobra.Command{
		Use:   "category add <name>",
		Short: "Add a custom category",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[0] != "add" {
				return fmt.Errorf("unknown subcommand %q", args[0])
			}
			name := args[1]
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

			list := &settings.ExpenseCategories
			if income {
				list = &settings.IncomeCategories
			}
			for _, existing := range *list {
				if existing == name {
					return fmt.Errorf("category %q already exists", name)
				}
			}
			*list = append(*list, name)

			if err := s.SaveSettings(ctx, settings); err != nil {
				return err
			}
			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Category %q added.", name)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&income, "income", false, "add to the income categories instead of expenses")
	return cmd
}
