package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fintrackhq/fintrack/internal/cli"
)

func wipeCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "wipe",
		Short: "Erase all data in the active profile",
		Long: `Delete the active profile's transactions, goals, settings, exchange cards
and user record. The other profile is untouched.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			if !force {
				fmt.Print("This permanently erases the active profile. Type 'yes' to continue: ")
				var answer string
				fmt.Scanln(&answer)
				if answer != "yes" {
					fmt.Println("Aborted.")
					return nil
				}
			}

			kv, s, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer kv.Close()

			if err := s.Wipe(ctx); err != nil {
				return fmt.Errorf("failed to wipe profile: %w", err)
			}
			fmt.Println(cli.SuccessStyle.Render("Profile wiped."))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip the confirmation prompt")
	return cmd
}
