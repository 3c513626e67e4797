package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fintrackhq/fintrack/internal/cli"
	"github.com/fintrackhq/fintrack/internal/store"
)

func profileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Switch between the real and foreign profiles",
		Long: `The foreign profile is a fully isolated decoy dataset. Enabling it for the
first time seeds demo data; disabling it never deletes anything, so the decoy
is intact if re-enabled. No record is ever shared between the two profiles.`,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show the active profile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			kv, err := initKV()
			if err != nil {
				return err
			}
			defer kv.Close()

			ns, err := store.NewResolver(kv).Current(ctx)
			if err != nil {
				return err
			}
			if ns == store.Foreign {
				fmt.Println(cli.WarningStyle.Render("Foreign view is active."))
			} else {
				fmt.Println("Real profile is active.")
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "foreign <on|off>",
		Short: "Enable or disable the foreign view",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var enabled bool
			switch args[0] {
			case "on":
				enabled = true
			case "off":
				enabled = false
			default:
				return fmt.Errorf("unknown value %q, want on or off", args[0])
			}

			kv, err := initKV()
			if err != nil {
				return err
			}
			defer kv.Close()

			if err := store.NewResolver(kv).SetForeign(ctx, enabled); err != nil {
				return err
			}
			if enabled {
				fmt.Println(cli.WarningStyle.Render("Foreign view enabled."))
			} else {
				fmt.Println(cli.SuccessStyle.Render("Back on the real profile."))
			}
			return nil
		},
	})

	return cmd
}
