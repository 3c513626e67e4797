package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/fintrackhq/fintrack/internal/cli"
	"github.com/fintrackhq/fintrack/internal/model"
)

func loginCmd() *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "login <name>",
		Short: "Store the logged-in user for this profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			kv, s, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer kv.Close()

			user := model.User{
				ID:    uuid.NewString(),
				Name:  args[0],
				Email: email,
			}
			if err := s.SaveUser(ctx, user); err != nil {
				return err
			}
			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Logged in as %s.", user.Name)))
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email address")
	return cmd
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the logged-in user and the device PIN",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			kv, s, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer kv.Close()

			if err := s.DeleteUser(ctx); err != nil {
				return err
			}
			if err := s.ClearPIN(ctx); err != nil {
				return err
			}
			fmt.Println(cli.SuccessStyle.Render("Logged out."))
			return nil
		},
	}
}

func pinCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pin",
		Short: "Manage the device PIN",
		Long: `The PIN is a single device lock shared across both profiles. It is a plain
stored-equality check, not an encryption key.`,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "set <pin>",
		Short: "Set the 4-digit PIN",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			kv, s, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer kv.Close()

			if err := s.SetPIN(ctx, args[0]); err != nil {
				return err
			}
			fmt.Println(cli.SuccessStyle.Render("PIN set."))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "verify <pin>",
		Short: "Check a PIN against the stored one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			kv, s, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer kv.Close()

			ok, err := s.VerifyPIN(ctx, args[0])
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("incorrect PIN")
			}
			fmt.Println(cli.SuccessStyle.Render("PIN verified."))
			return nil
		},
	})

	return cmd
}
