package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/fintrackhq/fintrack/internal/cli"
)

func exportCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the active profile as JSON",
		Long: `Write the profile's user, settings, goals and transactions to a single JSON
document. The format is write-only archival; there is no import.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			kv, s, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer kv.Close()

			data, err := s.Export(ctx)
			if err != nil {
				return fmt.Errorf("failed to export: %w", err)
			}

			if output == "" {
				output = fmt.Sprintf("fintrack_backup_%s.json", time.Now().Format("2006-01-02"))
			}
			if output == "-" {
				fmt.Println(string(data))
				return nil
			}

			if err := os.WriteFile(output, data, 0600); err != nil {
				return fmt.Errorf("failed to write %s: %w", output, err)
			}
			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Exported to %s.", output)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default fintrack_backup_<date>.json, - for stdout)")
	return cmd
}
