package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newFixtureCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fixture [file]",
		Short: "Valida un fixture (o el embebido) y lo imprime como JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}

			f, err := loadFixture(path)
			if err != nil {
				return err
			}
			if err := f.Validate(); err != nil {
				return fmt.Errorf("invalid fixture: %w", err)
			}

			data, err := json.MarshalIndent(f, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
}
