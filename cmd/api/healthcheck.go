package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"pets-api/internal/platform/httpclient"
)

func newHealthcheckCmd() *cobra.Command {
	var (
		baseURL string
		deep    bool
	)

	cmd := &cobra.Command{
		Use:   "healthcheck",
		Short: "Verifica que una instancia de la API responda",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := httpclient.New(baseURL, 0)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if err := c.Health(ctx); err != nil {
				return fmt.Errorf("unhealthy: %w", err)
			}
			if !deep {
				fmt.Fprintln(cmd.OutOrStdout(), "healthy")
				return nil
			}

			us, err := c.ListUsers(ctx)
			if err != nil {
				return fmt.Errorf("list users: %w", err)
			}
			ps, err := c.ListPets(ctx, "")
			if err != nil {
				return fmt.Errorf("list pets: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "healthy users=%d pets=%d\n", len(us), len(ps))
			return nil
		},
	}

	cmd.Flags().StringVar(&baseURL, "url", "http://localhost:8080", "URL base de la API")
	cmd.Flags().BoolVar(&deep, "deep", false, "además lista usuarios y mascotas")
	return cmd
}
