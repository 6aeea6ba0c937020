package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nuellacreatives/ledger-api/infrastructure/database/postgres"
	"github.com/nuellacreatives/ledger-api/infrastructure/migration"
)

func newMigrateCommand(a *app) *cobra.Command {
	var down bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Aplica as migrações do PostgreSQL",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			conn, err := postgres.NewConnection(cmd.Context(), a.cfg.Database)
			if err != nil {
				return err
			}
			defer conn.Close()

			if down {
				if err := migration.Down(conn.DB); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Migrações desfeitas")
				return nil
			}

			if err := migration.Up(conn.DB); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Schema atualizado")
			return nil
		},
	}

	cmd.Flags().BoolVar(&down, "down", false, "desfaz todas as migrações")

	return cmd
}
