package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nuellacreatives/ledger-api/infrastructure/repository"
	"github.com/nuellacreatives/ledger-api/internal/usecases/selling"
	"github.com/nuellacreatives/ledger-api/internal/usecases/stocking"
)

func newSeedCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Grava os dados de exemplo no armazenamento configurado",
		Long: `Grava as vendas e os itens de estoque de exemplo quando o armazenamento
está vazio. Dados já existentes não são alterados.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			storage, err := repository.Open(ctx, a.cfg)
			if err != nil {
				return err
			}
			defer storage.Close()

			sales := selling.NewService(storage.Sales, a.formatter, true)
			if err := sales.Load(ctx); err != nil {
				return err
			}

			inventory := stocking.NewService(storage.Inventory, a.formatter, a.cfg.Inventory.LowStockThreshold, true)
			if err := inventory.Load(ctx); err != nil {
				return err
			}

			records, err := sales.ListSales(ctx)
			if err != nil {
				return err
			}
			items, err := inventory.ListItems(ctx)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%d venda(s) e %d item(ns) de estoque no armazenamento %s\n",
				len(records), len(items), a.cfg.Storage.Driver)
			return nil
		},
	}
}
