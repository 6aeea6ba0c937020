package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/nuellacreatives/ledger-api/internal/domain"
	"github.com/nuellacreatives/ledger-api/internal/usecases/reporting"
)

func newExportCommand(a *app) *cobra.Command {
	var (
		file     string
		currency string
		out      string
	)

	cmd := &cobra.Command{
		Use:     "export",
		Short:   "Gera a planilha XLSX do relatório mensal",
		Example: `  salesctl export --file salesData.json --currency USD --out monthly-sales.xlsx`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			service, err := a.reportService(cmd.Context(), file, false)
			if err != nil {
				return err
			}

			exported, err := service.ExportMonthlyReport(cmd.Context(), currency)
			if err != nil {
				return err
			}

			if dir := filepath.Dir(out); dir != "." {
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return fmt.Errorf("erro ao criar diretório %s: %w", dir, err)
				}
			}

			if err := os.WriteFile(out, exported.Data, 0o644); err != nil {
				return fmt.Errorf("erro ao gravar %s: %w", out, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Planilha gravada em %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "arquivo JSON com as vendas (formato salesData)")
	cmd.Flags().StringVar(&currency, "currency", string(domain.CurrencyNGN), "moeda de exibição")
	cmd.Flags().StringVar(&out, "out", reporting.ExportFileName, "arquivo XLSX de saída")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
