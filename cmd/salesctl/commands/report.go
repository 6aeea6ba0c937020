package commands

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/nuellacreatives/ledger-api/internal/domain"
	"github.com/nuellacreatives/ledger-api/internal/usecases/formatting"
)

func newReportCommand(a *app) *cobra.Command {
	var (
		file     string
		currency string
		strict   bool
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Imprime o relatório mensal de vendas",
		Example: `  salesctl report --file salesData.json --currency USD
  salesctl report --file salesData.json --strict`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			service, err := a.reportService(cmd.Context(), file, strict)
			if err != nil {
				return err
			}

			// Ao contrário da API, a moeda inválida é erro aqui
			report, err := service.MonthlyReport(cmd.Context(), currency)
			if err != nil {
				return err
			}

			return printReport(cmd.OutOrStdout(), report, a.formatter)
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "arquivo JSON com as vendas (formato salesData)")
	cmd.Flags().StringVar(&currency, "currency", string(domain.CurrencyNGN), "moeda de exibição")
	cmd.Flags().BoolVar(&strict, "strict", false, "falha se alguma venda não tiver data válida")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

// printReport imprime a tabela mensal. O total não atribuído fica na moeda base.
func printReport(out io.Writer, report *domain.MonthlyReport, formatter *formatting.Formatter) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)

	fmt.Fprintf(w, "Month\tTotal (%s)\t\n", report.Currency)
	for _, month := range report.Months {
		fmt.Fprintf(w, "%s\t%s\t\n", month.Month, month.Formatted)
	}
	fmt.Fprintf(w, "Total\t%s\t\n", report.GrandTotalFormatted)

	if err := w.Flush(); err != nil {
		return err
	}

	if report.Unassigned > 0 {
		unassigned, err := formatter.Format(report.UnassignedTotal, string(formatter.Base().Code))
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "\n%d venda(s) com problema de qualidade ficaram fora dos meses (%s)\n",
			report.Unassigned, unassigned)
	}

	return nil
}
