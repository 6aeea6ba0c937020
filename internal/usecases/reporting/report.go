// Package reporting monta o relatório mensal de vendas formatado.
package reporting

import (
	"errors"

	"github.com/nuellacreatives/ledger-api/internal/domain"
	"github.com/nuellacreatives/ledger-api/internal/usecases/formatting"
)

var ErrNilSnapshot = errors.New("report snapshot is nil")

// BuildReport formata os 12 meses e o total geral na moeda informada.
// Os totais na moeda base são copiados sem arredondamento; só os textos são arredondados.
func BuildReport(snapshot *domain.ReportSnapshot, code string, formatter *formatting.Formatter) (*domain.MonthlyReport, error) {
	if snapshot == nil {
		return nil, ErrNilSnapshot
	}

	currency, err := formatter.Lookup(code)
	if err != nil {
		return nil, err
	}

	report := &domain.MonthlyReport{
		Currency:        currency.Code,
		Months:          make([]domain.FormattedMonth, 0, len(snapshot.Buckets)),
		GrandTotal:      snapshot.GrandTotal,
		Unassigned:      snapshot.Unassigned,
		UnassignedTotal: snapshot.UnassignedTotal,
	}

	for _, bucket := range snapshot.Buckets {
		formatted, err := formatter.Format(bucket.Total, string(currency.Code))
		if err != nil {
			return nil, err
		}

		report.Months = append(report.Months, domain.FormattedMonth{
			Month:     bucket.Month,
			Total:     bucket.Total,
			Formatted: formatted,
		})
	}

	report.GrandTotalFormatted, err = formatter.Format(snapshot.GrandTotal, string(currency.Code))
	if err != nil {
		return nil, err
	}

	return report, nil
}
