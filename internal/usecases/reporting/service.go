package reporting

import (
	"context"
	"errors"
	"fmt"

	"github.com/nuellacreatives/ledger-api/internal/domain"
	"github.com/nuellacreatives/ledger-api/internal/usecases/aggregating"
	"github.com/nuellacreatives/ledger-api/internal/usecases/formatting"
	"github.com/nuellacreatives/ledger-api/pkg/log"
)

const (
	ExportFileName    = "monthly-sales.xlsx"
	ExportContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type Service struct {
	sales     SalesLister
	formatter *formatting.Formatter
	exporter  Exporter
	policy    aggregating.UnknownDatePolicy
}

// NewService cria o serviço de relatórios. O snapshot é recalculado a cada leitura.
func NewService(
	sales SalesLister,
	formatter *formatting.Formatter,
	exporter Exporter,
	policy aggregating.UnknownDatePolicy,
) ReportService {
	return &Service{
		sales:     sales,
		formatter: formatter,
		exporter:  exporter,
		policy:    policy,
	}
}

// Snapshot agrega a lista atual de vendas
func (s *Service) Snapshot(ctx context.Context) (*domain.ReportSnapshot, error) {
	records, err := s.sales.ListSales(ctx)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar vendas: %w", err)
	}

	snapshot, err := aggregating.Aggregate(records, s.policy)
	if err != nil {
		return nil, err
	}

	if snapshot.Unassigned > 0 {
		log.ForContext(ctx).WithFields(log.Fields{
			"unassigned":       snapshot.Unassigned,
			"unassigned_total": snapshot.UnassignedTotal.String(),
		}).Warn("reporting: vendas sem data válida ficaram fora do relatório")
	}

	return snapshot, nil
}

// MonthlyReport monta o relatório na moeda informada. Moeda desconhecida retorna InvalidCurrencyError.
func (s *Service) MonthlyReport(ctx context.Context, currency string) (*domain.MonthlyReport, error) {
	if _, err := s.formatter.Lookup(currency); err != nil {
		return nil, err
	}

	snapshot, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	return BuildReport(snapshot, currency, s.formatter)
}

// MonthlyReportWithFallback monta o relatório e, se a moeda for desconhecida, usa a moeda base
func (s *Service) MonthlyReportWithFallback(ctx context.Context, currency string) (*domain.MonthlyReport, error) {
	report, err := s.MonthlyReport(ctx, currency)
	if err == nil {
		return report, nil
	}

	if !errors.Is(err, formatting.ErrInvalidCurrency) {
		return nil, err
	}

	base := s.formatter.Base()
	log.ForContext(ctx).WithFields(log.Fields{
		"currency":      currency,
		"base_currency": base.Code,
	}).Warn("reporting: moeda desconhecida, usando moeda base")

	report, err = s.MonthlyReport(ctx, string(base.Code))
	if err != nil {
		return nil, err
	}
	report.CurrencyFallback = true

	return report, nil
}

// ExportMonthlyReport gera a planilha do relatório mensal
func (s *Service) ExportMonthlyReport(ctx context.Context, currency string) (*domain.ExportedFile, error) {
	report, err := s.MonthlyReportWithFallback(ctx, currency)
	if err != nil {
		return nil, err
	}

	data, err := s.exporter.MonthlyReportXLSX(report)
	if err != nil {
		return nil, fmt.Errorf("erro ao exportar relatório: %w", err)
	}

	return &domain.ExportedFile{
		Name:        ExportFileName,
		ContentType: ExportContentType,
		Data:        data,
	}, nil
}
