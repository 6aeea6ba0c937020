package reporting

import (
	"context"

	"github.com/nuellacreatives/ledger-api/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

// SalesLister fornece a lista atual de vendas
type SalesLister interface {
	ListSales(ctx context.Context) ([]*domain.SaleRecord, error)
}

// Exporter gera o arquivo de um relatório já formatado
type Exporter interface {
	MonthlyReportXLSX(report *domain.MonthlyReport) ([]byte, error)
}

// ReportService é o caminho de leitura do relatório mensal
type ReportService interface {
	Snapshot(ctx context.Context) (*domain.ReportSnapshot, error)
	MonthlyReport(ctx context.Context, currency string) (*domain.MonthlyReport, error)
	MonthlyReportWithFallback(ctx context.Context, currency string) (*domain.MonthlyReport, error)
	ExportMonthlyReport(ctx context.Context, currency string) (*domain.ExportedFile, error)
}
