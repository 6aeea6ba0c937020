package reporting

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/nuellacreatives/ledger-api/internal/domain"
	"github.com/nuellacreatives/ledger-api/internal/usecases/aggregating"
	"github.com/nuellacreatives/ledger-api/internal/usecases/formatting"
	"github.com/nuellacreatives/ledger-api/internal/usecases/reporting/mocks"
)

func TestService_MonthlyReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSales := mocks.NewMockSalesLister(ctrl)
	mockExporter := mocks.NewMockExporter(ctrl)
	service := NewService(mockSales, newFormatter(t), mockExporter, aggregating.UnknownDateExclude)

	ctx := context.Background()

	tests := []struct {
		name     string
		currency string
		setup    func()
		validate func(t *testing.T, report *domain.MonthlyReport, err error)
	}{
		{
			name:     "Relatório em dólar",
			currency: "USD",
			setup: func() {
				mockSales.EXPECT().ListSales(ctx).Return([]*domain.SaleRecord{
					sale("a", "2025-09-14", "1600"),
				}, nil)
			},
			validate: func(t *testing.T, report *domain.MonthlyReport, err error) {
				require.NoError(t, err)
				assert.Equal(t, domain.CurrencyUSD, report.Currency)
				assert.Equal(t, "$1.00", report.Months[8].Formatted)
				assert.Equal(t, "$1.00", report.GrandTotalFormatted)
			},
		},
		{
			name:     "Moeda desconhecida não consulta as vendas",
			currency: "XYZ",
			setup:    func() {},
			validate: func(t *testing.T, report *domain.MonthlyReport, err error) {
				assert.Nil(t, report)
				assert.ErrorIs(t, err, formatting.ErrInvalidCurrency)
			},
		},
		{
			name:     "Erro ao listar vendas",
			currency: "NGN",
			setup: func() {
				mockSales.EXPECT().ListSales(ctx).Return(nil, assert.AnError)
			},
			validate: func(t *testing.T, report *domain.MonthlyReport, err error) {
				assert.Nil(t, report)
				assert.ErrorIs(t, err, assert.AnError)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			report, err := service.MonthlyReport(ctx, tt.currency)
			tt.validate(t, report, err)
		})
	}
}

func TestService_MonthlyReportWithFallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSales := mocks.NewMockSalesLister(ctrl)
	service := NewService(mockSales, newFormatter(t), mocks.NewMockExporter(ctrl), aggregating.UnknownDateExclude)

	ctx := context.Background()
	mockSales.EXPECT().ListSales(ctx).Return([]*domain.SaleRecord{
		sale("a", "2025-01-10", "1600"),
	}, nil)

	report, err := service.MonthlyReportWithFallback(ctx, "XYZ")
	require.NoError(t, err)

	assert.True(t, report.CurrencyFallback)
	assert.Equal(t, domain.CurrencyNGN, report.Currency)
	assert.Equal(t, "₦1600.00", report.GrandTotalFormatted)
}

func TestService_PoliticaRejeitar(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSales := mocks.NewMockSalesLister(ctrl)
	service := NewService(mockSales, newFormatter(t), mocks.NewMockExporter(ctrl), aggregating.UnknownDateReject)

	ctx := context.Background()
	mockSales.EXPECT().ListSales(ctx).Return([]*domain.SaleRecord{sale("b", "", "40")}, nil)

	_, err := service.MonthlyReport(ctx, "NGN")

	var dqErr *aggregating.DataQualityError
	assert.ErrorAs(t, err, &dqErr)
}

func TestService_ExportMonthlyReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSales := mocks.NewMockSalesLister(ctrl)
	mockExporter := mocks.NewMockExporter(ctrl)
	service := NewService(mockSales, newFormatter(t), mockExporter, aggregating.UnknownDateExclude)

	ctx := context.Background()

	t.Run("Gera a planilha com o relatório formatado", func(t *testing.T) {
		mockSales.EXPECT().ListSales(ctx).Return([]*domain.SaleRecord{sale("a", "2025-02-01", "3500")}, nil)
		mockExporter.EXPECT().
			MonthlyReportXLSX(gomock.Any()).
			DoAndReturn(func(report *domain.MonthlyReport) ([]byte, error) {
				assert.Equal(t, domain.CurrencyEUR, report.Currency)
				assert.Equal(t, "€2.00", report.Months[1].Formatted)
				return []byte("xlsx"), nil
			})

		file, err := service.ExportMonthlyReport(ctx, "EUR")
		require.NoError(t, err)
		assert.Equal(t, ExportFileName, file.Name)
		assert.Equal(t, ExportContentType, file.ContentType)
		assert.Equal(t, []byte("xlsx"), file.Data)
	})

	t.Run("Erro do exportador", func(t *testing.T) {
		mockSales.EXPECT().ListSales(ctx).Return(nil, nil)
		mockExporter.EXPECT().MonthlyReportXLSX(gomock.Any()).Return(nil, assert.AnError)

		file, err := service.ExportMonthlyReport(ctx, "NGN")
		assert.Nil(t, file)
		assert.ErrorIs(t, err, assert.AnError)
	})
}
