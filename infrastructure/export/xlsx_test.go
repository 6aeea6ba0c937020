package export

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/nuellacreatives/ledger-api/internal/domain"
)

func buildReport() *domain.MonthlyReport {
	months := make([]domain.FormattedMonth, 0, 12)
	for i, label := range domain.MonthLabels {
		total := decimal.Zero
		formatted := "$0.00"
		if i == 8 {
			total = decimal.NewFromInt(1600)
			formatted = "$1.00"
		}
		months = append(months, domain.FormattedMonth{Month: label, Total: total, Formatted: formatted})
	}

	return &domain.MonthlyReport{
		Currency:            domain.CurrencyUSD,
		Months:              months,
		GrandTotal:          decimal.NewFromInt(1600),
		GrandTotalFormatted: "$1.00",
		Unassigned:          2,
		UnassignedTotal:     decimal.NewFromInt(300),
	}
}

func TestXLSXExporter_MonthlyReportXLSX(t *testing.T) {
	data, err := NewXLSXExporter().MonthlyReportXLSX(buildReport())
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetName}, f.GetSheetList())

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 16, "título, cabeçalho, 12 meses, total e não atribuídos")

	assert.Equal(t, "Monthly Sales Overview (USD)", rows[0][0])
	assert.Equal(t, []string{"Month", "Total (base)", "Total (USD)"}, rows[1])
	assert.Equal(t, "Jan", rows[2][0])
	assert.Equal(t, "Sep", rows[10][0])
	assert.Equal(t, "$1.00", rows[10][2])
	assert.Equal(t, "Dec", rows[13][0])

	assert.Equal(t, "Total", rows[14][0])
	assert.Equal(t, "$1.00", rows[14][2])

	assert.Equal(t, UnassignedLabel, rows[15][0])
	assert.Equal(t, "2", rows[15][2])

	styleID, err := f.GetCellStyle(SheetName, "A15")
	require.NoError(t, err)
	style, err := f.GetStyle(styleID)
	require.NoError(t, err)
	require.NotNil(t, style.Font)
	assert.True(t, style.Font.Bold)
}

func TestXLSXExporter_RelatorioNulo(t *testing.T) {
	data, err := NewXLSXExporter().MonthlyReportXLSX(nil)
	assert.ErrorIs(t, err, ErrNilReport)
	assert.Nil(t, data)
}

func TestXLSXExporter_ProtegeFormulas(t *testing.T) {
	report := buildReport()
	report.Months[0].Formatted = "=HYPERLINK(\"http://x\")"

	data, err := NewXLSXExporter().MonthlyReportXLSX(report)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	value, err := f.GetCellValue(SheetName, "C3")
	require.NoError(t, err)
	assert.Equal(t, "'=HYPERLINK(\"http://x\")", value)

	formula, err := f.GetCellFormula(SheetName, "C3")
	require.NoError(t, err)
	assert.Empty(t, formula)
}
