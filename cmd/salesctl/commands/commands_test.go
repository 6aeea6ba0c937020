package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/nuellacreatives/ledger-api/infrastructure/export"
	"github.com/nuellacreatives/ledger-api/internal/domain"
	"github.com/nuellacreatives/ledger-api/internal/usecases/formatting"
	"github.com/nuellacreatives/ledger-api/pkg/log"
)

func TestMain(m *testing.M) {
	log.SetupTestLogger()
	os.Exit(m.Run())
}

// salesData no formato antigo, com id numérico, valor nulo e uma venda sem data
const legacySales = `[
  {"id": 1, "date": "2025-09-14", "customer": "Ada", "product": "Flyer", "description": "", "quantity": 1, "amount": 1600},
  {"id": "abc", "date": "2025-01-02", "customer": "Bola", "product": "Banner", "description": "", "quantity": 2, "amount": null},
  {"id": 3, "date": "", "customer": "Chidi", "product": "Card", "description": "", "quantity": 1, "amount": 800}
]`

func writeSales(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "salesData.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("LOG_LEVEL", "error")

	var out bytes.Buffer
	root := NewRootCommand()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func TestReportCommand(t *testing.T) {
	file := writeSales(t, legacySales)

	tests := []struct {
		name         string
		args         []string
		wantErr      bool
		wantContains []string
	}{
		{
			name:         "relatório em dólar",
			args:         []string{"report", "--file", file, "--currency", "usd"},
			wantContains: []string{"Total (USD)", "$1.00", "$0.00", "2 venda(s) com problema de qualidade", "₦800.00"},
		},
		{
			name:         "moeda base por padrão",
			args:         []string{"report", "--file", file},
			wantContains: []string{"Total (NGN)", "₦1600.00"},
		},
		{
			name:    "modo estrito falha com venda sem data",
			args:    []string{"report", "--file", file, "--strict"},
			wantErr: true,
		},
		{
			name:    "moeda inválida",
			args:    []string{"report", "--file", file, "--currency", "XYZ"},
			wantErr: true,
		},
		{
			name:    "arquivo obrigatório",
			args:    []string{"report"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.args...)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			for _, want := range tt.wantContains {
				assert.Contains(t, out, want)
			}
		})
	}
}

func TestReportCommand_NaoAlteraOArquivo(t *testing.T) {
	file := writeSales(t, legacySales)

	_, err := run(t, "report", "--file", file)
	require.NoError(t, err)

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, legacySales, string(data))
}

func TestExportCommand(t *testing.T) {
	file := writeSales(t, legacySales)
	out := filepath.Join(t.TempDir(), "reports", "monthly-sales.xlsx")

	stdout, err := run(t, "export", "--file", file, "--currency", "GBP", "--out", out)
	require.NoError(t, err)
	assert.Contains(t, stdout, out)

	f, err := excelize.OpenFile(out)
	require.NoError(t, err)
	defer f.Close()

	title, err := f.GetCellValue(export.SheetName, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Monthly Sales Overview (GBP)", title)

	unassigned, err := f.GetCellValue(export.SheetName, "A16")
	require.NoError(t, err)
	assert.Equal(t, export.UnassignedLabel, unassigned)
}

func TestSeedCommand(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "file")
	dir := t.TempDir()
	t.Setenv("SALES_FILE", filepath.Join(dir, "sales.json"))
	t.Setenv("INVENTORY_FILE", filepath.Join(dir, "inventory.json"))

	out, err := run(t, "seed")
	require.NoError(t, err)
	assert.Contains(t, out, "2 venda(s) e 2 item(ns) de estoque no armazenamento file")

	// Uma segunda execução não duplica os dados
	out, err = run(t, "seed")
	require.NoError(t, err)
	assert.Contains(t, out, "2 venda(s) e 2 item(ns)")

	_, err = os.Stat(filepath.Join(dir, "sales.json"))
	assert.NoError(t, err)
}

func TestPrintReport_UsaSimboloDaMoedaBase(t *testing.T) {
	formatter, err := formatting.NewFormatter(
		domain.Currency{Code: "GHS", Symbol: "GH₵", Rate: decimal.NewFromInt(1), Base: true},
		domain.Currency{Code: domain.CurrencyUSD, Symbol: "$", Rate: decimal.NewFromInt(15)},
	)
	require.NoError(t, err)

	report := &domain.MonthlyReport{
		Currency:            domain.CurrencyUSD,
		GrandTotalFormatted: "$0.00",
		Unassigned:          2,
		UnassignedTotal:     decimal.RequireFromString("30"),
	}

	var out bytes.Buffer
	require.NoError(t, printReport(&out, report, formatter))

	assert.Contains(t, out.String(), "2 venda(s) com problema de qualidade ficaram fora dos meses (GH₵30.00)")
	assert.NotContains(t, out.String(), "₦")
}
