package api

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/nuellacreatives/ledger-api/infrastructure/export"
	"github.com/nuellacreatives/ledger-api/infrastructure/repository"
	"github.com/nuellacreatives/ledger-api/internal/api/handler"
	"github.com/nuellacreatives/ledger-api/internal/config"
	"github.com/nuellacreatives/ledger-api/internal/domain"
	"github.com/nuellacreatives/ledger-api/internal/usecases/aggregating"
	"github.com/nuellacreatives/ledger-api/internal/usecases/formatting"
	"github.com/nuellacreatives/ledger-api/internal/usecases/reporting"
	"github.com/nuellacreatives/ledger-api/internal/usecases/selling"
	"github.com/nuellacreatives/ledger-api/internal/usecases/stocking"
	"github.com/nuellacreatives/ledger-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func TestMain(m *testing.M) {
	log.SetupTestLogger()
	os.Exit(m.Run())
}

func testConfig() *config.Config {
	return &config.Config{
		Server: config.Server{
			Host:                 "localhost",
			Port:                 "0",
			CorsAllowedOrigins:   []string{"http://localhost:3000"},
			RateLimitRPS:         1000,
			RateLimitBurst:       1000,
			ExportRateLimitRPS:   0.001,
			ExportRateLimitBurst: 1,
		},
	}
}

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()

	formatter, err := formatting.NewFormatter(formatting.DefaultCurrencies(formatting.DefaultRates())...)
	require.NoError(t, err)

	sales := selling.NewService(repository.NewMemorySalesRepository(), formatter, false)
	inventory := stocking.NewService(repository.NewMemoryInventoryRepository(), formatter, stocking.DefaultLowStockThreshold, true)
	require.NoError(t, inventory.Load(context.Background()))

	reports := reporting.NewService(sales, formatter, export.NewXLSXExporter(), aggregating.UnknownDateExclude)

	return NewHandler(testConfig(), Services{
		Formatter: formatter,
		Sales:     sales,
		Reports:   reports,
		Inventory: inventory,
		CronJobs:  handler.CronJobServices{},
	})
}

func do(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.RemoteAddr = "127.0.0.1:4000"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestServer_FluxoCompleto(t *testing.T) {
	h := newTestHandler(t)

	rec := do(h, http.MethodPost, "/v1/sales", `{"date":"2025-09-14","customer":"Ada","product":"Flyer","quantity":1,"amount":"1600"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = do(h, http.MethodPost, "/v1/sales", `{"date":"","customer":"Bola","product":"Banner","quantity":1,"amount":800}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = do(h, http.MethodPost, "/v1/sales", `{"date":"2025-09-14","customer":"Ada","product":"Flyer","amount":"abc"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(h, http.MethodGet, "/v1/reports/monthly?currency=USD", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var report domain.MonthlyReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	require.Len(t, report.Months, 12)
	assert.Equal(t, "Sep", report.Months[8].Month)
	assert.Equal(t, "$1.00", report.Months[8].Formatted)
	assert.Equal(t, "$1.00", report.GrandTotalFormatted)
	assert.Equal(t, 1, report.Unassigned)
	assert.False(t, report.CurrencyFallback)

	rec = do(h, http.MethodGet, "/v1/reports/monthly?currency=XYZ", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.True(t, report.CurrencyFallback)
	assert.Equal(t, domain.CurrencyNGN, report.Currency)
	assert.Equal(t, "₦1600.00", report.GrandTotalFormatted)

	rec = do(h, http.MethodGet, "/v1/sales/summary?currency=NGN", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var summary domain.SalesSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	assert.Equal(t, 2, summary.Count)
	assert.Equal(t, "₦2400.00", summary.TotalFormatted)

	rec = do(h, http.MethodGet, "/v1/inventory/summary", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total_expenses_formatted":"₦200.00"`)
}

func TestServer_ExportacaoComLimite(t *testing.T) {
	h := newTestHandler(t)

	rec := do(h, http.MethodGet, "/v1/reports/monthly/export?currency=EUR", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, reporting.ExportContentType, rec.Header().Get("Content-Type"))

	f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()
	title, err := f.GetCellValue(export.SheetName, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Monthly Sales Overview (EUR)", title)

	rec = do(h, http.MethodGet, "/v1/reports/monthly/export?currency=EUR", "")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	rec = do(h, http.MethodGet, "/v1/reports/monthly?currency=EUR", "")
	assert.Equal(t, http.StatusOK, rec.Code, "o limite da exportação não afeta as outras rotas")
}

func TestServer_Healthcheck(t *testing.T) {
	h := newTestHandler(t)

	rec := do(h, http.MethodGet, "/healthcheck", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Correlation-ID"))
}

func TestServer_Currencies(t *testing.T) {
	h := newTestHandler(t)

	rec := do(h, http.MethodGet, "/v1/currencies", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var currencies []domain.Currency
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &currencies))
	require.Len(t, currencies, 4)
	assert.Equal(t, domain.CurrencyNGN, currencies[0].Code)
	assert.True(t, currencies[0].Base)
}

func TestNew_ServicosObrigatorios(t *testing.T) {
	srv, err := New(testConfig(), Services{})
	assert.Error(t, err)
	assert.Nil(t, srv)
}
