package handler

import (
	"net/http"

	"github.com/nuellacreatives/ledger-api/internal/api/handler/router"
	"github.com/nuellacreatives/ledger-api/internal/usecases/formatting"
	"github.com/nuellacreatives/ledger-api/internal/usecases/reporting"
	"github.com/nuellacreatives/ledger-api/internal/usecases/selling"
	"github.com/nuellacreatives/ledger-api/internal/usecases/stocking"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Currencies(formatter *formatting.Formatter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/currencies",
			Method:  http.MethodGet,
			Handler: ListCurrencies(formatter),
		},
	}
}

func Sales(service selling.SalesService, formatter *formatting.Formatter) []router.Route {
	base := string(formatter.Base().Code)
	return []router.Route{
		{
			Path:    "/v1/sales",
			Method:  http.MethodGet,
			Handler: ListSales(service),
		},
		{
			Path:    "/v1/sales",
			Method:  http.MethodPost,
			Handler: AddSale(service),
		},
		{
			Path:    "/v1/sales/summary",
			Method:  http.MethodGet,
			Handler: GetSalesSummary(service, base),
		},
		{
			Path:    "/v1/sales/:id",
			Method:  http.MethodDelete,
			Handler: DeleteSale(service),
		},
	}
}

// Reports recebe os middlewares da rota de exportação, que tem limite de requisições próprio
func Reports(service reporting.ReportService, formatter *formatting.Formatter, exportMiddlewares ...func(http.Handler) http.Handler) []router.Route {
	base := string(formatter.Base().Code)
	return []router.Route{
		{
			Path:    "/v1/reports/monthly",
			Method:  http.MethodGet,
			Handler: GetMonthlyReport(service, base),
		},
		{
			Path:        "/v1/reports/monthly/export",
			Method:      http.MethodGet,
			Handler:     ExportMonthlyReport(service, base),
			Middlewares: exportMiddlewares,
		},
	}
}

func Inventory(service stocking.InventoryService, formatter *formatting.Formatter) []router.Route {
	base := string(formatter.Base().Code)
	return []router.Route{
		{
			Path:    "/v1/inventory",
			Method:  http.MethodGet,
			Handler: ListInventory(service),
		},
		{
			Path:    "/v1/inventory",
			Method:  http.MethodPost,
			Handler: AddInventoryItem(service),
		},
		{
			Path:    "/v1/inventory/summary",
			Method:  http.MethodGet,
			Handler: GetInventorySummary(service, base),
		},
		{
			Path:    "/v1/inventory/:id",
			Method:  http.MethodDelete,
			Handler: DeleteInventoryItem(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
