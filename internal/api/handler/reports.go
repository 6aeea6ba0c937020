package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/nuellacreatives/ledger-api/internal/usecases/reporting"
	"github.com/nuellacreatives/ledger-api/pkg/apiErrors"
	"github.com/nuellacreatives/ledger-api/pkg/log"
)

// GetMonthlyReport retorna o relatório mensal. Moeda desconhecida cai na moeda base.
func GetMonthlyReport(service reporting.ReportService, baseCurrency string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, err := service.MonthlyReportWithFallback(r.Context(), currencyParam(r, baseCurrency))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao gerar relatório mensal")
			return
		}
		writeJSON(w, r, http.StatusOK, report)
	}
}

func ExportMonthlyReport(service reporting.ReportService, baseCurrency string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		file, err := service.ExportMonthlyReport(r.Context(), currencyParam(r, baseCurrency))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao exportar relatório mensal")
			return
		}

		if len(file.Data) == 0 {
			apiErrors.WriteError(w, apiErrors.ErrExportFailed, "Arquivo de exportação vazio", nil)
			return
		}

		w.Header().Set("Content-Type", file.ContentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Name))
		w.Header().Set("Content-Length", strconv.Itoa(len(file.Data)))
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(file.Data); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar planilha")
		}
	}
}
