package handler

import (
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"

	"github.com/nuellacreatives/ledger-api/internal/domain"
	"github.com/nuellacreatives/ledger-api/internal/usecases/selling"
	"github.com/nuellacreatives/ledger-api/pkg/apiErrors"
)

func ListSales(service selling.SalesService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sales, err := service.ListSales(r.Context())
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar vendas")
			return
		}
		writeJSON(w, r, http.StatusOK, sales)
	}
}

func AddSale(service selling.SalesService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.NewSaleRequest
		if !decodeBody(w, r, &req) {
			return
		}

		sale, err := service.AddSale(r.Context(), &req)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao registrar venda")
			return
		}
		writeJSON(w, r, http.StatusCreated, sale)
	}
}

func DeleteSale(service selling.SalesService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(httprouter.ParamsFromContext(r.Context()).ByName("id"))
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Id da venda não informado", nil)
			return
		}

		if err := service.DeleteSale(r.Context(), id); err != nil {
			writeServiceError(w, r, err, "Erro ao remover venda")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// GetSalesSummary soma todas as vendas. Sem moeda informada, usa a moeda base.
func GetSalesSummary(service selling.SalesService, baseCurrency string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, err := service.Summary(r.Context(), currencyParam(r, baseCurrency))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao calcular total de vendas")
			return
		}
		writeJSON(w, r, http.StatusOK, summary)
	}
}

func currencyParam(r *http.Request, fallback string) string {
	if currency := strings.TrimSpace(r.URL.Query().Get("currency")); currency != "" {
		return currency
	}
	return fallback
}
