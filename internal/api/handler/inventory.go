package handler

import (
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"

	"github.com/nuellacreatives/ledger-api/internal/domain"
	"github.com/nuellacreatives/ledger-api/internal/usecases/stocking"
	"github.com/nuellacreatives/ledger-api/pkg/apiErrors"
)

func ListInventory(service stocking.InventoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := service.ListItems(r.Context())
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar estoque")
			return
		}
		writeJSON(w, r, http.StatusOK, items)
	}
}

func AddInventoryItem(service stocking.InventoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.NewInventoryItemRequest
		if !decodeBody(w, r, &req) {
			return
		}

		item, err := service.AddItem(r.Context(), &req)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao cadastrar item")
			return
		}
		writeJSON(w, r, http.StatusCreated, item)
	}
}

func DeleteInventoryItem(service stocking.InventoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(httprouter.ParamsFromContext(r.Context()).ByName("id"))
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Id do item não informado", nil)
			return
		}

		if err := service.DeleteItem(r.Context(), id); err != nil {
			writeServiceError(w, r, err, "Erro ao remover item")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func GetInventorySummary(service stocking.InventoryService, baseCurrency string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, err := service.Summary(r.Context(), currencyParam(r, baseCurrency))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao calcular despesas do estoque")
			return
		}
		writeJSON(w, r, http.StatusOK, summary)
	}
}
