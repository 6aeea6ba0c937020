package handler

import (
	"net/http"

	"github.com/nuellacreatives/ledger-api/internal/usecases/formatting"
)

// ListCurrencies retorna as moedas reconhecidas, com a moeda base primeiro
func ListCurrencies(formatter *formatting.Formatter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, formatter.Currencies())
	}
}
