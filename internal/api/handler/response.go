package handler

import (
	"errors"
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/nuellacreatives/ledger-api/internal/usecases/aggregating"
	"github.com/nuellacreatives/ledger-api/internal/usecases/formatting"
	"github.com/nuellacreatives/ledger-api/internal/usecases/selling"
	"github.com/nuellacreatives/ledger-api/internal/usecases/stocking"
	"github.com/nuellacreatives/ledger-api/pkg/apiErrors"
	"github.com/nuellacreatives/ledger-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const maxBodyBytes = 1 << 20

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar resposta")
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição vazio", nil)
			return false
		}
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", err.Error())
		return false
	}
	return true
}

// writeServiceError traduz os erros dos casos de uso para o formato de APIError
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, message string) {
	logger := log.ForContext(r.Context()).WithError(err)

	var saleErr *selling.SaleError
	if errors.As(err, &saleErr) {
		if apiErrors.StatusFor(saleErr.Code) >= http.StatusInternalServerError {
			logger.Error(message)
			apiErrors.WriteError(w, saleErr.Code, message, nil)
			return
		}
		apiErrors.WriteError(w, saleErr.Code, saleErr.Err.Error(), detailsOf(saleErr.Details))
		return
	}

	var invErr *stocking.InventoryError
	if errors.As(err, &invErr) {
		if apiErrors.StatusFor(invErr.Code) >= http.StatusInternalServerError {
			logger.Error(message)
			apiErrors.WriteError(w, invErr.Code, message, nil)
			return
		}
		apiErrors.WriteError(w, invErr.Code, invErr.Err.Error(), detailsOf(invErr.Details))
		return
	}

	var curErr *formatting.InvalidCurrencyError
	if errors.As(err, &curErr) {
		apiErrors.WriteError(w, apiErrors.ErrInvalidCurrency, curErr.Error(), nil)
		return
	}

	var dqErr *aggregating.DataQualityError
	if errors.As(err, &dqErr) {
		apiErrors.WriteError(w, apiErrors.ErrDataQuality, dqErr.Error(), map[string]any{
			"record_id": dqErr.RecordID,
			"reason":    dqErr.Reason,
		})
		return
	}

	logger.Error(message)
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, message, nil)
}

func detailsOf(details string) any {
	if details == "" {
		return nil
	}
	return details
}
