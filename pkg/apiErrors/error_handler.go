package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	// Erros de validação (2000-2999)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido
	ErrInvalidAmount       = "VAL_004" // Valor monetário inválido
	ErrInvalidQuantity     = "VAL_005" // Quantidade inválida
	ErrDataQuality         = "VAL_006" // Vendas com data ausente ou inválida
	ErrNotFound            = "VAL_007" // Rota não encontrada
	ErrMethodNotAllowed    = "VAL_008" // Método não suportado

	// Erros de vendas
	ErrSaleNotFound = "SAL_001" // Venda não encontrada

	// Erros de estoque
	ErrItemNotFound  = "INV_001" // Item não encontrado
	ErrDuplicateItem = "INV_002" // Item já cadastrado

	// Erros de moeda
	ErrInvalidCurrency = "CUR_001" // Moeda não suportada

	// Erros de limite de requisições
	ErrTooManyRequests = "RATE_001" // Limite de requisições excedido

	// Erros do servidor (5000-5999)
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
	ErrExportFailed      = "SRV_003" // Erro ao gerar arquivo de exportação
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusBadRequest,
	ErrInvalidAmount:       http.StatusBadRequest,
	ErrInvalidQuantity:     http.StatusBadRequest,
	ErrDataQuality:         http.StatusBadRequest,
	ErrNotFound:            http.StatusNotFound,
	ErrMethodNotAllowed:    http.StatusMethodNotAllowed,
	ErrSaleNotFound:        http.StatusNotFound,
	ErrItemNotFound:        http.StatusNotFound,
	ErrDuplicateItem:       http.StatusConflict,
	ErrInvalidCurrency:     http.StatusBadRequest,
	ErrTooManyRequests:     http.StatusTooManyRequests,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrDatabaseOperation:   http.StatusInternalServerError,
	ErrExportFailed:        http.StatusInternalServerError,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// StatusFor retorna o status HTTP associado ao código
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	json.NewEncoder(w).Encode(apiErr)
}

// FromError cria um erro de API a partir de um erro Go
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Erro desconhecido",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
