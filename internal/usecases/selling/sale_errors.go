package selling

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de vendas
var (
	// Erros de validação
	ErrInvalidAmount        = errors.New("amount is not a valid number")
	ErrNegativeAmount       = errors.New("amount must not be negative")
	ErrInvalidQuantity      = errors.New("quantity must not be negative")
	ErrMissingRequiredField = errors.New("customer and product are required")

	ErrSaleNotFound = errors.New("sale not found")

	// Erros de persistência
	ErrPersistence = errors.New("error persisting sales")
	ErrGenerateID  = errors.New("error generating sale id")
)

// SaleError é um erro com contexto adicional para vendas
type SaleError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	SaleID  string // ID da venda envolvida (quando aplicável)
	Details string // Detalhes adicionais
}

func (e *SaleError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *SaleError) Unwrap() error {
	return e.Err
}

func NewSaleError(err error, code string, details string) *SaleError {
	return &SaleError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func NewSaleErrorWithID(err error, code string, saleID string, details string) *SaleError {
	return &SaleError{
		Err:     err,
		Code:    code,
		SaleID:  saleID,
		Details: details,
	}
}
