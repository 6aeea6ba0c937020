package stocking

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de estoque
var (
	ErrMissingRequiredField = errors.New("id and category are required")
	ErrInvalidQuantity      = errors.New("quantities must not be negative")
	ErrInvalidCost          = errors.New("cost must be a non-negative number")
	ErrDuplicateItem        = errors.New("item already exists")
	ErrItemNotFound         = errors.New("item not found")
	ErrPersistence          = errors.New("error persisting inventory")
)

// InventoryError é um erro com contexto adicional para itens de estoque
type InventoryError struct {
	Err     error
	Code    string
	ItemID  string
	Details string
}

func (e *InventoryError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *InventoryError) Unwrap() error {
	return e.Err
}

func NewInventoryError(err error, code string, itemID string, details string) *InventoryError {
	return &InventoryError{
		Err:     err,
		Code:    code,
		ItemID:  itemID,
		Details: details,
	}
}
