package formatting

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCurrency = errors.New("invalid currency")
	ErrInvalidTable    = errors.New("invalid currency table")
)

// InvalidCurrencyError indica um código de moeda fora da tabela configurada
type InvalidCurrencyError struct {
	Code string
}

func (e *InvalidCurrencyError) Error() string {
	return fmt.Sprintf("%s: %q", ErrInvalidCurrency.Error(), e.Code)
}

func (e *InvalidCurrencyError) Unwrap() error {
	return ErrInvalidCurrency
}
