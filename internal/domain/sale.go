// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// SaleRecord representa uma venda registrada. O valor está sempre na moeda base.
type SaleRecord struct {
	ID            string          `json:"id"`
	Date          string          `json:"date"` // Formato yyyy-mm-dd, pode estar vazia ou inválida
	Customer      string          `json:"customer"`
	Product       string          `json:"product"`
	Description   string          `json:"description"`
	Quantity      int             `json:"quantity"`
	Amount        decimal.Decimal `json:"amount"`
	AmountInvalid bool            `json:"amount_invalid,omitempty"` // Valor importado não numérico, Amount fica zerado
	CreatedAt     time.Time       `json:"created_at"`
}

// Clone retorna uma cópia independente do registro
func (s *SaleRecord) Clone() *SaleRecord {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}

// NewSaleRequest é o corpo recebido para registrar uma venda
type NewSaleRequest struct {
	Date        string      `json:"date"`
	Customer    string      `json:"customer"`
	Product     string      `json:"product"`
	Description string      `json:"description"`
	Quantity    int         `json:"quantity"`
	Amount      AmountInput `json:"amount"`
}

// AmountInput guarda o texto bruto do valor informado, aceitando número ou string JSON.
// A validação acontece na fronteira do armazenamento de vendas.
type AmountInput string

func (a *AmountInput) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*a = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		s, err := strconv.Unquote(string(data))
		if err != nil {
			return fmt.Errorf("valor inválido: %w", err)
		}
		*a = AmountInput(strings.TrimSpace(s))
		return nil
	}

	*a = AmountInput(data)
	return nil
}

// SalesSummary representa o total de vendas registradas, independente da data
type SalesSummary struct {
	Count          int             `json:"count"`
	Total          decimal.Decimal `json:"total"`
	TotalFormatted string          `json:"total_formatted"`
	Currency       CurrencyCode    `json:"currency"`
}
