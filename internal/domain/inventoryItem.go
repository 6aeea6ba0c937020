package domain

import "github.com/shopspring/decimal"

type StockStatus string

const (
	StockStatusInStock  StockStatus = "In Stock"
	StockStatusLowStock StockStatus = "Low Stock"
)

// InventoryItem representa um item de estoque. Cost é o custo unitário na moeda base.
type InventoryItem struct {
	ID         string          `json:"id"`
	Category   string          `json:"category"`
	QtyPresent int             `json:"qty_present"`
	QtyUsed    int             `json:"qty_used"`
	Cost       decimal.Decimal `json:"cost"`
	Status     StockStatus     `json:"status"`
}

func (i *InventoryItem) Clone() *InventoryItem {
	if i == nil {
		return nil
	}
	c := *i
	return &c
}

// NewInventoryItemRequest é o corpo recebido para cadastrar um item
type NewInventoryItemRequest struct {
	ID         string      `json:"id"`
	Category   string      `json:"category"`
	QtyPresent int         `json:"qty_present"`
	QtyUsed    int         `json:"qty_used"`
	Cost       AmountInput `json:"cost"`
}

type InventorySummary struct {
	Items                  int             `json:"items"`
	LowStock               int             `json:"low_stock"`
	TotalExpenses          decimal.Decimal `json:"total_expenses"`
	TotalExpensesFormatted string          `json:"total_expenses_formatted"`
	Currency               CurrencyCode    `json:"currency"`
}
