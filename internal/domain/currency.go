package domain

import "github.com/shopspring/decimal"

type CurrencyCode string

const (
	CurrencyNGN CurrencyCode = "NGN"
	CurrencyUSD CurrencyCode = "USD"
	CurrencyEUR CurrencyCode = "EUR"
	CurrencyGBP CurrencyCode = "GBP"
)

// Currency descreve uma moeda de exibição. Rate é a quantidade de unidades da
// moeda base equivalente a 1 unidade desta moeda.
type Currency struct {
	Code   CurrencyCode    `json:"code"`
	Symbol string          `json:"symbol"`
	Rate   decimal.Decimal `json:"rate"`
	Base   bool            `json:"base"`
}
