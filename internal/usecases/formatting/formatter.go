// Package formatting converte valores da moeda base em textos de exibição.
package formatting

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/nuellacreatives/ledger-api/internal/domain"
)

// Rates guarda as cotações das moedas estrangeiras em unidades da moeda base
type Rates struct {
	USD decimal.Decimal
	EUR decimal.Decimal
	GBP decimal.Decimal
}

// DefaultRates são as cotações usadas quando nada é configurado
func DefaultRates() Rates {
	return Rates{
		USD: decimal.NewFromInt(1600),
		EUR: decimal.NewFromInt(1750),
		GBP: decimal.NewFromInt(2050),
	}
}

// DefaultCurrencies monta a tabela fixa de moedas com o Naira como moeda base
func DefaultCurrencies(rates Rates) []domain.Currency {
	return []domain.Currency{
		{Code: domain.CurrencyNGN, Symbol: "₦", Rate: decimal.NewFromInt(1), Base: true},
		{Code: domain.CurrencyUSD, Symbol: "$", Rate: rates.USD},
		{Code: domain.CurrencyEUR, Symbol: "€", Rate: rates.EUR},
		{Code: domain.CurrencyGBP, Symbol: "£", Rate: rates.GBP},
	}
}

// Formatter converte e formata valores para as moedas da tabela.
// Não guarda estado além da tabela, que não muda após a criação.
type Formatter struct {
	base       domain.Currency
	currencies map[domain.CurrencyCode]domain.Currency
}

// NewFormatter cria um Formatter validando a tabela de moedas
func NewFormatter(currencies ...domain.Currency) (*Formatter, error) {
	f := &Formatter{currencies: make(map[domain.CurrencyCode]domain.Currency, len(currencies))}

	baseCount := 0
	for _, c := range currencies {
		code := normalize(string(c.Code))
		if code == "" {
			return nil, fmt.Errorf("%w: moeda sem código", ErrInvalidTable)
		}
		if _, exists := f.currencies[code]; exists {
			return nil, fmt.Errorf("%w: moeda %s duplicada", ErrInvalidTable, code)
		}
		if !c.Rate.IsPositive() {
			return nil, fmt.Errorf("%w: cotação de %s deve ser positiva", ErrInvalidTable, code)
		}

		c.Code = code
		if c.Base {
			if !c.Rate.Equal(decimal.NewFromInt(1)) {
				return nil, fmt.Errorf("%w: moeda base %s deve ter cotação 1", ErrInvalidTable, code)
			}
			baseCount++
			f.base = c
		}
		f.currencies[code] = c
	}

	if baseCount != 1 {
		return nil, fmt.Errorf("%w: é necessária exatamente uma moeda base", ErrInvalidTable)
	}

	return f, nil
}

// Lookup busca a moeda pelo código, sem diferenciar maiúsculas
func (f *Formatter) Lookup(code string) (domain.Currency, error) {
	c, ok := f.currencies[normalize(code)]
	if !ok {
		return domain.Currency{}, &InvalidCurrencyError{Code: code}
	}
	return c, nil
}

// Convert converte um valor da moeda base para a moeda informada com 2 casas decimais.
// A moeda base nunca é dividida.
func (f *Formatter) Convert(amount decimal.Decimal, code string) (decimal.Decimal, error) {
	c, err := f.Lookup(code)
	if err != nil {
		return decimal.Decimal{}, err
	}

	if c.Base {
		return amount.Round(2), nil
	}

	return amount.Div(c.Rate).Round(2), nil
}

// Format devolve o valor convertido com o símbolo da moeda, por exemplo "$1.00"
func (f *Formatter) Format(amount decimal.Decimal, code string) (string, error) {
	c, err := f.Lookup(code)
	if err != nil {
		return "", err
	}

	converted, err := f.Convert(amount, string(c.Code))
	if err != nil {
		return "", err
	}

	return c.Symbol + converted.StringFixed(2), nil
}

func (f *Formatter) Base() domain.Currency {
	return f.base
}

// Currencies lista as moedas reconhecidas, com a moeda base primeiro
func (f *Formatter) Currencies() []domain.Currency {
	list := make([]domain.Currency, 0, len(f.currencies))
	for _, c := range f.currencies {
		list = append(list, c)
	}

	sort.Slice(list, func(i, j int) bool {
		if list[i].Base != list[j].Base {
			return list[i].Base
		}
		return list[i].Code < list[j].Code
	})

	return list
}

func normalize(code string) domain.CurrencyCode {
	return domain.CurrencyCode(strings.ToUpper(strings.TrimSpace(code)))
}
