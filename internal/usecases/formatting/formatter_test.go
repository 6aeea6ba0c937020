package formatting

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nuellacreatives/ledger-api/internal/domain"
)

func newTestFormatter(t *testing.T) *Formatter {
	t.Helper()
	f, err := NewFormatter(DefaultCurrencies(DefaultRates())...)
	require.NoError(t, err)
	return f
}

func TestFormatter_Format(t *testing.T) {
	f := newTestFormatter(t)

	tests := []struct {
		name   string
		amount string
		code   string
		want   string
	}{
		{name: "Dólar com cotação 1600", amount: "1600", code: "USD", want: "$1.00"},
		{name: "Moeda base não é dividida", amount: "1600", code: "NGN", want: "₦1600.00"},
		{name: "Moeda base com centavos", amount: "120.5", code: "NGN", want: "₦120.50"},
		{name: "Moeda base arredonda meio para cima", amount: "0.125", code: "NGN", want: "₦0.13"},
		{name: "Arredondamento meio para longe do zero", amount: "1000", code: "USD", want: "$0.63"},
		{name: "Euro", amount: "3500", code: "EUR", want: "€2.00"},
		{name: "Libra com dízima", amount: "100", code: "GBP", want: "£0.05"},
		{name: "Código em minúsculas", amount: "3200", code: " usd ", want: "$2.00"},
		{name: "Zero", amount: "0", code: "GBP", want: "£0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := f.Format(decimal.RequireFromString(tt.amount), tt.code)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatter_MoedaInvalida(t *testing.T) {
	f := newTestFormatter(t)

	got, err := f.Format(decimal.NewFromInt(100), "XYZ")
	assert.Empty(t, got)
	assert.ErrorIs(t, err, ErrInvalidCurrency)

	var currErr *InvalidCurrencyError
	require.ErrorAs(t, err, &currErr)
	assert.Equal(t, "XYZ", currErr.Code)

	_, err = f.Convert(decimal.NewFromInt(100), "")
	assert.ErrorIs(t, err, ErrInvalidCurrency)
}

func TestFormatter_Convert(t *testing.T) {
	f := newTestFormatter(t)

	amount := decimal.RequireFromString("1234.567")

	base, err := f.Convert(amount, "NGN")
	require.NoError(t, err)
	assert.Equal(t, "1234.57", base.String())

	usd, err := f.Convert(amount, "USD")
	require.NoError(t, err)
	assert.True(t, usd.Equal(amount.Div(decimal.NewFromInt(1600)).Round(2)))
	assert.Equal(t, "0.77", usd.String())

	// o valor original não é alterado
	assert.Equal(t, "1234.567", amount.String())
}

func TestNewFormatter_TabelaInvalida(t *testing.T) {
	one := decimal.NewFromInt(1)

	tests := []struct {
		name       string
		currencies []domain.Currency
	}{
		{
			name:       "Sem moeda base",
			currencies: []domain.Currency{{Code: "USD", Symbol: "$", Rate: decimal.NewFromInt(1600)}},
		},
		{
			name: "Duas moedas base",
			currencies: []domain.Currency{
				{Code: "NGN", Symbol: "₦", Rate: one, Base: true},
				{Code: "XOF", Symbol: "F", Rate: one, Base: true},
			},
		},
		{
			name: "Cotação zero",
			currencies: []domain.Currency{
				{Code: "NGN", Symbol: "₦", Rate: one, Base: true},
				{Code: "USD", Symbol: "$", Rate: decimal.Zero},
			},
		},
		{
			name: "Código duplicado",
			currencies: []domain.Currency{
				{Code: "NGN", Symbol: "₦", Rate: one, Base: true},
				{Code: "ngn", Symbol: "₦", Rate: decimal.NewFromInt(2)},
			},
		},
		{
			name:       "Moeda base com cotação diferente de 1",
			currencies: []domain.Currency{{Code: "NGN", Symbol: "₦", Rate: decimal.NewFromInt(2), Base: true}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFormatter(tt.currencies...)
			assert.ErrorIs(t, err, ErrInvalidTable)
		})
	}
}

func TestFormatter_Currencies(t *testing.T) {
	f := newTestFormatter(t)

	list := f.Currencies()
	require.Len(t, list, 4)

	codes := make([]domain.CurrencyCode, 0, len(list))
	for _, c := range list {
		codes = append(codes, c.Code)
	}
	assert.Equal(t, []domain.CurrencyCode{"NGN", "EUR", "GBP", "USD"}, codes)
	assert.Equal(t, domain.CurrencyNGN, f.Base().Code)
}
