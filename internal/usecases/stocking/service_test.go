package stocking

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/nuellacreatives/ledger-api/infrastructure/repository"
	"github.com/nuellacreatives/ledger-api/infrastructure/repository/mocks"
	"github.com/nuellacreatives/ledger-api/internal/domain"
	"github.com/nuellacreatives/ledger-api/internal/usecases/formatting"
	"github.com/nuellacreatives/ledger-api/pkg/log"
)

func TestMain(m *testing.M) {
	log.SetupTestLogger()
	os.Exit(m.Run())
}

func newFormatter(t *testing.T) *formatting.Formatter {
	t.Helper()
	f, err := formatting.NewFormatter(formatting.DefaultCurrencies(formatting.DefaultRates())...)
	require.NoError(t, err)
	return f
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name      string
		qty       int
		threshold int
		expected  domain.StockStatus
	}{
		{name: "Acima do limite", qty: 20, threshold: 2, expected: domain.StockStatusInStock},
		{name: "Igual ao limite", qty: 2, threshold: 2, expected: domain.StockStatusLowStock},
		{name: "Zerado", qty: 0, threshold: 2, expected: domain.StockStatusLowStock},
		{name: "Limite zero", qty: 1, threshold: 0, expected: domain.StockStatusInStock},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StatusFor(tt.qty, tt.threshold))
		})
	}
}

func TestService_AddItem(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryInventoryRepository()
	service := NewService(repo, newFormatter(t), DefaultLowStockThreshold, false)
	require.NoError(t, service.Load(ctx))

	tests := []struct {
		name        string
		request     *domain.NewInventoryItemRequest
		expectedErr error
		validate    func(t *testing.T, item *domain.InventoryItem)
	}{
		{
			name:    "Item válido",
			request: &domain.NewInventoryItemRequest{ID: "001", Category: "A4 Paper", QtyPresent: 20, QtyUsed: 5, Cost: "5"},
			validate: func(t *testing.T, item *domain.InventoryItem) {
				assert.Equal(t, domain.StockStatusInStock, item.Status)
				assert.Equal(t, "5", item.Cost.String())
			},
		},
		{
			name:    "Estoque baixo",
			request: &domain.NewInventoryItemRequest{ID: "002", Category: "Printing Ink", QtyPresent: 2, QtyUsed: 1, Cost: "50"},
			validate: func(t *testing.T, item *domain.InventoryItem) {
				assert.Equal(t, domain.StockStatusLowStock, item.Status)
			},
		},
		{
			name:        "Id duplicado",
			request:     &domain.NewInventoryItemRequest{ID: "001", Category: "Outro", Cost: "1"},
			expectedErr: ErrDuplicateItem,
		},
		{
			name:        "Categoria ausente",
			request:     &domain.NewInventoryItemRequest{ID: "003", Cost: "1"},
			expectedErr: ErrMissingRequiredField,
		},
		{
			name:        "Quantidade negativa",
			request:     &domain.NewInventoryItemRequest{ID: "003", Category: "Vinyl", QtyUsed: -1, Cost: "1"},
			expectedErr: ErrInvalidQuantity,
		},
		{
			name:        "Custo inválido",
			request:     &domain.NewInventoryItemRequest{ID: "003", Category: "Vinyl", Cost: "abc"},
			expectedErr: ErrInvalidCost,
		},
		{
			name:        "Custo negativo",
			request:     &domain.NewInventoryItemRequest{ID: "003", Category: "Vinyl", Cost: "-2"},
			expectedErr: ErrInvalidCost,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, err := service.AddItem(ctx, tt.request)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, item)

				var invErr *InventoryError
				assert.ErrorAs(t, err, &invErr)
				return
			}
			require.NoError(t, err)
			tt.validate(t, item)
		})
	}

	persisted, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	assert.Len(t, persisted, 2)
}

func TestService_AddItem_FalhaAoSalvar(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockInventoryRepository(ctrl)
	service := NewService(mockRepo, newFormatter(t), DefaultLowStockThreshold, false)
	ctx := context.Background()

	mockRepo.EXPECT().SaveAll(ctx, gomock.Any()).Return(errors.New("falhou"))

	item, err := service.AddItem(ctx, &domain.NewInventoryItemRequest{ID: "001", Category: "A4 Paper", Cost: "5"})
	assert.Nil(t, item)
	assert.ErrorIs(t, err, ErrPersistence)

	items, err := service.ListItems(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestService_DeleteItem(t *testing.T) {
	ctx := context.Background()
	service := NewService(repository.NewMemoryInventoryRepository(), newFormatter(t), DefaultLowStockThreshold, true)
	require.NoError(t, service.Load(ctx))

	assert.ErrorIs(t, service.DeleteItem(ctx, "999"), ErrItemNotFound)
	require.NoError(t, service.DeleteItem(ctx, "001"))

	items, err := service.ListItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "002", items[0].ID)
}

func TestService_LoadRecalculaStatus(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryInventoryRepository(
		&domain.InventoryItem{ID: "001", Category: "A4 Paper", QtyPresent: 1, Cost: decimal.NewFromInt(5), Status: domain.StockStatusInStock},
	)
	service := NewService(repo, newFormatter(t), DefaultLowStockThreshold, true)
	require.NoError(t, service.Load(ctx))

	items, err := service.ListItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1, "não grava exemplos quando já existem itens")
	assert.Equal(t, domain.StockStatusLowStock, items[0].Status)
}

func TestService_Summary(t *testing.T) {
	ctx := context.Background()
	service := NewService(repository.NewMemoryInventoryRepository(), newFormatter(t), DefaultLowStockThreshold, true)
	require.NoError(t, service.Load(ctx))

	summary, err := service.Summary(ctx, "NGN")
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Items)
	assert.Equal(t, 1, summary.LowStock)
	// 20 × 5 + 2 × 50
	assert.Equal(t, "200", summary.TotalExpenses.String())
	assert.Equal(t, "₦200.00", summary.TotalExpensesFormatted)

	_, err = service.Summary(ctx, "JPY")
	assert.ErrorIs(t, err, formatting.ErrInvalidCurrency)
}
