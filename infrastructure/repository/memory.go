package repository

import (
	"context"
	"sync"

	"github.com/nuellacreatives/ledger-api/internal/domain"
)

type memorySalesRepository struct {
	mu      sync.RWMutex
	records []*domain.SaleRecord
}

// NewMemorySalesRepository mantém as vendas apenas em memória
func NewMemorySalesRepository(initial ...*domain.SaleRecord) SalesRepository {
	r := &memorySalesRepository{}
	r.records = cloneSales(initial)
	return r
}

func (r *memorySalesRepository) LoadAll(_ context.Context) ([]*domain.SaleRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneSales(r.records), nil
}

func (r *memorySalesRepository) SaveAll(ctx context.Context, records []*domain.SaleRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = cloneSales(records)
	return nil
}

type memoryInventoryRepository struct {
	mu    sync.RWMutex
	items []*domain.InventoryItem
}

// NewMemoryInventoryRepository mantém os itens de estoque apenas em memória
func NewMemoryInventoryRepository(initial ...*domain.InventoryItem) InventoryRepository {
	r := &memoryInventoryRepository{}
	r.items = cloneItems(initial)
	return r
}

func (r *memoryInventoryRepository) LoadAll(_ context.Context) ([]*domain.InventoryItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneItems(r.items), nil
}

func (r *memoryInventoryRepository) SaveAll(ctx context.Context, items []*domain.InventoryItem) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = cloneItems(items)
	return nil
}

func cloneSales(records []*domain.SaleRecord) []*domain.SaleRecord {
	out := make([]*domain.SaleRecord, 0, len(records))
	for _, r := range records {
		if r != nil {
			out = append(out, r.Clone())
		}
	}
	return out
}

func cloneItems(items []*domain.InventoryItem) []*domain.InventoryItem {
	out := make([]*domain.InventoryItem, 0, len(items))
	for _, i := range items {
		if i != nil {
			out = append(out, i.Clone())
		}
	}
	return out
}
