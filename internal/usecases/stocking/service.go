package stocking

import (
	"context"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/nuellacreatives/ledger-api/infrastructure/repository"
	"github.com/nuellacreatives/ledger-api/internal/domain"
	"github.com/nuellacreatives/ledger-api/internal/usecases/formatting"
	"github.com/nuellacreatives/ledger-api/pkg/apiErrors"
	"github.com/nuellacreatives/ledger-api/pkg/log"
	"github.com/nuellacreatives/ledger-api/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

const DefaultLowStockThreshold = 2

type InventoryService interface {
	ListItems(ctx context.Context) ([]*domain.InventoryItem, error)
	AddItem(ctx context.Context, req *domain.NewInventoryItemRequest) (*domain.InventoryItem, error)
	DeleteItem(ctx context.Context, id string) error
	Summary(ctx context.Context, currency string) (*domain.InventorySummary, error)
	Load(ctx context.Context) error
}

type Service struct {
	mu        sync.RWMutex
	items     []*domain.InventoryItem
	repo      repository.InventoryRepository
	formatter *formatting.Formatter
	threshold int
	seed      bool
}

func NewService(repo repository.InventoryRepository, formatter *formatting.Formatter, threshold int, seed bool) InventoryService {
	if threshold < 0 {
		threshold = DefaultLowStockThreshold
	}
	return &Service{
		items:     make([]*domain.InventoryItem, 0),
		repo:      repo,
		formatter: formatter,
		threshold: threshold,
		seed:      seed,
	}
}

func SampleItems() []*domain.NewInventoryItemRequest {
	return []*domain.NewInventoryItemRequest{
		{ID: "001", Category: "A4 Paper", QtyPresent: 20, QtyUsed: 5, Cost: "5"},
		{ID: "002", Category: "Printing Ink", QtyPresent: 2, QtyUsed: 1, Cost: "50"},
	}
}

// StatusFor deriva o status a partir da quantidade em estoque
func StatusFor(qtyPresent, threshold int) domain.StockStatus {
	if qtyPresent <= threshold {
		return domain.StockStatusLowStock
	}
	return domain.StockStatusInStock
}

// Load carrega os itens do repositório e recalcula o status de cada um
func (s *Service) Load(ctx context.Context) error {
	items, err := s.repo.LoadAll(ctx)
	if err != nil {
		return NewInventoryError(ErrPersistence, apiErrors.ErrDatabaseOperation, "", err.Error())
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = make([]*domain.InventoryItem, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		item.Status = StatusFor(item.QtyPresent, s.threshold)
		s.items = append(s.items, item)
	}

	logger := log.ForContext(ctx)
	if len(s.items) > 0 || !s.seed {
		logger.WithField("count", len(s.items)).Info("stocking: itens carregados")
		return nil
	}

	for _, req := range SampleItems() {
		item, err := s.newItem(req)
		if err != nil {
			return err
		}
		s.items = append(s.items, item)
	}

	if err := s.repo.SaveAll(ctx, s.items); err != nil {
		s.items = s.items[:0]
		return NewInventoryError(ErrPersistence, apiErrors.ErrDatabaseOperation, "", err.Error())
	}

	logger.WithField("count", len(s.items)).Info("stocking: itens de exemplo gravados")
	return nil
}

func (s *Service) ListItems(_ context.Context) ([]*domain.InventoryItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.InventoryItem, 0, len(s.items))
	for _, item := range s.items {
		out = append(out, item.Clone())
	}
	return out, nil
}

func (s *Service) AddItem(ctx context.Context, req *domain.NewInventoryItemRequest) (*domain.InventoryItem, error) {
	if req == nil {
		return nil, NewInventoryError(ErrMissingRequiredField, apiErrors.ErrInvalidRequest, "", "requisição vazia")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item, err := s.newItem(req)
	if err != nil {
		return nil, err
	}

	s.items = append(s.items, item)
	if err := s.repo.SaveAll(ctx, s.items); err != nil {
		s.items = s.items[:len(s.items)-1]
		log.ForContext(ctx).WithError(err).WithField("item_id", item.ID).Error("stocking: falha ao salvar item, alteração desfeita")
		return nil, NewInventoryError(ErrPersistence, apiErrors.ErrDatabaseOperation, item.ID, err.Error())
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"item_id": item.ID,
		"status":  item.Status,
	}).Info("stocking: item cadastrado")

	return item.Clone(), nil
}

func (s *Service) DeleteItem(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return NewInventoryError(ErrItemNotFound, apiErrors.ErrItemNotFound, id, "")
	}

	next := make([]*domain.InventoryItem, 0, len(s.items)-1)
	next = append(next, s.items[:idx]...)
	next = append(next, s.items[idx+1:]...)

	if err := s.repo.SaveAll(ctx, next); err != nil {
		log.ForContext(ctx).WithError(err).WithField("item_id", id).Error("stocking: falha ao salvar remoção, alteração desfeita")
		return NewInventoryError(ErrPersistence, apiErrors.ErrDatabaseOperation, id, err.Error())
	}
	s.items = next

	log.ForContext(ctx).WithField("item_id", id).Info("stocking: item removido")
	return nil
}

// Summary calcula o total de despesas como a soma de custo × quantidade presente
func (s *Service) Summary(ctx context.Context, currency string) (*domain.InventorySummary, error) {
	cur, err := s.formatter.Lookup(currency)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	total := decimal.Zero
	lowStock := 0
	for _, item := range s.items {
		total = total.Add(item.Cost.Mul(decimal.NewFromInt(int64(item.QtyPresent))))
		if item.Status == domain.StockStatusLowStock {
			lowStock++
		}
	}
	count := len(s.items)
	s.mu.RUnlock()

	formatted, err := s.formatter.Format(total, string(cur.Code))
	if err != nil {
		return nil, err
	}

	return &domain.InventorySummary{
		Items:                  count,
		LowStock:               lowStock,
		TotalExpenses:          total,
		TotalExpensesFormatted: formatted,
		Currency:               cur.Code,
	}, nil
}

// newItem deve ser chamado com o lock de escrita
func (s *Service) newItem(req *domain.NewInventoryItemRequest) (*domain.InventoryItem, error) {
	id := utils.SanitizeText(req.ID)
	category := utils.SanitizeText(req.Category)
	if id == "" || category == "" {
		return nil, NewInventoryError(ErrMissingRequiredField, apiErrors.ErrMissingRequiredData, id, "")
	}

	if req.QtyPresent < 0 || req.QtyUsed < 0 {
		return nil, NewInventoryError(ErrInvalidQuantity, apiErrors.ErrInvalidQuantity, id, "")
	}

	raw := strings.TrimSpace(string(req.Cost))
	cost, err := decimal.NewFromString(raw)
	if err != nil || cost.IsNegative() {
		return nil, NewInventoryError(ErrInvalidCost, apiErrors.ErrInvalidAmount, id, raw)
	}

	if s.indexOf(id) >= 0 {
		return nil, NewInventoryError(ErrDuplicateItem, apiErrors.ErrDuplicateItem, id, "")
	}

	return &domain.InventoryItem{
		ID:         id,
		Category:   category,
		QtyPresent: req.QtyPresent,
		QtyUsed:    req.QtyUsed,
		Cost:       cost,
		Status:     StatusFor(req.QtyPresent, s.threshold),
	}, nil
}

func (s *Service) indexOf(id string) int {
	for i, item := range s.items {
		if item.ID == id {
			return i
		}
	}
	return -1
}
