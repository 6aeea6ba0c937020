package selling

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nuellacreatives/ledger-api/infrastructure/repository"
	"github.com/nuellacreatives/ledger-api/internal/domain"
	"github.com/nuellacreatives/ledger-api/internal/usecases/formatting"
	"github.com/nuellacreatives/ledger-api/pkg/apiErrors"
	"github.com/nuellacreatives/ledger-api/pkg/log"
	"github.com/nuellacreatives/ledger-api/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

const maxIDAttempts = 10

// SalesService é a fonte da lista de vendas
type SalesService interface {
	ListSales(ctx context.Context) ([]*domain.SaleRecord, error)
	AddSale(ctx context.Context, req *domain.NewSaleRequest) (*domain.SaleRecord, error)
	DeleteSale(ctx context.Context, id string) error
	Summary(ctx context.Context, currency string) (*domain.SalesSummary, error)
	Load(ctx context.Context) error
}

type Service struct {
	mu        sync.RWMutex
	records   []*domain.SaleRecord
	repo      repository.SalesRepository
	formatter *formatting.Formatter
	seed      bool
	now       func() time.Time
}

func NewService(repo repository.SalesRepository, formatter *formatting.Formatter, seed bool) SalesService {
	return &Service{
		records:   make([]*domain.SaleRecord, 0),
		repo:      repo,
		formatter: formatter,
		seed:      seed,
		now:       time.Now,
	}
}

// SampleSales são as vendas de exemplo gravadas quando o armazenamento está vazio
func SampleSales() []*domain.NewSaleRequest {
	return []*domain.NewSaleRequest{
		{
			Date:        "2025-09-14",
			Customer:    "John Doe",
			Product:     "A4 Paper",
			Description: "Pack of 500 sheets",
			Quantity:    3,
			Amount:      "120.5",
		},
		{
			Date:        "2025-09-14",
			Customer:    "Mary Jane",
			Product:     "Printing Ink",
			Description: "Black Ink Cartridge",
			Quantity:    1,
			Amount:      "540.0",
		},
	}
}

// Load substitui a lista em memória pelo conteúdo do repositório
func (s *Service) Load(ctx context.Context) error {
	records, err := s.repo.LoadAll(ctx)
	if err != nil {
		return NewSaleError(ErrPersistence, apiErrors.ErrDatabaseOperation, err.Error())
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = make([]*domain.SaleRecord, 0, len(records))
	for _, r := range records {
		if r != nil {
			s.records = append(s.records, r)
		}
	}

	logger := log.ForContext(ctx)
	if len(s.records) > 0 || !s.seed {
		logger.WithField("count", len(s.records)).Info("selling: vendas carregadas")
		return nil
	}

	for _, req := range SampleSales() {
		record, err := s.newRecord(req)
		if err != nil {
			return err
		}
		s.records = append(s.records, record)
	}

	if err := s.repo.SaveAll(ctx, s.records); err != nil {
		s.records = s.records[:0]
		return NewSaleError(ErrPersistence, apiErrors.ErrDatabaseOperation, err.Error())
	}

	logger.WithField("count", len(s.records)).Info("selling: vendas de exemplo gravadas")
	return nil
}

// ListSales retorna uma cópia da lista, na ordem de inserção
func (s *Service) ListSales(_ context.Context) ([]*domain.SaleRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.SaleRecord, 0, len(s.records))
	for _, r := range s.records {
		out = append(out, r.Clone())
	}
	return out, nil
}

// AddSale valida a requisição, registra a venda e persiste a lista inteira.
// A data não é validada aqui.
func (s *Service) AddSale(ctx context.Context, req *domain.NewSaleRequest) (*domain.SaleRecord, error) {
	if req == nil {
		return nil, NewSaleError(ErrMissingRequiredField, apiErrors.ErrInvalidRequest, "requisição vazia")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	record, err := s.newRecord(req)
	if err != nil {
		return nil, err
	}

	s.records = append(s.records, record)
	if err := s.repo.SaveAll(ctx, s.records); err != nil {
		s.records = s.records[:len(s.records)-1]
		log.ForContext(ctx).WithError(err).WithField("sale_id", record.ID).Error("selling: falha ao salvar venda, alteração desfeita")
		return nil, NewSaleErrorWithID(ErrPersistence, apiErrors.ErrDatabaseOperation, record.ID, err.Error())
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"sale_id": record.ID,
		"amount":  record.Amount.String(),
	}).Info("selling: venda registrada")

	return record.Clone(), nil
}

// DeleteSale remove a venda e persiste a lista inteira
func (s *Service) DeleteSale(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return NewSaleErrorWithID(ErrSaleNotFound, apiErrors.ErrSaleNotFound, id, "")
	}

	previous := s.records
	next := make([]*domain.SaleRecord, 0, len(previous)-1)
	next = append(next, previous[:idx]...)
	next = append(next, previous[idx+1:]...)

	if err := s.repo.SaveAll(ctx, next); err != nil {
		log.ForContext(ctx).WithError(err).WithField("sale_id", id).Error("selling: falha ao salvar remoção, alteração desfeita")
		return NewSaleErrorWithID(ErrPersistence, apiErrors.ErrDatabaseOperation, id, err.Error())
	}
	s.records = next

	log.ForContext(ctx).WithField("sale_id", id).Info("selling: venda removida")
	return nil
}

// Summary soma todas as vendas, inclusive as sem data
func (s *Service) Summary(ctx context.Context, currency string) (*domain.SalesSummary, error) {
	cur, err := s.formatter.Lookup(currency)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	total := decimal.Zero
	for _, r := range s.records {
		total = total.Add(r.Amount)
	}
	count := len(s.records)
	s.mu.RUnlock()

	formatted, err := s.formatter.Format(total, string(cur.Code))
	if err != nil {
		return nil, err
	}

	return &domain.SalesSummary{
		Count:          count,
		Total:          total,
		TotalFormatted: formatted,
		Currency:       cur.Code,
	}, nil
}

// newRecord deve ser chamado com o lock de escrita
func (s *Service) newRecord(req *domain.NewSaleRequest) (*domain.SaleRecord, error) {
	amount, err := parseAmount(req.Amount)
	if err != nil {
		return nil, err
	}

	if req.Quantity < 0 {
		return nil, NewSaleError(ErrInvalidQuantity, apiErrors.ErrInvalidQuantity, "")
	}

	customer := utils.SanitizeText(req.Customer)
	product := utils.SanitizeText(req.Product)
	if customer == "" || product == "" {
		return nil, NewSaleError(ErrMissingRequiredField, apiErrors.ErrMissingRequiredData, "")
	}

	id, err := s.uniqueID()
	if err != nil {
		return nil, err
	}

	return &domain.SaleRecord{
		ID:          id,
		Date:        strings.TrimSpace(req.Date),
		Customer:    customer,
		Product:     product,
		Description: utils.SanitizeText(req.Description),
		Quantity:    req.Quantity,
		Amount:      amount,
		CreatedAt:   s.now().UTC(),
	}, nil
}

func parseAmount(raw domain.AmountInput) (decimal.Decimal, error) {
	value := strings.TrimSpace(string(raw))
	if value == "" {
		return decimal.Zero, NewSaleError(ErrInvalidAmount, apiErrors.ErrInvalidAmount, "valor não informado")
	}

	amount, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, NewSaleError(ErrInvalidAmount, apiErrors.ErrInvalidAmount, value)
	}

	if amount.IsNegative() {
		return decimal.Zero, NewSaleError(ErrNegativeAmount, apiErrors.ErrInvalidAmount, value)
	}

	return amount, nil
}

func (s *Service) uniqueID() (string, error) {
	for i := 0; i < maxIDAttempts; i++ {
		id, err := utils.GenerateID()
		if err != nil {
			return "", NewSaleError(ErrGenerateID, apiErrors.ErrInternalServer, err.Error())
		}
		if s.indexOf(id) < 0 {
			return id, nil
		}
	}
	return "", NewSaleError(ErrGenerateID, apiErrors.ErrInternalServer, "colisões consecutivas de id")
}

func (s *Service) indexOf(id string) int {
	for i, r := range s.records {
		if r.ID == id {
			return i
		}
	}
	return -1
}
