package repository

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/nuellacreatives/ledger-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// storedSale aceita tanto o formato gravado pela API quanto o dump do localStorage
// do aplicativo web, onde o id é numérico e um valor não numérico vira null.
type storedSale struct {
	ID            interface{} `json:"id"`
	Date          string      `json:"date"`
	Customer      string      `json:"customer"`
	Product       string      `json:"product"`
	Description   string      `json:"description"`
	Quantity      interface{} `json:"quantity"`
	Amount        interface{} `json:"amount"`
	AmountInvalid bool        `json:"amount_invalid"`
	CreatedAt     *time.Time  `json:"created_at,omitempty"`
}

type storedItem struct {
	ID         interface{} `json:"id"`
	Category   string      `json:"category"`
	QtyPresent interface{} `json:"qty_present"`
	QtyUsed    interface{} `json:"qty_used"`
	Cost       interface{} `json:"cost"`
	Status     string      `json:"status"`
}

// DecodeSales interpreta um arquivo JSON de vendas
func DecodeSales(data []byte) ([]*domain.SaleRecord, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return []*domain.SaleRecord{}, nil
	}

	var stored []storedSale
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	if err := decoder.Decode(&stored); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar vendas")
	}

	records := make([]*domain.SaleRecord, 0, len(stored))
	for i, s := range stored {
		id, err := normalizeID(s.ID)
		if err != nil {
			return nil, errors.Wrapf(err, "venda na posição %d", i)
		}

		quantity, err := toInt(s.Quantity)
		if err != nil {
			return nil, errors.Wrapf(err, "quantidade da venda %s", id)
		}

		// O registro continua na lista e o agregador o conta como problema de qualidade
		amount, amountOK := saleAmount(s.Amount)

		record := &domain.SaleRecord{
			ID:            id,
			Date:          s.Date,
			Customer:      s.Customer,
			Product:       s.Product,
			Description:   s.Description,
			Quantity:      quantity,
			Amount:        amount,
			AmountInvalid: s.AmountInvalid || !amountOK,
		}
		if s.CreatedAt != nil {
			record.CreatedAt = *s.CreatedAt
		}
		records = append(records, record)
	}

	return records, nil
}

// DecodeInventory interpreta um arquivo JSON de itens de estoque
func DecodeInventory(data []byte) ([]*domain.InventoryItem, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return []*domain.InventoryItem{}, nil
	}

	var stored []storedItem
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	if err := decoder.Decode(&stored); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar estoque")
	}

	items := make([]*domain.InventoryItem, 0, len(stored))
	for i, s := range stored {
		id, err := normalizeID(s.ID)
		if err != nil {
			return nil, errors.Wrapf(err, "item na posição %d", i)
		}

		present, err := toInt(s.QtyPresent)
		if err != nil {
			return nil, errors.Wrapf(err, "quantidade presente do item %s", id)
		}
		used, err := toInt(s.QtyUsed)
		if err != nil {
			return nil, errors.Wrapf(err, "quantidade usada do item %s", id)
		}
		cost, err := toDecimal(s.Cost)
		if err != nil {
			return nil, errors.Wrapf(err, "custo do item %s", id)
		}

		items = append(items, &domain.InventoryItem{
			ID:         id,
			Category:   s.Category,
			QtyPresent: present,
			QtyUsed:    used,
			Cost:       cost,
			Status:     domain.StockStatus(s.Status),
		})
	}

	return items, nil
}

func normalizeID(v interface{}) (string, error) {
	switch id := v.(type) {
	case string:
		if strings.TrimSpace(id) == "" {
			return "", fmt.Errorf("id vazio")
		}
		return id, nil
	case fmt.Stringer:
		return id.String(), nil
	case float64:
		return strconv.FormatFloat(id, 'f', -1, 64), nil
	case nil:
		return "", fmt.Errorf("id ausente")
	}
	return "", fmt.Errorf("id com tipo inesperado: %T", v)
}

// toInt trata null como zero, igual ao parseInt vazio do aplicativo web
func toInt(v interface{}) (int, error) {
	switch n := v.(type) {
	case nil:
		return 0, nil
	case fmt.Stringer:
		d, err := decimal.NewFromString(n.String())
		if err != nil {
			return 0, err
		}
		return int(d.IntPart()), nil
	case float64:
		return int(n), nil
	case string:
		if strings.TrimSpace(n) == "" {
			return 0, nil
		}
		return strconv.Atoi(strings.TrimSpace(n))
	}
	return 0, fmt.Errorf("tipo inesperado: %T", v)
}

// saleAmount interpreta o valor de uma venda. Ao contrário de toDecimal, null e
// texto vazio não viram zero: o aplicativo web grava null quando o valor digitado
// não era um número.
func saleAmount(v interface{}) (decimal.Decimal, bool) {
	if v == nil {
		return decimal.Zero, false
	}
	if s, ok := v.(string); ok && strings.TrimSpace(s) == "" {
		return decimal.Zero, false
	}

	amount, err := toDecimal(v)
	if err != nil {
		return decimal.Zero, false
	}
	return amount, true
}

func toDecimal(v interface{}) (decimal.Decimal, error) {
	switch n := v.(type) {
	case nil:
		return decimal.Zero, nil
	case fmt.Stringer:
		return decimal.NewFromString(n.String())
	case float64:
		return decimal.NewFromFloat(n), nil
	case string:
		if strings.TrimSpace(n) == "" {
			return decimal.Zero, nil
		}
		return decimal.NewFromString(strings.TrimSpace(n))
	}
	return decimal.Zero, fmt.Errorf("tipo inesperado: %T", v)
}

type fileStore struct {
	mu   sync.Mutex
	path string
}

// read retorna nil quando o arquivo ainda não existe
func (f *fileStore) read() ([]byte, error) {
	data, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao ler %s", f.path)
	}
	return data, nil
}

// write grava em um arquivo temporário e renomeia, para não deixar um arquivo pela metade
func (f *fileStore) write(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Wrap(err, "erro ao serializar dados")
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "erro ao criar diretório %s", dir)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return errors.Wrap(err, "erro ao criar arquivo temporário")
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.Wrap(err, "erro ao gravar arquivo temporário")
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errors.Wrap(err, "erro ao fechar arquivo temporário")
	}

	if err := os.Rename(tmpName, f.path); err != nil {
		os.Remove(tmpName)
		return errors.Wrapf(err, "erro ao substituir %s", f.path)
	}

	return nil
}

type fileSalesRepository struct {
	store fileStore
}

// NewFileSalesRepository guarda as vendas em um arquivo JSON
func NewFileSalesRepository(path string) SalesRepository {
	return &fileSalesRepository{store: fileStore{path: path}}
}

func (r *fileSalesRepository) LoadAll(ctx context.Context) ([]*domain.SaleRecord, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	data, err := r.store.read()
	if err != nil {
		return nil, err
	}
	return DecodeSales(data)
}

func (r *fileSalesRepository) SaveAll(ctx context.Context, records []*domain.SaleRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if records == nil {
		records = []*domain.SaleRecord{}
	}
	return r.store.write(records)
}

type fileInventoryRepository struct {
	store fileStore
}

// NewFileInventoryRepository guarda os itens de estoque em um arquivo JSON
func NewFileInventoryRepository(path string) InventoryRepository {
	return &fileInventoryRepository{store: fileStore{path: path}}
}

func (r *fileInventoryRepository) LoadAll(ctx context.Context) ([]*domain.InventoryItem, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	data, err := r.store.read()
	if err != nil {
		return nil, err
	}
	return DecodeInventory(data)
}

func (r *fileInventoryRepository) SaveAll(ctx context.Context, items []*domain.InventoryItem) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if items == nil {
		items = []*domain.InventoryItem{}
	}
	return r.store.write(items)
}
