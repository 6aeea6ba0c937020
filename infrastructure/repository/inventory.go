package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"

	"github.com/nuellacreatives/ledger-api/infrastructure/database/postgres"
	"github.com/nuellacreatives/ledger-api/internal/domain"
)

//go:generate mockgen -source=inventory.go -destination=mocks/mock_inventory.go -package=mocks

const inventoryTable = "inventory_items"

var inventoryColumns = []string{"id", "position", "category", "qty_present", "qty_used", "cost", "status"}

// InventoryRepository persiste a lista completa de itens de estoque
type InventoryRepository interface {
	LoadAll(ctx context.Context) ([]*domain.InventoryItem, error)
	SaveAll(ctx context.Context, items []*domain.InventoryItem) error
}

type inventoryRepository struct {
	conn *postgres.Connection
}

func NewInventoryRepository(conn *postgres.Connection) InventoryRepository {
	return &inventoryRepository{
		conn: conn,
	}
}

func (r *inventoryRepository) LoadAll(ctx context.Context) ([]*domain.InventoryItem, error) {
	query, args, err := squirrel.
		Select("id", "category", "qty_present", "qty_used", "cost", "status").
		From(inventoryTable).
		OrderBy("position ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapPQError(err, "erro ao executar a query")
	}
	defer rows.Close()

	items := make([]*domain.InventoryItem, 0)
	for rows.Next() {
		item := &domain.InventoryItem{}
		var status string
		if err := rows.Scan(&item.ID, &item.Category, &item.QtyPresent, &item.QtyUsed, &item.Cost, &status); err != nil {
			return nil, errors.Wrap(err, "erro ao escanear item de estoque")
		}
		item.Status = domain.StockStatus(status)
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de linhas")
	}

	return items, nil
}

func (r *inventoryRepository) SaveAll(ctx context.Context, items []*domain.InventoryItem) error {
	statements, err := batchInserts(inventoryTable, inventoryColumns, len(items), func(i int) []interface{} {
		item := items[i]
		return []interface{}{item.ID, i, item.Category, item.QtyPresent, item.QtyUsed, item.Cost, string(item.Status)}
	})
	if err != nil {
		return err
	}

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		return replaceAll(ctx, tx, inventoryTable, statements)
	})
}
