package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/nuellacreatives/ledger-api/infrastructure/database/postgres"
	"github.com/nuellacreatives/ledger-api/internal/domain"
)

//go:generate mockgen -source=sales.go -destination=mocks/mock_sales.go -package=mocks

const salesTable = "sales"

var salesColumns = []string{
	"id", "position", "sale_date", "customer", "product", "description",
	"quantity", "amount", "amount_invalid", "created_at",
}

// SalesRepository persiste a lista completa de vendas. SaveAll substitui o que estava salvo.
type SalesRepository interface {
	LoadAll(ctx context.Context) ([]*domain.SaleRecord, error)
	SaveAll(ctx context.Context, records []*domain.SaleRecord) error
}

type salesRepository struct {
	conn *postgres.Connection
}

func NewSalesRepository(conn *postgres.Connection) SalesRepository {
	return &salesRepository{
		conn: conn,
	}
}

func (r *salesRepository) LoadAll(ctx context.Context) ([]*domain.SaleRecord, error) {
	query, args, err := squirrel.
		Select("id", "sale_date", "customer", "product", "description", "quantity", "amount", "amount_invalid", "created_at").
		From(salesTable).
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

	records := make([]*domain.SaleRecord, 0)
	for rows.Next() {
		record := &domain.SaleRecord{}
		err := rows.Scan(
			&record.ID,
			&record.Date,
			&record.Customer,
			&record.Product,
			&record.Description,
			&record.Quantity,
			&record.Amount,
			&record.AmountInvalid,
			&record.CreatedAt,
		)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao escanear venda")
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de linhas")
	}

	return records, nil
}

func (r *salesRepository) SaveAll(ctx context.Context, records []*domain.SaleRecord) error {
	statements, err := batchInserts(salesTable, salesColumns, len(records), func(i int) []interface{} {
		record := records[i]
		return []interface{}{
			record.ID,
			i,
			record.Date,
			record.Customer,
			record.Product,
			record.Description,
			record.Quantity,
			record.Amount,
			record.AmountInvalid,
			record.CreatedAt,
		}
	})
	if err != nil {
		return err
	}

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		return replaceAll(ctx, tx, salesTable, statements)
	})
}

// wrapPQError adiciona o código do PostgreSQL à mensagem quando disponível
func wrapPQError(err error, message string) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return errors.Wrapf(err, "%s (código: %s)", message, pqErr.Code)
	}
	return errors.Wrap(err, message)
}
