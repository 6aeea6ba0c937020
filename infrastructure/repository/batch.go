package repository

import (
	"context"
	"database/sql"
	"strconv"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
)

// insertBatchSize limita as linhas por INSERT. O PostgreSQL aceita no máximo
// 65535 parâmetros por comando.
const insertBatchSize = 1000

type statement struct {
	query string
	args  []interface{}
}

// batchInserts monta um INSERT para cada bloco de até insertBatchSize linhas.
// row devolve os valores da linha i na ordem de columns.
func batchInserts(table string, columns []string, rows int, row func(i int) []interface{}) ([]statement, error) {
	statements := make([]statement, 0, (rows+insertBatchSize-1)/insertBatchSize)

	for start := 0; start < rows; start += insertBatchSize {
		end := min(start+insertBatchSize, rows)

		insert := squirrel.
			Insert(table).
			Columns(columns...).
			PlaceholderFormat(squirrel.Dollar)

		for i := start; i < end; i++ {
			insert = insert.Values(row(i)...)
		}

		query, args, err := insert.ToSql()
		if err != nil {
			return nil, errors.Wrap(err, "erro ao construir a query de inserção")
		}
		statements = append(statements, statement{query: query, args: args})
	}

	return statements, nil
}

// replaceAll apaga a tabela e grava os blocos dentro da transação recebida
func replaceAll(ctx context.Context, tx *sql.Tx, table string, statements []statement) error {
	deleteQuery, deleteArgs, err := squirrel.
		Delete(table).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir a query de remoção")
	}

	if _, err := tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return wrapPQError(err, "erro ao limpar "+table)
	}

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt.query, stmt.args...); err != nil {
			return wrapPQError(err, "erro ao salvar bloco "+strconv.Itoa(i+1)+" de "+table)
		}
	}

	return nil
}
