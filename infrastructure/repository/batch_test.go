package repository

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// postgresMaxParams é o limite de parâmetros por comando do PostgreSQL
const postgresMaxParams = 65535

func TestBatchInserts(t *testing.T) {
	tests := []struct {
		name           string
		rows           int
		wantStatements int
		wantLastRows   int
	}{
		{name: "Lista vazia não gera comandos", rows: 0, wantStatements: 0},
		{name: "Um bloco incompleto", rows: 3, wantStatements: 1, wantLastRows: 3},
		{name: "Blocos exatos", rows: 2 * insertBatchSize, wantStatements: 2, wantLastRows: insertBatchSize},
		{name: "Acima do limite de parâmetros de um único INSERT", rows: 7500, wantStatements: 8, wantLastRows: 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			statements, err := batchInserts(salesTable, salesColumns, tt.rows, func(i int) []interface{} {
				row := make([]interface{}, len(salesColumns))
				row[0] = i
				for c := 1; c < len(row); c++ {
					row[c] = decimal.Zero
				}
				return row
			})
			require.NoError(t, err)
			require.Len(t, statements, tt.wantStatements)

			total := 0
			for _, stmt := range statements {
				assert.LessOrEqual(t, len(stmt.args), postgresMaxParams)
				assert.Equal(t, 0, len(stmt.args)%len(salesColumns))
				assert.True(t, strings.HasPrefix(stmt.query, "INSERT INTO sales"))
				assert.Contains(t, stmt.query, "$1,", "a numeração dos parâmetros recomeça em cada bloco")
				total += len(stmt.args) / len(salesColumns)
			}
			assert.Equal(t, tt.rows, total)

			if tt.wantStatements > 0 {
				last := statements[len(statements)-1]
				assert.Equal(t, tt.wantLastRows, len(last.args)/len(salesColumns))
				assert.Equal(t, tt.rows-1, last.args[len(last.args)-len(salesColumns)], "a última linha mantém sua posição")
			}
		})
	}
}
