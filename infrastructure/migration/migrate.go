// Package migration aplica o schema do PostgreSQL a partir de arquivos SQL embutidos no binário
package migration

import (
	"database/sql"
	"embed"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/pkg/errors"

	"github.com/nuellacreatives/ledger-api/pkg/log"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Up aplica todas as migrações pendentes. Não fazer nada não é erro.
func Up(db *sql.DB) error {
	m, err := newMigrate(db)
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.L.Info("Nenhuma migração pendente")
			return nil
		}
		return errors.Wrap(err, "erro ao aplicar migrações")
	}

	version, dirty, err := m.Version()
	if err != nil {
		return errors.Wrap(err, "erro ao consultar versão do schema")
	}

	log.L.WithFields(log.Fields{
		"version": version,
		"dirty":   dirty,
	}).Info("Migrações aplicadas com sucesso")

	return nil
}

// Down desfaz todas as migrações
func Down(db *sql.DB) error {
	m, err := newMigrate(db)
	if err != nil {
		return err
	}

	if err := m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errors.Wrap(err, "erro ao desfazer migrações")
	}

	return nil
}

// newMigrate não fecha o *sql.DB recebido, que continua pertencendo ao chamador
func newMigrate(db *sql.DB) (*migrate.Migrate, error) {
	driver, err := migratepg.WithInstance(db, &migratepg.Config{})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar driver de migração")
	}

	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return nil, errors.Wrap(err, "erro ao abrir migrações embutidas")
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar instância de migração")
	}

	return m, nil
}
