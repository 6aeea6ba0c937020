package repository

import (
	"context"

	"github.com/pkg/errors"

	"github.com/nuellacreatives/ledger-api/infrastructure/database/postgres"
	"github.com/nuellacreatives/ledger-api/infrastructure/migration"
	"github.com/nuellacreatives/ledger-api/internal/config"
	"github.com/nuellacreatives/ledger-api/pkg/log"
)

// Storage agrupa os repositórios do driver escolhido na configuração
type Storage struct {
	Sales     SalesRepository
	Inventory InventoryRepository

	conn *postgres.Connection
}

// Open cria os repositórios de acordo com STORAGE_DRIVER.
// Com o driver postgres as migrações são aplicadas antes do uso.
func Open(ctx context.Context, cfg *config.Config) (*Storage, error) {
	logger := log.L.WithField("storage_driver", cfg.Storage.Driver)

	switch cfg.Storage.Driver {
	case config.StorageDriverMemory:
		logger.Warn("Usando armazenamento em memória, os dados serão perdidos ao reiniciar")
		return &Storage{
			Sales:     NewMemorySalesRepository(),
			Inventory: NewMemoryInventoryRepository(),
		}, nil

	case config.StorageDriverFile:
		logger.WithFields(log.Fields{
			"sales_file":     cfg.Storage.SalesFile,
			"inventory_file": cfg.Storage.InventoryFile,
		}).Info("Usando armazenamento em arquivo")
		return &Storage{
			Sales:     NewFileSalesRepository(cfg.Storage.SalesFile),
			Inventory: NewFileInventoryRepository(cfg.Storage.InventoryFile),
		}, nil

	case config.StorageDriverPostgres:
		conn, err := postgres.NewConnection(ctx, cfg.Database)
		if err != nil {
			return nil, err
		}

		if err := migration.Up(conn.DB); err != nil {
			_ = conn.Close()
			return nil, err
		}

		logger.Info("Conexão com PostgreSQL estabelecida com sucesso")
		return &Storage{
			Sales:     NewSalesRepository(conn),
			Inventory: NewInventoryRepository(conn),
			conn:      conn,
		}, nil
	}

	return nil, errors.Errorf("driver de armazenamento desconhecido: %q", cfg.Storage.Driver)
}

// Close libera a conexão com o banco, quando existir
func (s *Storage) Close() error {
	if s == nil || s.conn == nil {
		return nil
	}
	return s.conn.Close()
}
