package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/nuellacreatives/ledger-api/infrastructure/export"
	"github.com/nuellacreatives/ledger-api/infrastructure/repository"
	"github.com/nuellacreatives/ledger-api/internal/api"
	"github.com/nuellacreatives/ledger-api/internal/api/handler"
	"github.com/nuellacreatives/ledger-api/internal/config"
	"github.com/nuellacreatives/ledger-api/internal/scheduler"
	"github.com/nuellacreatives/ledger-api/internal/usecases/aggregating"
	"github.com/nuellacreatives/ledger-api/internal/usecases/formatting"
	"github.com/nuellacreatives/ledger-api/internal/usecases/reporting"
	"github.com/nuellacreatives/ledger-api/internal/usecases/selling"
	"github.com/nuellacreatives/ledger-api/internal/usecases/stocking"
	"github.com/nuellacreatives/ledger-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Configure(cfg.App.LogLevel)
	log.L.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	formatter, err := formatting.NewFormatter(formatting.DefaultCurrencies(formatting.Rates{
		USD: cfg.Currency.RateUSD,
		EUR: cfg.Currency.RateEUR,
		GBP: cfg.Currency.RateGBP,
	})...)
	if err != nil {
		log.L.WithError(err).Fatal("Tabela de moedas inválida")
	}

	policy, err := aggregating.ParsePolicy(cfg.Reporting.UnknownDatePolicy)
	if err != nil {
		log.L.WithError(err).Fatal("UNKNOWN_DATE_POLICY inválida")
	}

	storage, err := repository.Open(ctx, cfg)
	if err != nil {
		log.L.WithError(err).Fatal("Erro ao abrir o armazenamento")
	}
	defer storage.Close()

	salesService := selling.NewService(storage.Sales, formatter, cfg.App.SeedSampleData)
	if err := salesService.Load(ctx); err != nil {
		log.L.WithError(err).Fatal("Erro ao carregar as vendas")
	}

	inventoryService := stocking.NewService(storage.Inventory, formatter, cfg.Inventory.LowStockThreshold, cfg.App.SeedSampleData)
	if err := inventoryService.Load(ctx); err != nil {
		log.L.WithError(err).Fatal("Erro ao carregar o estoque")
	}

	reportService := reporting.NewService(salesService, formatter, export.NewXLSXExporter(), policy)

	dataQualityAuditService := scheduler.NewDataQualityAuditService(salesService, cfg)
	if err := dataQualityAuditService.Start(ctx); err != nil {
		log.L.WithError(err).Error("Erro ao iniciar o agendador da auditoria de qualidade dos dados")
	} else {
		log.L.Info("Agendador da auditoria de qualidade dos dados iniciado com sucesso")
	}

	server, err := api.New(cfg, api.Services{
		Formatter: formatter,
		Sales:     salesService,
		Reports:   reportService,
		Inventory: inventoryService,
		CronJobs:  handler.NewCronJobServices(dataQualityAuditService),
	})
	if err != nil {
		log.L.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		log.L.Error(err)
	}
}
