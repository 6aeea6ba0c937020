// Package commands implementa a linha de comando salesctl
package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nuellacreatives/ledger-api/infrastructure/export"
	"github.com/nuellacreatives/ledger-api/infrastructure/repository"
	"github.com/nuellacreatives/ledger-api/internal/config"
	"github.com/nuellacreatives/ledger-api/internal/usecases/aggregating"
	"github.com/nuellacreatives/ledger-api/internal/usecases/formatting"
	"github.com/nuellacreatives/ledger-api/internal/usecases/reporting"
	"github.com/nuellacreatives/ledger-api/internal/usecases/selling"
	"github.com/nuellacreatives/ledger-api/pkg/log"
)

var version = "1.0.0"

// app guarda o que os subcomandos compartilham depois da leitura da configuração
type app struct {
	cfg       *config.Config
	formatter *formatting.Formatter
}

// NewRootCommand monta a árvore de comandos do salesctl
func NewRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "salesctl",
		Short: "Relatórios mensais de vendas a partir da linha de comando",
		Long: `salesctl lê um arquivo de vendas no formato salesData e gera o
relatório mensal em qualquer moeda suportada, no terminal ou em planilha XLSX.

Também aplica as migrações do PostgreSQL e grava os dados de exemplo no
armazenamento configurado por STORAGE_DRIVER.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup()
		},
	}

	root.AddCommand(
		newReportCommand(a),
		newExportCommand(a),
		newMigrateCommand(a),
		newSeedCommand(a),
	)

	return root
}

func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		log.L.WithError(err).Error("Falha ao executar o comando")
		fmt.Fprintf(os.Stderr, "Erro: %v\n", err)
		os.Exit(1)
	}
}

func (a *app) setup() error {
	cfg, err := config.NewConfig()
	if err != nil {
		return err
	}
	log.Configure(cfg.App.LogLevel)

	formatter, err := formatting.NewFormatter(formatting.DefaultCurrencies(formatting.Rates{
		USD: cfg.Currency.RateUSD,
		EUR: cfg.Currency.RateEUR,
		GBP: cfg.Currency.RateGBP,
	})...)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.formatter = formatter
	return nil
}

// reportService monta o serviço de relatórios sobre um arquivo de vendas, sem gravar nada nele
func (a *app) reportService(ctx context.Context, file string, strict bool) (reporting.ReportService, error) {
	policy := aggregating.UnknownDateExclude
	if strict {
		policy = aggregating.UnknownDateReject
	}

	sales := selling.NewService(repository.NewFileSalesRepository(file), a.formatter, false)
	if err := sales.Load(ctx); err != nil {
		return nil, fmt.Errorf("erro ao ler %s: %w", file, err)
	}

	return reporting.NewService(sales, a.formatter, export.NewXLSXExporter(), policy), nil
}
