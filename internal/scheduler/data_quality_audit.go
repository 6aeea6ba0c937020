package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/shopspring/decimal"

	"github.com/nuellacreatives/ledger-api/internal/config"
	"github.com/nuellacreatives/ledger-api/internal/domain"
	"github.com/nuellacreatives/ledger-api/internal/usecases/aggregating"
	"github.com/nuellacreatives/ledger-api/internal/usecases/reporting"
	"github.com/nuellacreatives/ledger-api/pkg/log"
)

const DataQualityJob = "data-quality"

// DataQualityAuditConfig representa a configuração da auditoria de qualidade dos dados
type DataQualityAuditConfig struct {
	CronSchedule string
	Enabled      bool
}

// DataQualityAuditService recalcula periodicamente o relatório e registra as vendas sem mês
type DataQualityAuditService struct {
	scheduler *gocron.Scheduler
	config    DataQualityAuditConfig
	sales     reporting.SalesLister

	mu                  sync.Mutex
	running             bool
	lastRunStartedAt    time.Time
	lastRunCompletedAt  time.Time
	lastUnassigned      int
	lastUnassignedTotal decimal.Decimal
}

func NewDataQualityAuditService(sales reporting.SalesLister, appConfig *config.Config) *DataQualityAuditService {
	auditConfig := DataQualityAuditConfig{
		CronSchedule: appConfig.DataQualityAudit.CronSchedule,
		Enabled:      appConfig.DataQualityAudit.Enabled,
	}

	log.L.WithFields(log.Fields{
		"cron_schedule": auditConfig.CronSchedule,
		"enabled":       auditConfig.Enabled,
	}).Info("Configuração da auditoria de qualidade dos dados carregada")

	return &DataQualityAuditService{
		scheduler:           gocron.NewScheduler(time.Local),
		config:              auditConfig,
		sales:               sales,
		lastUnassignedTotal: decimal.Zero,
	}
}

// Start agenda a auditoria. O agendador para quando o contexto é cancelado.
func (s *DataQualityAuditService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		log.L.Info("Auditoria de qualidade dos dados desabilitada por configuração")
		return nil
	}

	log.L.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador da auditoria de qualidade dos dados")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.run(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar auditoria de qualidade dos dados: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		log.L.Info("Parando agendador da auditoria de qualidade dos dados")
		s.scheduler.Stop()
	}()

	return nil
}

// Audit agrega as vendas com a política de exclusão e registra cada problema encontrado
func (s *DataQualityAuditService) Audit(ctx context.Context) (*domain.ReportSnapshot, error) {
	records, err := s.sales.ListSales(ctx)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar vendas: %w", err)
	}

	snapshot, err := aggregating.Aggregate(records, aggregating.UnknownDateExclude)
	if err != nil {
		return nil, err
	}

	logger := log.ForContext(ctx)
	for _, issue := range snapshot.Issues {
		logger.WithFields(log.Fields{
			"sale_id": issue.RecordID,
			"reason":  issue.Reason,
		}).Warn("Venda fora do relatório mensal")
	}

	logger.WithFields(log.Fields{
		"records":          len(records),
		"unassigned":       snapshot.Unassigned,
		"unassigned_total": snapshot.UnassignedTotal.String(),
	}).Info("Auditoria de qualidade dos dados concluída")

	return snapshot, nil
}

// run executa uma auditoria, ignorando a chamada se outra estiver em andamento
func (s *DataQualityAuditService) run(ctx context.Context) {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		log.L.Info("Auditoria de qualidade dos dados já em andamento, ignorando")
		return
	}
	s.running = true
	s.lastRunStartedAt = time.Now()
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.running = false
		s.mu.Unlock()
	}()

	ctx, _ = log.WithCorrelationID(ctx)
	snapshot, err := s.Audit(ctx)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro na auditoria de qualidade dos dados")
		return
	}

	s.mu.Lock()
	s.lastRunCompletedAt = time.Now()
	s.lastUnassigned = snapshot.Unassigned
	s.lastUnassignedTotal = snapshot.UnassignedTotal
	s.mu.Unlock()
}

// TriggerManualRun inicia uma auditoria em segundo plano
func (s *DataQualityAuditService) TriggerManualRun() {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		log.L.Info("Auditoria de qualidade dos dados já em andamento, ignorando solicitação manual")
		return
	}
	s.mu.Unlock()

	log.L.Info("Iniciando auditoria manual de qualidade dos dados")
	go s.run(context.Background())
}

// GetStatus retorna o status atual do agendador
func (s *DataQualityAuditService) GetStatus() map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()

	return map[string]any{
		"running":               s.running,
		"cron":                  s.config.CronSchedule,
		"enabled":               s.config.Enabled,
		"last_run_started_at":   s.lastRunStartedAt,
		"last_run_completed_at": s.lastRunCompletedAt,
		"last_unassigned":       s.lastUnassigned,
		"last_unassigned_total": s.lastUnassignedTotal.String(),
	}
}
