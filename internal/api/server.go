package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"

	"github.com/nuellacreatives/ledger-api/internal/api/handler"
	"github.com/nuellacreatives/ledger-api/internal/api/handler/router"
	"github.com/nuellacreatives/ledger-api/internal/config"
	"github.com/nuellacreatives/ledger-api/internal/usecases/formatting"
	"github.com/nuellacreatives/ledger-api/internal/usecases/reporting"
	"github.com/nuellacreatives/ledger-api/internal/usecases/selling"
	"github.com/nuellacreatives/ledger-api/internal/usecases/stocking"
	"github.com/nuellacreatives/ledger-api/pkg/log"
	"github.com/nuellacreatives/ledger-api/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer *http.Server
}

// Services agrupa as dependências expostas pela API
type Services struct {
	Formatter *formatting.Formatter
	Sales     selling.SalesService
	Reports   reporting.ReportService
	Inventory stocking.InventoryService
	CronJobs  handler.CronJobServices
}

// NewHandler monta o roteador com a cadeia de middlewares global
func NewHandler(cfg *config.Config, services Services) http.Handler {
	exportLimiter := middleware.NewRateLimiter(cfg.Server.ExportRateLimitRPS, cfg.Server.ExportRateLimitBurst, cfg.Server.TrustedProxies...)
	globalLimiter := middleware.NewRateLimiter(cfg.Server.RateLimitRPS, cfg.Server.RateLimitBurst, cfg.Server.TrustedProxies...)

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Currencies(services.Formatter)...),
		router.WithRoutes(handler.Sales(services.Sales, services.Formatter)...),
		router.WithRoutes(handler.Reports(services.Reports, services.Formatter, exportLimiter.Middleware())...),
		router.WithRoutes(handler.Inventory(services.Inventory, services.Formatter)...),
		router.WithRoutes(handler.CronJobs(services.CronJobs)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(cfg.Server.CorsAllowedOrigins),
		globalLimiter.Middleware(),
	}

	return alice.New(middlewares...).Then(rt)
}

func New(cfg *config.Config, services Services) (*Server, error) {
	if services.Formatter == nil || services.Sales == nil || services.Reports == nil || services.Inventory == nil {
		return nil, fmt.Errorf("api: serviços obrigatórios não informados")
	}

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           NewHandler(cfg, services),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		log.L.WithField("address", s.httpServer.Addr).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.L.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(done)

	select {
	case <-done:
		log.L.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		log.L.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	log.L.WithField("timeout", shutdownTimeout.String()).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		log.L.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	log.L.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}

	log.L.Info("Servidor HTTP desligado com sucesso")
	return nil
}
