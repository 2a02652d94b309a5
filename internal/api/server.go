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
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/lead-ads-dashboard/infrastructure/repository"
	"github.com/vfg2006/lead-ads-dashboard/internal/api/handler"
	"github.com/vfg2006/lead-ads-dashboard/internal/api/handler/router"
	"github.com/vfg2006/lead-ads-dashboard/internal/api/stream"
	"github.com/vfg2006/lead-ads-dashboard/internal/config"
	"github.com/vfg2006/lead-ads-dashboard/internal/scheduler"
	"github.com/vfg2006/lead-ads-dashboard/internal/usecases/alerting"
	"github.com/vfg2006/lead-ads-dashboard/internal/usecases/analysis"
	"github.com/vfg2006/lead-ads-dashboard/internal/usecases/authenticating"
	"github.com/vfg2006/lead-ads-dashboard/internal/usecases/exporting"
	"github.com/vfg2006/lead-ads-dashboard/internal/usecases/insighting"
	"github.com/vfg2006/lead-ads-dashboard/internal/usecases/reporting"
	"github.com/vfg2006/lead-ads-dashboard/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer *http.Server
	hub        *stream.Hub
}

func New(
	config *config.Config,
	insightService insighting.Insighter,
	reportService reporting.LeadReporter,
	analysisService analysis.Analyzer,
	exportService exporting.Exporter,
	alertService alerting.Alerter,
	authenticator authenticating.Authenticator,
	mappings repository.CampaignMappingRepository,
	cache repository.CacheRepository,
	jobs scheduler.Manager,
	hub *stream.Hub,
) (*Server, error) {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck(config)...),
		router.WithRoutes(handler.UI()...),
		router.WithRoutes(handler.Authentication(authenticator)...),
		router.WithRoutes(handler.Insights(insightService)...),
		router.WithRoutes(handler.Leadspedia(reportService)...),
		router.WithRoutes(handler.Analysis(analysisService)...),
		router.WithRoutes(handler.Alerts(alertService, hub)...),
		router.WithRoutes(handler.Mappings(mappings)...),
		router.WithRoutes(handler.Exports(exportService)...),
		router.WithRoutes(handler.Cache(cache)...),
		router.WithRoutes(handler.CronJobs(jobs)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Server.AllowedOrigins),
		middleware.AuthMiddleware(authenticator),
		middleware.MetaAccessToken(),
	}

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           alice.New(middlewares...).Then(rt),
			ReadHeaderTimeout: 2 * time.Second,
		},
		hub: hub,
	}

	logrus.WithFields(logrus.Fields{
		"routes":      len(rt.Routes()),
		"auth":        authenticator.Enabled(),
		"cors_origin": config.Server.AllowedOrigins,
	}).Info("Servidor configurado")

	return srv, nil
}

// Handler expõe a cadeia completa de middlewares e rotas, usada nos testes
func (s Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(done)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": shutdownTimeout.String(),
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

// Shutdown fecha primeiro os websockets, que o http.Server não acompanha depois do hijack
func (s Server) Shutdown(ctx context.Context) error {
	if s.hub != nil {
		s.hub.Close()
		logrus.Info("Feed de alertas encerrado")
	}

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
