package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/lead-ads-dashboard/infrastructure/database/sqlite"
	"github.com/vfg2006/lead-ads-dashboard/infrastructure/integrator/leadspedia"
	"github.com/vfg2006/lead-ads-dashboard/infrastructure/integrator/leadspedia/leadspediaclient"
	"github.com/vfg2006/lead-ads-dashboard/infrastructure/integrator/meta"
	"github.com/vfg2006/lead-ads-dashboard/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/lead-ads-dashboard/infrastructure/repository"
	"github.com/vfg2006/lead-ads-dashboard/internal/api"
	"github.com/vfg2006/lead-ads-dashboard/internal/api/stream"
	"github.com/vfg2006/lead-ads-dashboard/internal/config"
	"github.com/vfg2006/lead-ads-dashboard/internal/scheduler"
	"github.com/vfg2006/lead-ads-dashboard/internal/usecases/alerting"
	"github.com/vfg2006/lead-ads-dashboard/internal/usecases/analysis"
	"github.com/vfg2006/lead-ads-dashboard/internal/usecases/authenticating"
	"github.com/vfg2006/lead-ads-dashboard/internal/usecases/exporting"
	"github.com/vfg2006/lead-ads-dashboard/internal/usecases/insighting"
	"github.com/vfg2006/lead-ads-dashboard/internal/usecases/matching"
	"github.com/vfg2006/lead-ads-dashboard/internal/usecases/reporting"
	"github.com/vfg2006/lead-ads-dashboard/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.Sheets.Configured() {
		if ok, reason := config.CheckPathPermissions(cfg.Sheets.ServiceAccountJSONPath); !ok {
			logrus.WithField("reason", reason).Warn("JSON da conta de serviço do Google com permissões inseguras")
		}
	}

	conn := sqliteConn(ctx, cfg)
	defer conn.Close()

	cacheRepo := repository.NewCacheRepository(conn)
	mappingRepo := repository.NewCampaignMappingRepository(cfg.Mappings.Path)

	metaClient := metaclient.NewClient(cfg.Meta)
	metaIntegrator := meta.New(cfg, metaClient, cacheRepo)

	lpClient, err := leadspediaclient.NewClient(cfg.Leadspedia)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao configurar o cliente do Leadspedia")
	}
	lpIntegrator := leadspedia.New(lpClient, cacheRepo, cfg.Cache.TTL())

	matcher := matching.NewService(cfg, lpIntegrator, mappingRepo, cacheRepo)
	insightService := insighting.NewService(cfg, metaIntegrator, matcher)
	analysisService := analysis.NewService(insightService)
	exportService := exporting.NewService(cfg, insightService, analysisService)
	reportService := reporting.NewService(cfg, lpIntegrator, mappingRepo)
	authenticator := authenticating.NewService(cfg)

	hub := stream.NewHub(cfg.Server.AllowedOrigins)
	monitor := alerting.NewMonitor(cfg, mappingRepo, cacheRepo, alerting.CreateChannels(cfg), insightService.MonitorRows)
	if dashboard := monitor.Dashboard(); dashboard != nil {
		dashboard.SetBroadcaster(hub)
		hub.WithSnapshot(dashboard.Unacknowledged)
	}

	jobs := scheduler.New(
		scheduler.NewAlertMonitorService(monitor, cfg),
		scheduler.NewCachePruneService(cacheRepo, cfg),
	)
	if err := jobs.Start(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao iniciar os agendadores")
	}
	logrus.WithField("jobs", jobs.Names()).Info("Agendadores iniciados")

	server, err := api.New(
		cfg,
		insightService,
		reportService,
		analysisService,
		exportService,
		monitor,
		authenticator,
		mappingRepo,
		cacheRepo,
		jobs,
		hub,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}

	// para os agendadores e espera execuções manuais antes de fechar o banco
	cancel()
	jobs.Wait()
}

// sqliteConn abre o banco de cache local
func sqliteConn(ctx context.Context, cfg *config.Config) *sqlite.Connection {
	if err := cfg.EnsureLocalDirs(); err != nil {
		logrus.WithError(err).Fatal("Erro ao preparar diretórios locais")
	}

	conn, err := sqlite.NewConnection(ctx, cfg.Cache.DBPath)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao abrir o cache sqlite")
	}

	logrus.WithField("path", conn.Path()).Info("Cache sqlite pronto")
	return conn
}
