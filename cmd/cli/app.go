package main

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/lead-ads-dashboard/infrastructure/database/sqlite"
	"github.com/vfg2006/lead-ads-dashboard/infrastructure/integrator/leadspedia"
	"github.com/vfg2006/lead-ads-dashboard/infrastructure/integrator/leadspedia/leadspediaclient"
	"github.com/vfg2006/lead-ads-dashboard/infrastructure/integrator/meta"
	"github.com/vfg2006/lead-ads-dashboard/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/lead-ads-dashboard/infrastructure/repository"
	"github.com/vfg2006/lead-ads-dashboard/internal/config"
	"github.com/vfg2006/lead-ads-dashboard/internal/usecases/analysis"
	"github.com/vfg2006/lead-ads-dashboard/internal/usecases/exporting"
	"github.com/vfg2006/lead-ads-dashboard/internal/usecases/insighting"
	"github.com/vfg2006/lead-ads-dashboard/internal/usecases/matching"
	"github.com/vfg2006/lead-ads-dashboard/pkg/log"
)

// app reúne as dependências que os subcomandos usam
type app struct {
	cfg      *config.Config
	cache    repository.CacheRepository
	mappings repository.CampaignMappingRepository
	exporter exporting.Exporter
	close    func() error
}

type appLoader func(ctx context.Context) (*app, error)

func (a *app) Close() error {
	if a.close == nil {
		return nil
	}
	return a.close()
}

// loadApp monta a mesma pilha do servidor, sem HTTP nem agendadores
func loadApp(ctx context.Context) (*app, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao carregar configuração")
	}

	log.Setup(cfg.App.LogLevel)

	if err := cfg.EnsureLocalDirs(); err != nil {
		return nil, errors.Wrap(err, "erro ao preparar diretórios locais")
	}

	conn, err := sqlite.NewConnection(ctx, cfg.Cache.DBPath)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao abrir o cache sqlite")
	}

	cacheRepo := repository.NewCacheRepository(conn)
	mappingRepo := repository.NewCampaignMappingRepository(cfg.Mappings.Path)

	lpClient, err := leadspediaclient.NewClient(cfg.Leadspedia)
	if err != nil {
		_ = conn.Close()
		return nil, errors.Wrap(err, "erro ao configurar o cliente do Leadspedia")
	}

	metaIntegrator := meta.New(cfg, metaclient.NewClient(cfg.Meta), cacheRepo)
	lpIntegrator := leadspedia.New(lpClient, cacheRepo, cfg.Cache.TTL())
	insightService := insighting.NewService(cfg, metaIntegrator, matching.NewService(cfg, lpIntegrator, mappingRepo, cacheRepo))

	logrus.WithField("cache", conn.Path()).Debug("CLI inicializada")

	return &app{
		cfg:      cfg,
		cache:    cacheRepo,
		mappings: mappingRepo,
		exporter: exporting.NewService(cfg, insightService, analysis.NewService(insightService)),
		close:    conn.Close,
	}, nil
}
