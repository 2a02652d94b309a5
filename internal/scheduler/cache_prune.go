package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/lead-ads-dashboard/infrastructure/repository"
	"github.com/vfg2006/lead-ads-dashboard/internal/config"
)

const CachePruneJob = "cache-prune"

type PruneResult struct {
	Deleted int64  `json:"deleted" yaml:"deleted"`
	MaxAge  string `json:"max_age" yaml:"max_age"`
}

// CachePruneService remove do cache SQLite as entradas mais velhas que CACHE_PRUNE_MAX_AGE
type CachePruneService struct {
	*runner
	scheduler    *gocron.Scheduler
	cronSchedule string
	enabled      bool
}

func NewCachePruneService(cache repository.CacheRepository, appConfig *config.Config) *CachePruneService {
	maxAge := appConfig.CachePrune.MaxAge

	logrus.WithFields(logrus.Fields{
		"cron_schedule": appConfig.CachePrune.CronSchedule,
		"max_age":       maxAge.String(),
		"prune_enabled": appConfig.CachePrune.Enabled,
	}).Info("Configuração da limpeza de cache carregada")

	s := &CachePruneService{
		scheduler:    gocron.NewScheduler(time.Local),
		cronSchedule: appConfig.CachePrune.CronSchedule,
		enabled:      appConfig.CachePrune.Enabled,
	}
	s.runner = newRunner(CachePruneJob, func(ctx context.Context) (any, error) {
		deleted, err := cache.Prune(ctx, maxAge)
		if err != nil {
			return nil, err
		}
		return &PruneResult{Deleted: deleted, MaxAge: maxAge.String()}, nil
	})
	return s
}

func (s *CachePruneService) Name() string { return CachePruneJob }

func (s *CachePruneService) Start(ctx context.Context) error {
	if !s.enabled {
		logrus.Info("Limpeza de cache desabilitada por configuração")
		return nil
	}

	_, err := s.scheduler.Cron(s.cronSchedule).Do(func() {
		s.run(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar limpeza de cache: %w", err)
	}

	s.scheduler.StartAsync()
	logrus.WithField("cron", s.cronSchedule).Info("Agendador de limpeza de cache iniciado")

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de limpeza de cache")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *CachePruneService) TriggerManual() bool {
	return s.trigger()
}

func (s *CachePruneService) Status() JobStatus {
	return s.status(s.enabled, s.cronSchedule)
}

func (s *CachePruneService) Wait() {
	s.wait()
}
