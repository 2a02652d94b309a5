package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/lead-ads-dashboard/internal/config"
	"github.com/vfg2006/lead-ads-dashboard/internal/usecases/alerting"
)

const AlertMonitorJob = "alert-monitor"

// AlertMonitorService executa a verificação de alertas a cada ALERT_CHECK_INTERVAL_SECONDS
type AlertMonitorService struct {
	*runner
	scheduler *gocron.Scheduler
	interval  time.Duration
	enabled   bool
}

func NewAlertMonitorService(monitor alerting.Alerter, appConfig *config.Config) *AlertMonitorService {
	interval := time.Duration(appConfig.Alerts.CheckIntervalSeconds) * time.Second

	logrus.WithFields(logrus.Fields{
		"interval":        interval.String(),
		"monitor_enabled": appConfig.Alerts.MonitorEnabled,
		"channels":        monitor.Channels(),
	}).Info("Configuração do monitor de alertas carregada")

	s := &AlertMonitorService{
		scheduler: gocron.NewScheduler(time.Local),
		interval:  interval,
		enabled:   appConfig.Alerts.MonitorEnabled,
	}
	s.runner = newRunner(AlertMonitorJob, func(ctx context.Context) (any, error) {
		// cada verificação precisa terminar antes da próxima
		checkCtx, cancel := context.WithTimeout(ctx, interval)
		defer cancel()
		return monitor.RunCheck(checkCtx)
	})
	return s
}

func (s *AlertMonitorService) Name() string { return AlertMonitorJob }

// Start agenda a verificação; a primeira roda imediatamente
func (s *AlertMonitorService) Start(ctx context.Context) error {
	if !s.enabled {
		logrus.Info("Monitor de alertas desabilitado por configuração")
		return nil
	}

	_, err := s.scheduler.Every(s.interval).Do(func() {
		s.run(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar monitor de alertas: %w", err)
	}

	s.scheduler.StartAsync()
	logrus.WithField("interval", s.interval.String()).Info("Monitor de alertas iniciado")

	go func() {
		<-ctx.Done()
		logrus.Info("Parando monitor de alertas")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *AlertMonitorService) TriggerManual() bool {
	return s.trigger()
}

func (s *AlertMonitorService) Status() JobStatus {
	return s.status(s.enabled, "every "+s.interval.String())
}

func (s *AlertMonitorService) Wait() {
	s.wait()
}
