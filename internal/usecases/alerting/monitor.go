package alerting

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/lead-ads-dashboard/infrastructure/repository"
	"github.com/vfg2006/lead-ads-dashboard/internal/config"
	"github.com/vfg2006/lead-ads-dashboard/internal/domain"
)

const (
	HistoryKey        = "alert_history"
	HistoryTTL        = 7 * 24 * time.Hour
	HistoryMaxEntries = 1000
	DedupWindow       = time.Hour

	rejectionThreshold = 10.0
)

var ErrNoDataFetcher = errors.New("monitor de alertas sem fonte de dados")

// DataFetcher devolve as linhas combinadas Meta + Leadspedia avaliadas pelo monitor
type DataFetcher func(ctx context.Context) ([]domain.MatchedRow, error)

type Alerter interface {
	CheckMetrics(rows []domain.MatchedRow) []domain.Alert
	Send(ctx context.Context, alerts []domain.Alert) map[string]bool
	History(ctx context.Context, limit int) ([]domain.Alert, error)
	Acknowledge(ctx context.Context, alertID string) (bool, error)
	RunCheck(ctx context.Context) (*CheckResult, error)
	Dashboard() *DashboardChannel
	Channels() []string
}

// CheckResult resume uma execução do monitor
type CheckResult struct {
	CheckedRows int             `json:"checked_rows"`
	Triggered   int             `json:"triggered"`
	Suppressed  int             `json:"suppressed"`
	Sent        []domain.Alert  `json:"sent"`
	Channels    map[string]bool `json:"channels"`
}

type Monitor struct {
	cfg      *config.Config
	mappings repository.CampaignMappingRepository
	cache    repository.CacheRepository
	fetcher  DataFetcher
	channels []Channel

	historyMu sync.Mutex
	recentMu  sync.Mutex
	recent    []domain.Alert
	now       func() time.Time
}

func NewMonitor(
	cfg *config.Config,
	mappings repository.CampaignMappingRepository,
	cache repository.CacheRepository,
	channels []Channel,
	fetcher DataFetcher,
) *Monitor {
	return &Monitor{
		cfg:      cfg,
		mappings: mappings,
		cache:    cache,
		fetcher:  fetcher,
		channels: append([]Channel{}, channels...),
		now:      time.Now,
	}
}

// WithClock troca o relógio usado nos ids e na janela de deduplicação
func (m *Monitor) WithClock(now func() time.Time) *Monitor {
	m.now = now
	return m
}

func (m *Monitor) AddChannel(channel Channel) {
	m.channels = append(m.channels, channel)
}

// Channels retorna o nome dos canais ativos
func (m *Monitor) Channels() []string {
	names := make([]string, 0, len(m.channels))
	for _, c := range m.channels {
		names = append(names, c.Name())
	}
	return names
}

// Dashboard retorna o canal do painel, se houver
func (m *Monitor) Dashboard() *DashboardChannel {
	for _, c := range m.channels {
		if d, ok := c.(*DashboardChannel); ok {
			return d
		}
	}
	return nil
}

func (m *Monitor) verticalFor(campaignID string) string {
	if mapping := m.cfg.CampaignMapping(campaignID); mapping != nil && mapping.Vertical != "" {
		return mapping.Vertical
	}
	if m.mappings != nil {
		if mapping := m.mappings.GetMapping(campaignID); mapping != nil {
			return mapping.VerticalID
		}
	}
	return ""
}

// CheckMetrics avalia cada linha contra os limites da vertical da campanha
func (m *Monitor) CheckMetrics(rows []domain.MatchedRow) []domain.Alert {
	alerts := []domain.Alert{}
	now := m.now()
	for _, row := range rows {
		alerts = append(alerts, m.checkRow(row, now)...)
	}
	return alerts
}

func floatPtr(v float64) *float64 {
	return &v
}

// formatThreshold imita a representação de floats usada nas mensagens (95 vira "95.0")
func formatThreshold(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

func (m *Monitor) checkRow(row domain.MatchedRow, now time.Time) []domain.Alert {
	vertical := m.verticalFor(row.CampaignID)
	thresholds := m.cfg.ThresholdsForVertical(vertical)
	identifier := row.CampaignID + ":" + row.AdID

	newAlert := func(alertType domain.AlertType, severity domain.AlertSeverity, title, message string, metric float64, threshold *float64) domain.Alert {
		return domain.Alert{
			ID:             domain.AlertID(alertType, identifier, now),
			Type:           alertType,
			Severity:       severity,
			Title:          title + ": " + row.AdName,
			Message:        message,
			Timestamp:      now,
			CampaignID:     row.CampaignID,
			CampaignName:   row.CampaignName,
			AdID:           row.AdID,
			AdName:         row.AdName,
			Vertical:       vertical,
			MetricValue:    floatPtr(metric),
			ThresholdValue: threshold,
			Metadata:       map[string]any{},
		}
	}

	var alerts []domain.Alert

	// sem leads no Leadspedia a taxa é zero e não indica problema
	sellRate := row.SellThroughRate
	if sellRate == 0 {
		sellRate = 100
	}
	if sellRate < thresholds.MinSellRate {
		severity := domain.AlertSeverityWarning
		if sellRate < thresholds.MinSellRate-10 {
			severity = domain.AlertSeverityCritical
		}
		alerts = append(alerts, newAlert(
			domain.AlertTypeLowSellRate, severity, "Low Sell-Through Rate",
			fmt.Sprintf("Sell-through rate %.1f%% is below threshold %s%%", sellRate, formatThreshold(thresholds.MinSellRate)),
			sellRate, floatPtr(thresholds.MinSellRate),
		))
	}

	if row.ROI < thresholds.MinROI {
		severity := domain.AlertSeverityWarning
		if row.ROI < 0 {
			severity = domain.AlertSeverityCritical
		}
		alerts = append(alerts, newAlert(
			domain.AlertTypeLowROI, severity, "Low ROI",
			fmt.Sprintf("ROI %.1f%% is below target %s%%", row.ROI, formatThreshold(thresholds.MinROI)),
			row.ROI, floatPtr(thresholds.MinROI),
		))
	}

	if row.Profit < 0 && thresholds.AlertOnNegativeMargin {
		alerts = append(alerts, newAlert(
			domain.AlertTypeNegativeMargin, domain.AlertSeverityCritical, "Negative Profit",
			fmt.Sprintf("Ad is losing money: $%.2f profit", row.Profit),
			row.Profit, floatPtr(0),
		))
	}

	if row.RejectionRate > rejectionThreshold {
		alerts = append(alerts, newAlert(
			domain.AlertTypeHighRejection, domain.AlertSeverityWarning, "High Rejection Rate",
			fmt.Sprintf("Rejection rate %.1f%% is unusually high", row.RejectionRate),
			row.RejectionRate, floatPtr(rejectionThreshold),
		))
	}

	unsold, total := row.LPPendingLeads, row.LPTotalLeads
	if unsold > 0 && total > 0 {
		unsoldPct := float64(unsold) / float64(total) * 100
		if unsoldPct > 100-thresholds.MinSellRate {
			alert := newAlert(
				domain.AlertTypeUnsoldLead, domain.AlertSeverityWarning, "Unsold Leads",
				fmt.Sprintf("%d leads (%.1f%%) remain unsold", unsold, unsoldPct),
				float64(unsold), nil,
			)
			alert.Metadata["unsold_percentage"] = unsoldPct
			alerts = append(alerts, alert)
		}
	}

	return alerts
}

// Send entrega os alertas em todos os canais e grava o histórico.
// A falha de um canal não impede os demais.
func (m *Monitor) Send(ctx context.Context, alerts []domain.Alert) map[string]bool {
	results := make(map[string]bool, len(m.channels))
	for _, channel := range m.channels {
		if err := channel.Send(ctx, alerts); err != nil {
			results[channel.Name()] = false
			logrus.WithError(err).WithField("channel", channel.Name()).Error("alertas: falha ao enviar pelo canal")
			continue
		}
		results[channel.Name()] = true
	}

	if err := m.storeHistory(ctx, alerts); err != nil {
		logrus.WithError(err).Warn("alertas: falha ao gravar histórico")
	}

	return results
}

func (m *Monitor) loadHistory(ctx context.Context) ([]domain.Alert, error) {
	var history []domain.Alert
	if _, err := repository.GetJSON(ctx, m.cache, HistoryKey, HistoryTTL, &history); err != nil {
		return nil, err
	}
	return history, nil
}

func (m *Monitor) storeHistory(ctx context.Context, alerts []domain.Alert) error {
	if len(alerts) == 0 {
		return nil
	}

	m.historyMu.Lock()
	defer m.historyMu.Unlock()

	history, err := m.loadHistory(ctx)
	if err != nil {
		return err
	}

	history = append(history, alerts...)
	if extra := len(history) - HistoryMaxEntries; extra > 0 {
		history = history[extra:]
	}
	return repository.SetJSON(ctx, m.cache, HistoryKey, history)
}

// History retorna até limit alertas do histórico, do mais recente para o mais antigo
func (m *Monitor) History(ctx context.Context, limit int) ([]domain.Alert, error) {
	history, err := m.loadHistory(ctx)
	if err != nil {
		return nil, err
	}

	if limit > 0 && len(history) > limit {
		history = history[len(history)-limit:]
	}

	out := make([]domain.Alert, 0, len(history))
	for i := len(history) - 1; i >= 0; i-- {
		out = append(out, history[i])
	}
	return out, nil
}

// Acknowledge marca o alerta no histórico e no painel
func (m *Monitor) Acknowledge(ctx context.Context, alertID string) (bool, error) {
	if dashboard := m.Dashboard(); dashboard != nil {
		dashboard.Acknowledge(alertID)
	}

	m.historyMu.Lock()
	defer m.historyMu.Unlock()

	history, err := m.loadHistory(ctx)
	if err != nil {
		return false, err
	}

	for i := range history {
		if history[i].ID != alertID {
			continue
		}
		now := m.now()
		history[i].Acknowledged = true
		history[i].AcknowledgedAt = &now
		if err := repository.SetJSON(ctx, m.cache, HistoryKey, history); err != nil {
			return false, err
		}
		return true, nil
	}
	return false, nil
}

// filterRecent descarta alertas já enviados na última hora
func (m *Monitor) filterRecent(alerts []domain.Alert) []domain.Alert {
	m.recentMu.Lock()
	defer m.recentMu.Unlock()

	seen := make(map[string]struct{}, len(m.recent))
	for _, a := range m.recent {
		seen[a.ID] = struct{}{}
	}

	fresh := []domain.Alert{}
	for _, a := range alerts {
		if _, ok := seen[a.ID]; ok {
			continue
		}
		seen[a.ID] = struct{}{}
		fresh = append(fresh, a)
	}
	return fresh
}

func (m *Monitor) remember(alerts []domain.Alert) {
	m.recentMu.Lock()
	defer m.recentMu.Unlock()

	cutoff := m.now().Add(-DedupWindow)
	kept := make([]domain.Alert, 0, len(m.recent)+len(alerts))
	for _, a := range append(m.recent, alerts...) {
		if a.Timestamp.After(cutoff) {
			kept = append(kept, a)
		}
	}
	m.recent = kept
}

// RunCheck busca os dados atuais, avalia e envia apenas alertas novos
func (m *Monitor) RunCheck(ctx context.Context) (*CheckResult, error) {
	if m.fetcher == nil {
		return nil, ErrNoDataFetcher
	}

	rows, err := m.fetcher(ctx)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar dados para o monitor: %w", err)
	}

	triggered := m.CheckMetrics(rows)
	fresh := m.filterRecent(triggered)

	result := &CheckResult{
		CheckedRows: len(rows),
		Triggered:   len(triggered),
		Suppressed:  len(triggered) - len(fresh),
		Sent:        fresh,
		Channels:    map[string]bool{},
	}

	if len(fresh) > 0 {
		result.Channels = m.Send(ctx, fresh)
		m.remember(fresh)
	}

	logrus.WithFields(logrus.Fields{
		"rows":       result.CheckedRows,
		"triggered":  result.Triggered,
		"suppressed": result.Suppressed,
	}).Info("alertas: verificação concluída")

	return result, nil
}
