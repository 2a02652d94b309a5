package insighting

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/lead-ads-dashboard/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/lead-ads-dashboard/internal/config"
	"github.com/vfg2006/lead-ads-dashboard/internal/domain"
	"github.com/vfg2006/lead-ads-dashboard/internal/usecases/matching"
	"github.com/vfg2006/lead-ads-dashboard/internal/usecases/metrics"
	"github.com/vfg2006/lead-ads-dashboard/pkg/utils"
	"golang.org/x/sync/errgroup"
)

var (
	ErrMetaNotConfigured       = errors.New("META_ACCESS_TOKEN e META_AD_ACCOUNT_ID precisam estar configurados")
	ErrLeadspediaNotConfigured = errors.New("LEADSPEDIA_API_KEY e LEADSPEDIA_API_SECRET precisam estar configurados")
	ErrInvalidPeriod           = errors.New("período inválido")
	ErrInvalidBreakdown        = errors.New("breakdown desconhecido")
)

// Service implementa Insighter
type Service struct {
	cfg     *config.Config
	meta    MetaInsighter
	matcher matching.Matcher
	now     func() time.Time
}

func NewService(cfg *config.Config, meta MetaInsighter, matcher matching.Matcher) *Service {
	return &Service{
		cfg:     cfg,
		meta:    meta,
		matcher: matcher,
		now:     time.Now,
	}
}

// WithClock troca o relógio usado para calcular o período do monitor
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) targets() metrics.Targets {
	t := s.cfg.Alerts.DefaultThresholds
	return metrics.Targets{ROI: t.MinROI, SellRate: t.MinSellRate}
}

func validate(filters *domain.InsightFilters) error {
	if filters == nil || filters.Since.IsZero() || filters.Until.IsZero() {
		return fmt.Errorf("%w: é necessário informar as datas de início e fim", ErrInvalidPeriod)
	}
	if filters.Since.After(filters.Until) {
		return fmt.Errorf("%w: a data de início não pode ser posterior à data de fim", ErrInvalidPeriod)
	}
	return nil
}

func (s *Service) query(filters *domain.InsightFilters, period utils.DateRange, breakdowns []string) metadomain.InsightsQuery {
	return metadomain.InsightsQuery{
		AdAccountID: s.cfg.Meta.AdAccountID,
		Since:       period.Since,
		Until:       period.Until,
		Level:       "ad",
		Breakdowns:  breakdowns,
		CampaignIDs: filters.CampaignIDs,
		AdsetIDs:    filters.AdsetIDs,
		AdIDs:       filters.AdIDs,
	}
}

func periodOf(filters *domain.InsightFilters) utils.DateRange {
	return utils.DateRange{Since: filters.Since, Until: filters.Until}
}

func (s *Service) GetInsights(ctx context.Context, filters *domain.InsightFilters) (*domain.InsightsResponse, error) {
	if !s.meta.Configured() {
		return nil, ErrMetaNotConfigured
	}
	if err := validate(filters); err != nil {
		return nil, err
	}

	preset := filters.Breakdown
	if preset == "" {
		preset = "none"
	}
	breakdowns, ok := metadomain.BreakdownPresets[preset]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrInvalidBreakdown, preset)
	}

	period := periodOf(filters)
	rows, err := s.meta.FetchInsightsCached(ctx, s.query(filters, period, breakdowns), s.cfg.Meta.LeadActionTypes, s.cfg.Cache.TTL())
	if err != nil {
		return nil, err
	}

	filtered := ApplyFilters(rows, filters)
	domain.SortRows(filtered)

	return &domain.InsightsResponse{
		Since:     period.SinceString(),
		Until:     period.UntilString(),
		Breakdown: preset,
		TotalRows: len(rows),
		Rows:      filtered,
		Totals:    Totals(filtered),
		Guardrail: Guardrail(filtered, filters.GuardrailMinSpend, filters.GuardrailMinLeads),
	}, nil
}

func (s *Service) GetActionTypes(ctx context.Context, filters *domain.InsightFilters) ([]domain.ActionTypeTotal, error) {
	if !s.meta.Configured() {
		return nil, ErrMetaNotConfigured
	}
	if err := validate(filters); err != nil {
		return nil, err
	}
	return s.meta.SummarizeActionTypesCached(ctx, s.query(filters, periodOf(filters), nil), s.cfg.Cache.TTL())
}

func (s *Service) GetCampaigns(ctx context.Context, showLive, showPaused bool) ([]metadomain.Object, error) {
	if !s.meta.Configured() {
		return nil, ErrMetaNotConfigured
	}
	campaigns, err := s.meta.ListCampaigns(ctx, s.cfg.Meta.AdAccountID, s.cfg.Cache.TTL())
	if err != nil {
		return nil, err
	}
	return metadomain.FilterByStatus(campaigns, showLive, showPaused), nil
}

func (s *Service) GetAdsets(ctx context.Context, campaignIDs []string, showLive, showPaused bool) ([]metadomain.Object, error) {
	if !s.meta.Configured() {
		return nil, ErrMetaNotConfigured
	}
	adsets, err := s.meta.ListAdsets(ctx, s.cfg.Meta.AdAccountID, campaignIDs, s.cfg.Cache.TTL())
	if err != nil {
		return nil, err
	}
	return metadomain.FilterByStatus(adsets, showLive, showPaused), nil
}

func (s *Service) GetAds(ctx context.Context, adsetIDs []string, showLive, showPaused bool) ([]metadomain.Object, error) {
	if !s.meta.Configured() {
		return nil, ErrMetaNotConfigured
	}
	ads, err := s.meta.ListAds(ctx, s.cfg.Meta.AdAccountID, adsetIDs, s.cfg.Cache.TTL())
	if err != nil {
		return nil, err
	}
	return metadomain.FilterByStatus(ads, showLive, showPaused), nil
}

// matched busca as linhas do Meta do período (sem breakdown) e cruza com o Leadspedia
func (s *Service) matched(ctx context.Context, filters *domain.InsightFilters, period utils.DateRange) (*domain.MatchResult, error) {
	rows, err := s.meta.FetchInsightsCached(ctx, s.query(filters, period, nil), s.cfg.Meta.LeadActionTypes, s.cfg.Cache.TTL())
	if err != nil {
		return nil, err
	}
	return s.matcher.FetchAndMatchCached(ctx, period.Since, period.Until, rows)
}

func (s *Service) checkCombined(filters *domain.InsightFilters) error {
	if !s.meta.Configured() {
		return ErrMetaNotConfigured
	}
	if !s.cfg.LeadspediaEnabled() {
		return ErrLeadspediaNotConfigured
	}
	return validate(filters)
}

// GetCombined busca o período atual e o anterior em paralelo.
// Falha no período anterior só remove a comparação.
func (s *Service) GetCombined(ctx context.Context, filters *domain.InsightFilters) (*domain.CombinedView, error) {
	if err := s.checkCombined(filters); err != nil {
		return nil, err
	}

	period := periodOf(filters)
	var current, previous *domain.MatchResult

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		result, err := s.matched(gctx, filters, period)
		if err != nil {
			return err
		}
		current = result
		return nil
	})
	g.Go(func() error {
		result, err := s.matched(gctx, filters, period.Previous())
		if err != nil {
			logrus.WithError(err).Warn("insights: falha ao buscar o período anterior, comparação ignorada")
			return nil
		}
		previous = result
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	targets := s.targets()
	rows := filterMatched(current.MatchedData, filters)

	view := &domain.CombinedView{
		Since:                  period.SinceString(),
		Until:                  period.UntilString(),
		KPIs:                   metrics.CalculateKPIs(rows, targets),
		ByCampaign:             metrics.KPIsByDimension(rows, "campaign_name", targets),
		Rows:                   rows,
		UnmatchedMetaCampaigns: current.UnmatchedMetaCampaigns,
		MatchRate:              current.MatchRate,
		MetaLeadCount:          current.MetaLeadCount,
		LPLeadCount:            current.LPLeadCount,
	}
	if previous != nil {
		view.PeriodComparison = metrics.PeriodComparison(rows, filterMatched(previous.MatchedData, filters), targets)
	}

	return view, nil
}

func (s *Service) GetProblemAreas(ctx context.Context, filters *domain.InsightFilters, minSpend float64) ([]domain.ProblemArea, error) {
	if err := s.checkCombined(filters); err != nil {
		return nil, err
	}

	result, err := s.matched(ctx, filters, periodOf(filters))
	if err != nil {
		return nil, err
	}
	return metrics.IdentifyProblemAreas(filterMatched(result.MatchedData, filters), minSpend, s.targets()), nil
}

// MonitorRows retorna vazio quando Meta ou Leadspedia não estão configurados
func (s *Service) MonitorRows(ctx context.Context) ([]domain.MatchedRow, error) {
	if !s.meta.Configured() || !s.cfg.LeadspediaEnabled() {
		logrus.Debug("insights: monitor sem Meta ou Leadspedia configurados, nada a avaliar")
		return []domain.MatchedRow{}, nil
	}

	period, err := utils.ParseDateRange("", "", s.cfg.Alerts.LookbackDays, s.now())
	if err != nil {
		return nil, err
	}

	result, err := s.matched(ctx, &domain.InsightFilters{}, period)
	if err != nil {
		return nil, err
	}
	return result.MatchedData, nil
}
