package insighting

import (
	"context"
	"time"

	metadomain "github.com/vfg2006/lead-ads-dashboard/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/lead-ads-dashboard/internal/domain"
)

// MetaInsighter é o subconjunto do integrador do Meta usado pelo painel
type MetaInsighter interface {
	FetchInsightsCached(ctx context.Context, query metadomain.InsightsQuery, leadTypes []string, ttl time.Duration) ([]domain.InsightRow, error)
	SummarizeActionTypesCached(ctx context.Context, query metadomain.InsightsQuery, ttl time.Duration) ([]domain.ActionTypeTotal, error)
	ListCampaigns(ctx context.Context, adAccountID string, ttl time.Duration) ([]metadomain.Object, error)
	ListAdsets(ctx context.Context, adAccountID string, campaignIDs []string, ttl time.Duration) ([]metadomain.Object, error)
	ListAds(ctx context.Context, adAccountID string, adsetIDs []string, ttl time.Duration) ([]metadomain.Object, error)
	Configured() bool
}

// Insighter combina os dados do Meta com o Leadspedia para as telas do painel
type Insighter interface {
	// GetInsights retorna as linhas do Meta já filtradas, com totais e a visão de guardrail
	GetInsights(ctx context.Context, filters *domain.InsightFilters) (*domain.InsightsResponse, error)

	// GetActionTypes soma os action_types do período para validar META_LEAD_ACTION_TYPES
	GetActionTypes(ctx context.Context, filters *domain.InsightFilters) ([]domain.ActionTypeTotal, error)

	GetCampaigns(ctx context.Context, showLive, showPaused bool) ([]metadomain.Object, error)
	GetAdsets(ctx context.Context, campaignIDs []string, showLive, showPaused bool) ([]metadomain.Object, error)
	GetAds(ctx context.Context, adsetIDs []string, showLive, showPaused bool) ([]metadomain.Object, error)

	// GetCombined cruza Meta e Leadspedia e calcula os KPIs de receita e a comparação com o período anterior
	GetCombined(ctx context.Context, filters *domain.InsightFilters) (*domain.CombinedView, error)

	// GetProblemAreas lista anúncios com gasto relevante fora das metas
	GetProblemAreas(ctx context.Context, filters *domain.InsightFilters, minSpend float64) ([]domain.ProblemArea, error)

	// MonitorRows são as linhas combinadas dos últimos ALERT_LOOKBACK_DAYS, avaliadas pelo monitor de alertas
	MonitorRows(ctx context.Context) ([]domain.MatchedRow, error)
}
