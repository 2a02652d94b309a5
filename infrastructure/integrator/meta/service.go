package meta

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/lead-ads-dashboard/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/lead-ads-dashboard/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/lead-ads-dashboard/infrastructure/repository"
	"github.com/vfg2006/lead-ads-dashboard/internal/config"
	"github.com/vfg2006/lead-ads-dashboard/internal/domain"
)

// MetaIntegrator guarda no cache apenas as saídas derivadas, nunca o token
type MetaIntegrator struct {
	cfg    *config.Config
	Client metaclient.Client
	cache  repository.CacheRepository
}

func New(cfg *config.Config, client metaclient.Client, cache repository.CacheRepository) *MetaIntegrator {
	return &MetaIntegrator{
		cfg:    cfg,
		Client: client,
		cache:  cache,
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// FetchInsightsCached busca os insights e devolve as linhas com leads e CPL calculados
func (s *MetaIntegrator) FetchInsightsCached(ctx context.Context, query metadomain.InsightsQuery, leadTypes []string, ttl time.Duration) ([]domain.InsightRow, error) {
	material := query.KeyMaterial()
	material["lead_action_types"] = nonNil(leadTypes)

	key, err := repository.StableKey(material)
	if err != nil {
		return nil, err
	}

	var rows []domain.InsightRow
	hit, err := repository.GetJSON(ctx, s.cache, key, ttl, &rows)
	if err != nil {
		logrus.WithError(err).Warn("meta: falha ao ler cache de insights")
	}
	if hit {
		return rows, nil
	}

	insights, err := s.Client.GetInsights(ctx, query)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"meta_account_id": query.AdAccountID,
			"error":           err.Error(),
		}).Error("insights: falha ao buscar insights na API")
		return nil, err
	}

	rows = FactoryInsightRows(insights, leadTypes)
	if err := repository.SetJSON(ctx, s.cache, key, rows); err != nil {
		logrus.WithError(err).Warn("meta: falha ao gravar cache de insights")
	}

	logrus.WithFields(logrus.Fields{
		"meta_account_id": query.AdAccountID,
		"meta_rows":       len(rows),
		"level":           query.Level,
	}).Debug("insights: linhas obtidas na API")

	return rows, nil
}

// SummarizeActionTypesCached é usado para descobrir qual action_type corresponde aos leads
func (s *MetaIntegrator) SummarizeActionTypesCached(ctx context.Context, query metadomain.InsightsQuery, ttl time.Duration) ([]domain.ActionTypeTotal, error) {
	material := query.KeyMaterial()
	material["kind"] = "action_type_summary"

	key, err := repository.StableKey(material)
	if err != nil {
		return nil, err
	}

	var summary []domain.ActionTypeTotal
	hit, err := repository.GetJSON(ctx, s.cache, key, ttl, &summary)
	if err != nil {
		logrus.WithError(err).Warn("meta: falha ao ler cache do resumo de ações")
	}
	if hit {
		return summary, nil
	}

	insights, err := s.Client.GetInsights(ctx, query)
	if err != nil {
		return nil, err
	}

	summary = SummarizeActionTypes(insights)
	if err := repository.SetJSON(ctx, s.cache, key, summary); err != nil {
		logrus.WithError(err).Warn("meta: falha ao gravar cache do resumo de ações")
	}
	return summary, nil
}

func (s *MetaIntegrator) cachedObjects(ctx context.Context, kind, adAccountID string, parentIDs []string, ttl time.Duration, fetch func() ([]metadomain.Object, error)) ([]metadomain.Object, error) {
	key, err := repository.StableKey(map[string]any{
		"kind":          kind,
		"ad_account_id": adAccountID,
		"parent_ids":    nonNil(parentIDs),
	})
	if err != nil {
		return nil, err
	}

	var objects []metadomain.Object
	hit, err := repository.GetJSON(ctx, s.cache, key, ttl, &objects)
	if err != nil {
		logrus.WithError(err).Warn("meta: falha ao ler cache de objetos")
	}
	if hit {
		return objects, nil
	}

	objects, err = fetch()
	if err != nil {
		return nil, fmt.Errorf("erro ao listar %s: %w", kind, err)
	}

	if err := repository.SetJSON(ctx, s.cache, key, objects); err != nil {
		logrus.WithError(err).Warn("meta: falha ao gravar cache de objetos")
	}
	return objects, nil
}

func (s *MetaIntegrator) ListCampaigns(ctx context.Context, adAccountID string, ttl time.Duration) ([]metadomain.Object, error) {
	return s.cachedObjects(ctx, "campaigns", adAccountID, nil, ttl, func() ([]metadomain.Object, error) {
		return s.Client.ListCampaigns(ctx, adAccountID)
	})
}

func (s *MetaIntegrator) ListAdsets(ctx context.Context, adAccountID string, campaignIDs []string, ttl time.Duration) ([]metadomain.Object, error) {
	return s.cachedObjects(ctx, "adsets", adAccountID, campaignIDs, ttl, func() ([]metadomain.Object, error) {
		return s.Client.ListAdsets(ctx, adAccountID, campaignIDs)
	})
}

func (s *MetaIntegrator) ListAds(ctx context.Context, adAccountID string, adsetIDs []string, ttl time.Duration) ([]metadomain.Object, error) {
	return s.cachedObjects(ctx, "ads", adAccountID, adsetIDs, ttl, func() ([]metadomain.Object, error) {
		return s.Client.ListAds(ctx, adAccountID, adsetIDs)
	})
}

// Configured indica se há token e conta de anúncios definidos
func (s *MetaIntegrator) Configured() bool {
	return strings.TrimSpace(s.cfg.Meta.AccessToken) != "" && s.cfg.Meta.AdAccountID != ""
}
