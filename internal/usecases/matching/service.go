package matching

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/lead-ads-dashboard/infrastructure/integrator/leadspedia"
	lpdomain "github.com/vfg2006/lead-ads-dashboard/infrastructure/integrator/leadspedia/domain"
	"github.com/vfg2006/lead-ads-dashboard/infrastructure/repository"
	"github.com/vfg2006/lead-ads-dashboard/internal/config"
	"github.com/vfg2006/lead-ads-dashboard/internal/domain"
	"github.com/vfg2006/lead-ads-dashboard/pkg/utils"
	"golang.org/x/sync/errgroup"
)

type Matcher interface {
	FetchAndMatchCached(ctx context.Context, since, until time.Time, metaRows []domain.InsightRow) (*domain.MatchResult, error)
	AffiliateID() string
}

type Service struct {
	cfg        *config.Config
	leadspedia leadspedia.LeadspediaIntegrator
	mappings   repository.CampaignMappingRepository
	cache      repository.CacheRepository
	ttl        time.Duration
}

func NewService(
	cfg *config.Config,
	lp leadspedia.LeadspediaIntegrator,
	mappings repository.CampaignMappingRepository,
	cache repository.CacheRepository,
) *Service {
	return &Service{
		cfg:        cfg,
		leadspedia: lp,
		mappings:   mappings,
		cache:      cache,
		ttl:        cfg.Cache.TTL(),
	}
}

// AffiliateID prioriza o afiliado salvo nos mapeamentos e usa LEADSPEDIA_AFFILIATE_ID na falta dele
func (s *Service) AffiliateID() string {
	if affiliate := s.mappings.Load().AffiliateID; affiliate != "" {
		return affiliate
	}
	return s.cfg.Leadspedia.AffiliateID
}

// isMapped aceita tanto os mapeamentos salvos pelo painel quanto LEADSPEDIA_CAMPAIGN_MAP
func (s *Service) isMapped(campaignConfig *domain.CampaignConfig) MappingLookup {
	return func(metaCampaignID string) bool {
		if campaignConfig.GetMapping(metaCampaignID) != nil {
			return true
		}
		return s.cfg.CampaignMapping(metaCampaignID) != nil
	}
}

// FetchAndMatchCached busca os leads do período no Leadspedia e cruza com as linhas do Meta.
// Só resultados com linhas são gravados no cache.
func (s *Service) FetchAndMatchCached(ctx context.Context, since, until time.Time, metaRows []domain.InsightRow) (*domain.MatchResult, error) {
	campaignConfig := s.mappings.Load()
	affiliateID := s.AffiliateID()

	metaHash := "empty"
	if len(metaRows) > 0 {
		hash, err := utils.StableHash(metaRows)
		if err != nil {
			return nil, err
		}
		metaHash = hash
	}

	key, err := repository.StableKey(map[string]any{
		"source":       "matched_data_v2",
		"since":        since.Format(time.DateOnly),
		"until":        until.Format(time.DateOnly),
		"meta_hash":    metaHash,
		"affiliate_id": affiliateID,
		"config_hash":  s.mappings.Hash(),
	})
	if err != nil {
		return nil, err
	}

	var cached domain.MatchResult
	hit, err := repository.GetJSON(ctx, s.cache, key, s.ttl, &cached)
	if err != nil {
		logrus.WithError(err).Warn("matching: falha ao ler cache")
	}
	if hit {
		return &cached, nil
	}

	var dispositions []lpdomain.LeadDisposition
	if affiliateID != "" {
		dispositions = s.fetchByAffiliate(ctx, since, until, affiliateID)
	}
	if len(dispositions) == 0 && len(s.cfg.Leadspedia.CampaignMap) > 0 {
		dispositions = s.fetchByLegacyMap(ctx, since, until)
	}

	result := Match(metaRows, dispositions, s.isMapped(campaignConfig))

	logrus.WithFields(logrus.Fields{
		"lp_leads":   result.LPLeadCount,
		"meta_leads": result.MetaLeadCount,
		"meta_rows":  len(result.MatchedData),
		"match_rate": result.MatchRate,
	}).Debug("matching: cruzamento concluído")

	if len(result.MatchedData) > 0 {
		if err := repository.SetJSON(ctx, s.cache, key, result); err != nil {
			logrus.WithError(err).Warn("matching: falha ao gravar cache")
		}
	}
	return result, nil
}

// fetchByAffiliate combina getAll e getSold; leads vendidos que não vieram no getAll são acrescentados.
// Falhas em um dos endpoints são registradas e não interrompem o outro.
func (s *Service) fetchByAffiliate(ctx context.Context, since, until time.Time, affiliateID string) []lpdomain.LeadDisposition {
	query := lpdomain.LeadQuery{Since: since, Until: until, AffiliateID: affiliateID}

	var (
		mu        sync.Mutex
		all, sold []lpdomain.LeadDisposition
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		leads, err := s.leadspedia.FetchLeads(gctx, query, lpdomain.SourceDefault)
		if err != nil {
			logrus.WithError(err).WithField("lp_affiliate_id", affiliateID).Error("matching: falha ao buscar leads (getAll)")
			return nil
		}
		mu.Lock()
		all = leads
		mu.Unlock()
		return nil
	})
	g.Go(func() error {
		leads, err := s.leadspedia.FetchSoldLeads(gctx, query)
		if err != nil {
			logrus.WithError(err).WithField("lp_affiliate_id", affiliateID).Error("matching: falha ao buscar leads vendidos (getSold)")
			return nil
		}
		mu.Lock()
		sold = leads
		mu.Unlock()
		return nil
	})
	_ = g.Wait()

	return MergeSold(all, sold)
}

// MergeSold acrescenta a all os leads vendidos que ainda não estão nela
func MergeSold(all, sold []lpdomain.LeadDisposition) []lpdomain.LeadDisposition {
	if len(all) == 0 {
		return sold
	}

	existing := make(map[string]struct{}, len(all))
	for _, d := range all {
		existing[d.LeadID] = struct{}{}
	}

	merged := append([]lpdomain.LeadDisposition{}, all...)
	for _, d := range sold {
		if _, ok := existing[d.LeadID]; ok {
			continue
		}
		merged = append(merged, d)
		existing[d.LeadID] = struct{}{}
	}
	return merged
}

// fetchByLegacyMap consulta cada campanha de LEADSPEDIA_CAMPAIGN_MAP; campanhas com erro são ignoradas
func (s *Service) fetchByLegacyMap(ctx context.Context, since, until time.Time) []lpdomain.LeadDisposition {
	var dispositions []lpdomain.LeadDisposition
	for campaignID, mapping := range s.cfg.Leadspedia.CampaignMap {
		query := lpdomain.LeadQuery{
			Since:       since,
			Until:       until,
			AffiliateID: mapping.AffiliateID,
			VerticalID:  mapping.Vertical,
		}
		leads, err := s.leadspedia.FetchLeads(ctx, query, lpdomain.SourceDefault)
		if err != nil {
			logrus.WithError(err).WithField("meta_campaign_id", campaignID).Warn("matching: falha ao buscar leads da campanha")
			continue
		}
		dispositions = append(dispositions, leads...)
	}
	return dispositions
}
