package leadspedia

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	lpdomain "github.com/vfg2006/lead-ads-dashboard/infrastructure/integrator/leadspedia/domain"
	"github.com/vfg2006/lead-ads-dashboard/infrastructure/integrator/leadspedia/leadspediaclient"
	"github.com/vfg2006/lead-ads-dashboard/infrastructure/repository"
)

const (
	advertisersTTL = time.Hour
	contractsTTL   = 5 * time.Minute
	verticalsTTL   = time.Hour
)

type LeadspediaIntegrator interface {
	FetchLeadsCached(ctx context.Context, query lpdomain.LeadQuery) ([]lpdomain.LeadDisposition, error)
	FetchLeads(ctx context.Context, query lpdomain.LeadQuery, source lpdomain.Source) ([]lpdomain.LeadDisposition, error)
	FetchSoldLeads(ctx context.Context, query lpdomain.LeadQuery) ([]lpdomain.LeadDisposition, error)
	FetchReturns(ctx context.Context, query lpdomain.ReturnQuery) ([]lpdomain.LeadDisposition, error)
	Advertisers(ctx context.Context) []lpdomain.Advertiser
	Contracts(ctx context.Context) []lpdomain.Contract
	Verticals(ctx context.Context) []lpdomain.Vertical
	Affiliates(ctx context.Context) []lpdomain.Affiliate
}

type LeadspediaService struct {
	Client leadspediaclient.Client
	cache  repository.CacheRepository
	ttl    time.Duration
}

func New(client leadspediaclient.Client, cache repository.CacheRepository, ttl time.Duration) LeadspediaIntegrator {
	return &LeadspediaService{
		Client: client,
		cache:  cache,
		ttl:    ttl,
	}
}

// FetchLeadsCached busca leads/getAll.do com cache das linhas brutas. Só grava quando há leads.
func (s *LeadspediaService) FetchLeadsCached(ctx context.Context, query lpdomain.LeadQuery) ([]lpdomain.LeadDisposition, error) {
	key, err := repository.StableKey(query.KeyMaterial())
	if err != nil {
		return nil, err
	}

	var rows []map[string]any
	hit, err := repository.GetJSON(ctx, s.cache, key, s.ttl, &rows)
	if err != nil {
		logrus.WithError(err).Warn("leadspedia: falha ao ler cache de leads")
	}
	if hit {
		return lpdomain.ParseDispositions(rows, lpdomain.SourceDefault), nil
	}

	rows, err = s.Client.GetLeads(ctx, query)
	if err != nil {
		return nil, err
	}

	if len(rows) > 0 {
		if err := repository.SetJSON(ctx, s.cache, key, rows); err != nil {
			logrus.WithError(err).Warn("leadspedia: falha ao gravar cache de leads")
		}
	}

	logrus.WithFields(logrus.Fields{
		"lp_leads": len(rows),
		"since":    query.Since.Format(time.DateOnly),
		"until":    query.Until.Format(time.DateOnly),
	}).Debug("leadspedia: leads buscados na API")

	return lpdomain.ParseDispositions(rows, lpdomain.SourceDefault), nil
}

// FetchLeads busca leads/getAll.do sem cache, com a regra de status escolhida
func (s *LeadspediaService) FetchLeads(ctx context.Context, query lpdomain.LeadQuery, source lpdomain.Source) ([]lpdomain.LeadDisposition, error) {
	rows, err := s.Client.GetLeads(ctx, query)
	if err != nil {
		return nil, err
	}
	return lpdomain.ParseDispositions(rows, source), nil
}

// FetchSoldLeads busca leads/getSold.do. As linhas são interpretadas pela regra padrão,
// que respeita o campo status quando presente.
func (s *LeadspediaService) FetchSoldLeads(ctx context.Context, query lpdomain.LeadQuery) ([]lpdomain.LeadDisposition, error) {
	rows, err := s.Client.GetSoldLeads(ctx, query)
	if err != nil {
		return nil, err
	}
	return lpdomain.ParseDispositions(rows, lpdomain.SourceDefault), nil
}

func (s *LeadspediaService) FetchReturns(ctx context.Context, query lpdomain.ReturnQuery) ([]lpdomain.LeadDisposition, error) {
	rows, err := s.Client.GetReturns(ctx, query)
	if err != nil {
		return nil, err
	}
	return lpdomain.ParseDispositions(rows, lpdomain.SourceDefault), nil
}

// cachedList lê a lista do cache ou chama fetch; erros da API são registrados e viram lista vazia
func cachedList[T any](ctx context.Context, s *LeadspediaService, name string, ttl time.Duration, fetch func(context.Context) ([]T, error)) []T {
	key, err := repository.StableKey(name)
	if err != nil {
		logrus.WithError(err).Warn("leadspedia: falha ao gerar chave de cache")
	}

	var items []T
	if key != "" {
		hit, err := repository.GetJSON(ctx, s.cache, key, ttl, &items)
		if err != nil {
			logrus.WithError(err).WithField("lp_resource", name).Warn("leadspedia: falha ao ler cache")
		}
		if hit {
			return items
		}
	}

	items, err = fetch(ctx)
	if err != nil {
		logrus.WithError(err).WithField("lp_resource", name).Error("leadspedia: falha ao buscar catálogo")
		return []T{}
	}

	if len(items) > 0 && key != "" {
		if err := repository.SetJSON(ctx, s.cache, key, items); err != nil {
			logrus.WithError(err).WithField("lp_resource", name).Warn("leadspedia: falha ao gravar cache")
		}
	}
	return items
}

func (s *LeadspediaService) Advertisers(ctx context.Context) []lpdomain.Advertiser {
	return cachedList(ctx, s, "leadspedia_advertisers", advertisersTTL, s.Client.GetAdvertisers)
}

func (s *LeadspediaService) Contracts(ctx context.Context) []lpdomain.Contract {
	return cachedList(ctx, s, "leadspedia_contracts", contractsTTL, s.Client.GetContracts)
}

func (s *LeadspediaService) Verticals(ctx context.Context) []lpdomain.Vertical {
	return cachedList(ctx, s, "leadspedia_verticals", verticalsTTL, s.Client.GetVerticals)
}

// Affiliates não usa cache
func (s *LeadspediaService) Affiliates(ctx context.Context) []lpdomain.Affiliate {
	affiliates, err := s.Client.GetAffiliates(ctx)
	if err != nil {
		logrus.WithError(err).Error("leadspedia: falha ao buscar afiliados")
		return []lpdomain.Affiliate{}
	}
	return affiliates
}
