package reporting

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/lead-ads-dashboard/infrastructure/integrator/leadspedia"
	lpdomain "github.com/vfg2006/lead-ads-dashboard/infrastructure/integrator/leadspedia/domain"
	"github.com/vfg2006/lead-ads-dashboard/infrastructure/repository"
	"github.com/vfg2006/lead-ads-dashboard/internal/config"
)

const (
	SourceSold = "sold"
	SourceAll  = "all"

	StatusFilterAll = "all"
)

var (
	ErrLeadspediaDisabled = errors.New("LEADSPEDIA_API_KEY e LEADSPEDIA_API_SECRET precisam estar configurados")
	ErrNoAffiliate        = errors.New("nenhum affiliate ID configurado; defina LEADSPEDIA_AFFILIATE_ID ou use o mapeamento de campanhas")
	ErrInvalidPeriod      = errors.New("período inválido")
	ErrInvalidSource      = errors.New("origem de leads desconhecida")
)

// LeadsQuery são os filtros das telas do Leadspedia
type LeadsQuery struct {
	Since      time.Time
	Until      time.Time
	Source     string
	CampaignID string
	VerticalID string
	Status     string
}

// Overview resume as vendas do período, como nos cartões do painel
type Overview struct {
	AffiliateID  string             `json:"affiliate_id" yaml:"affiliate_id"`
	Stats        lpdomain.LeadStats `json:"stats" yaml:"stats"`
	WithMetaData int                `json:"with_meta_attribution" yaml:"with_meta_attribution"`
	Buyers       int                `json:"buyers" yaml:"buyers"`
}

type LeadReporter interface {
	Enabled() bool
	// AffiliateID usa LEADSPEDIA_AFFILIATE_ID e, na falta dele, o do mapeamento de campanhas
	AffiliateID() string

	Leads(ctx context.Context, query LeadsQuery) ([]lpdomain.LeadRecord, error)
	Log(ctx context.Context, query LeadsQuery) ([]lpdomain.LeadLogEntry, error)
	Stats(ctx context.Context, query LeadsQuery) (*Overview, error)
	Buyers(ctx context.Context, query LeadsQuery) ([]lpdomain.BuyerPerformance, error)

	Contracts(ctx context.Context, status string) ([]lpdomain.Contract, error)
	Advertisers(ctx context.Context, status string) ([]lpdomain.Advertiser, error)
	Verticals(ctx context.Context) ([]lpdomain.Vertical, error)
}

type Service struct {
	cfg        *config.Config
	leadspedia leadspedia.LeadspediaIntegrator
	mappings   repository.CampaignMappingRepository
}

func NewService(cfg *config.Config, lp leadspedia.LeadspediaIntegrator, mappings repository.CampaignMappingRepository) *Service {
	return &Service{
		cfg:        cfg,
		leadspedia: lp,
		mappings:   mappings,
	}
}

func (s *Service) Enabled() bool {
	return s.cfg.LeadspediaEnabled()
}

func (s *Service) AffiliateID() string {
	if s.cfg.Leadspedia.AffiliateID != "" {
		return s.cfg.Leadspedia.AffiliateID
	}
	if s.mappings == nil {
		return ""
	}
	return s.mappings.Load().AffiliateID
}

func (s *Service) dispositions(ctx context.Context, query LeadsQuery) ([]lpdomain.LeadDisposition, error) {
	if !s.Enabled() {
		return nil, ErrLeadspediaDisabled
	}
	if query.Since.IsZero() || query.Until.IsZero() || query.Since.After(query.Until) {
		return nil, fmt.Errorf("%w: informe since <= until", ErrInvalidPeriod)
	}

	affiliateID := s.AffiliateID()
	if affiliateID == "" {
		return nil, ErrNoAffiliate
	}

	lpQuery := lpdomain.LeadQuery{
		Since:       query.Since,
		Until:       query.Until,
		AffiliateID: affiliateID,
		CampaignID:  query.CampaignID,
		VerticalID:  query.VerticalID,
		Status:      query.Status,
	}

	switch query.Source {
	case "", SourceSold:
		return s.leadspedia.FetchSoldLeads(ctx, lpQuery)
	case SourceAll:
		return s.leadspedia.FetchLeadsCached(ctx, lpQuery)
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidSource, query.Source)
	}
}

func (s *Service) Leads(ctx context.Context, query LeadsQuery) ([]lpdomain.LeadRecord, error) {
	dispositions, err := s.dispositions(ctx, query)
	if err != nil {
		return nil, err
	}
	return lpdomain.LeadRecords(dispositions), nil
}

func (s *Service) Log(ctx context.Context, query LeadsQuery) ([]lpdomain.LeadLogEntry, error) {
	dispositions, err := s.dispositions(ctx, query)
	if err != nil {
		return nil, err
	}
	return lpdomain.LeadLog(dispositions), nil
}

func (s *Service) Stats(ctx context.Context, query LeadsQuery) (*Overview, error) {
	dispositions, err := s.dispositions(ctx, query)
	if err != nil {
		return nil, err
	}

	overview := &Overview{
		AffiliateID: s.AffiliateID(),
		Stats:       lpdomain.AggregateLeadStats(dispositions),
		Buyers:      len(lpdomain.AggregateByBuyer(dispositions)),
	}
	for _, d := range dispositions {
		if d.HasMetaAttribution() {
			overview.WithMetaData++
		}
	}

	logrus.WithFields(logrus.Fields{
		"lp_leads": overview.Stats.TotalLeads,
		"lp_sold":  overview.Stats.SoldLeads,
	}).Debug("leadspedia: resumo calculado")

	return overview, nil
}

func (s *Service) Buyers(ctx context.Context, query LeadsQuery) ([]lpdomain.BuyerPerformance, error) {
	dispositions, err := s.dispositions(ctx, query)
	if err != nil {
		return nil, err
	}
	return lpdomain.AggregateByBuyer(dispositions), nil
}

// byStatus filtra pelo status sem diferenciar maiúsculas; "" e "all" mantêm tudo
func byStatus[T any](items []T, status string, statusOf func(T) string) []T {
	status = strings.ToLower(strings.TrimSpace(status))
	if status == "" || status == StatusFilterAll {
		return items
	}
	return slices.DeleteFunc(slices.Clone(items), func(item T) bool {
		return strings.ToLower(statusOf(item)) != status
	})
}

func (s *Service) Contracts(ctx context.Context, status string) ([]lpdomain.Contract, error) {
	if !s.Enabled() {
		return nil, ErrLeadspediaDisabled
	}
	return byStatus(s.leadspedia.Contracts(ctx), status, func(c lpdomain.Contract) string { return c.Status }), nil
}

func (s *Service) Advertisers(ctx context.Context, status string) ([]lpdomain.Advertiser, error) {
	if !s.Enabled() {
		return nil, ErrLeadspediaDisabled
	}
	return byStatus(s.leadspedia.Advertisers(ctx), status, func(a lpdomain.Advertiser) string { return a.Status }), nil
}

func (s *Service) Verticals(ctx context.Context) ([]lpdomain.Vertical, error) {
	if !s.Enabled() {
		return nil, ErrLeadspediaDisabled
	}
	return s.leadspedia.Verticals(ctx), nil
}
