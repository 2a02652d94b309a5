package analysis

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/lead-ads-dashboard/internal/domain"
	"github.com/vfg2006/lead-ads-dashboard/internal/usecases/insighting"
)

type Analyzer interface {
	// Analyze pontua a confiança de cada anúncio do período e monta o ranking de criativos
	Analyze(ctx context.Context, filters *domain.InsightFilters, opts Options) (*Report, error)

	// LLMExport gera o markdown de análise para o período
	LLMExport(ctx context.Context, filters *domain.InsightFilters, opts LLMExportOptions) (string, error)
}

type Options struct {
	Thresholds  Thresholds       `json:"thresholds" yaml:"thresholds"`
	TargetLeads int              `json:"target_leads" yaml:"target_leads"`
	Filter      ConfidenceFilter `json:"filter" yaml:"filter"`
}

func DefaultOptions() Options {
	return Options{
		Thresholds:  DefaultThresholds(),
		TargetLeads: DefaultTargetLeads,
		Filter:      FilterAll,
	}
}

type Report struct {
	Since     string      `json:"since" yaml:"since"`
	Until     string      `json:"until" yaml:"until"`
	Options   Options     `json:"options" yaml:"options"`
	Summary   Summary     `json:"summary" yaml:"summary"`
	Ranked    []ScoredRow `json:"ranked" yaml:"ranked"`
	NeedsData []ScoredRow `json:"needs_data" yaml:"needs_data"`
}

type Service struct {
	insights insighting.Insighter
}

func NewService(insights insighting.Insighter) *Service {
	return &Service{insights: insights}
}

// rows busca as linhas no nível de anúncio, sem breakdown
func (s *Service) rows(ctx context.Context, filters *domain.InsightFilters) (*domain.InsightsResponse, error) {
	f := domain.InsightFilters{}
	if filters != nil {
		f = *filters
	}
	f.Breakdown = "none"

	return s.insights.GetInsights(ctx, &f)
}

func (s *Service) Analyze(ctx context.Context, filters *domain.InsightFilters, opts Options) (*Report, error) {
	if opts.TargetLeads <= 0 {
		opts.TargetLeads = DefaultTargetLeads
	}

	resp, err := s.rows(ctx, filters)
	if err != nil {
		return nil, err
	}

	scored := FilterByConfidence(AnnotateConfidence(resp.Rows, opts.Thresholds, opts.TargetLeads), opts.Filter)
	ranked := RankCreatives(scored)

	logrus.WithFields(logrus.Fields{
		"ads":    len(ranked),
		"filter": opts.Filter,
	}).Debug("análise: ranking de criativos calculado")

	return &Report{
		Since:     resp.Since,
		Until:     resp.Until,
		Options:   opts,
		Summary:   Summarize(ranked),
		Ranked:    ranked,
		NeedsData: NeedsData(ranked),
	}, nil
}

func (s *Service) LLMExport(ctx context.Context, filters *domain.InsightFilters, opts LLMExportOptions) (string, error) {
	resp, err := s.rows(ctx, filters)
	if err != nil {
		return "", err
	}
	if filters != nil {
		opts.Since, opts.Until = filters.Since, filters.Until
	}
	return LLMExport(AnnotateConfidence(resp.Rows, opts.Thresholds, DefaultTargetLeads), opts), nil
}
