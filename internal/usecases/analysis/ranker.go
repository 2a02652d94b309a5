package analysis

import (
	"errors"
	"fmt"
	"sort"

	"github.com/vfg2006/lead-ads-dashboard/pkg/utils"
)

var ErrInvalidConfidenceFilter = errors.New("filtro de confiança inválido")

type ConfidenceFilter string

const (
	FilterAll          ConfidenceFilter = "all"
	FilterHigh         ConfidenceFilter = "high"
	FilterMediumOrHigh ConfidenceFilter = "medium+"
)

func ParseConfidenceFilter(value string) (ConfidenceFilter, error) {
	switch ConfidenceFilter(value) {
	case "", FilterAll:
		return FilterAll, nil
	case FilterHigh:
		return FilterHigh, nil
	case FilterMediumOrHigh, "medium":
		return FilterMediumOrHigh, nil
	}
	return "", fmt.Errorf("%w: %q (use all, high ou medium+)", ErrInvalidConfidenceFilter, value)
}

func FilterByConfidence(rows []ScoredRow, filter ConfidenceFilter) []ScoredRow {
	if filter == FilterAll || filter == "" {
		return rows
	}
	out := make([]ScoredRow, 0, len(rows))
	for _, r := range rows {
		if r.Confidence == ConfidenceHigh || (filter == FilterMediumOrHigh && r.Confidence == ConfidenceMedium) {
			out = append(out, r)
		}
	}
	return out
}

// RankCreatives ordena por ação (scale, maintain, kill, needs_data), depois CPL crescente
// (sem CPL por último) e gasto decrescente. Não altera o slice recebido.
func RankCreatives(rows []ScoredRow) []ScoredRow {
	ranked := make([]ScoredRow, len(rows))
	copy(ranked, rows)

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.Action.order() != b.Action.order() {
			return a.Action.order() < b.Action.order()
		}
		switch {
		case a.CPL == nil && b.CPL != nil:
			return false
		case a.CPL != nil && b.CPL == nil:
			return true
		case a.CPL != nil && b.CPL != nil && *a.CPL != *b.CPL:
			return *a.CPL < *b.CPL
		}
		return a.Spend > b.Spend
	})
	return ranked
}

type Summary struct {
	TotalSpend     float64                 `json:"total_spend" yaml:"total_spend"`
	TotalLeads     int                     `json:"total_leads" yaml:"total_leads"`
	OverallCPL     *float64                `json:"overall_cpl" yaml:"overall_cpl"`
	TotalAds       int                     `json:"total_ads" yaml:"total_ads"`
	HighConfidence int                     `json:"high_confidence" yaml:"high_confidence"`
	Actions        map[Action]int          `json:"actions" yaml:"actions"`
	Confidence     map[ConfidenceLevel]int `json:"confidence" yaml:"confidence"`
}

func Summarize(rows []ScoredRow) Summary {
	s := Summary{
		TotalAds: len(rows),
		Actions: map[Action]int{
			ActionScale:     0,
			ActionMaintain:  0,
			ActionKill:      0,
			ActionNeedsData: 0,
		},
		Confidence: map[ConfidenceLevel]int{
			ConfidenceHigh:   0,
			ConfidenceMedium: 0,
			ConfidenceLow:    0,
		},
	}
	for _, r := range rows {
		s.TotalSpend += r.Spend
		s.TotalLeads += r.Leads
		s.Actions[r.Action]++
		s.Confidence[r.Confidence]++
	}
	s.HighConfidence = s.Confidence[ConfidenceHigh]
	s.TotalSpend = utils.RoundWithTwoDecimalPlace(s.TotalSpend)
	if s.TotalLeads > 0 {
		cpl := utils.RoundWithTwoDecimalPlace(s.TotalSpend / float64(s.TotalLeads))
		s.OverallCPL = &cpl
	}
	return s
}

// NeedsData são os anúncios ainda sem amostra suficiente, na ordem do ranking
func NeedsData(ranked []ScoredRow) []ScoredRow {
	out := []ScoredRow{}
	for _, r := range ranked {
		if r.Action == ActionNeedsData {
			out = append(out, r)
		}
	}
	return out
}
