package analysis

import (
	"math"

	"github.com/vfg2006/lead-ads-dashboard/internal/domain"
)

type ConfidenceLevel string

const (
	ConfidenceHigh   ConfidenceLevel = "high"
	ConfidenceMedium ConfidenceLevel = "medium"
	ConfidenceLow    ConfidenceLevel = "low"
)

func (c ConfidenceLevel) Emoji() string {
	switch c {
	case ConfidenceHigh:
		return "🟢"
	case ConfidenceMedium:
		return "🟡"
	case ConfidenceLow:
		return "🔴"
	}
	return "⚪"
}

func (c ConfidenceLevel) Label() string {
	switch c {
	case ConfidenceHigh:
		return "reliable"
	case ConfidenceMedium:
		return "directional"
	case ConfidenceLow:
		return "insufficient data"
	}
	return "unknown"
}

type Action string

const (
	ActionScale     Action = "scale"
	ActionMaintain  Action = "maintain"
	ActionKill      Action = "kill"
	ActionNeedsData Action = "needs_data"
)

func (a Action) Display() string {
	switch a {
	case ActionScale:
		return "SCALE ↑"
	case ActionMaintain:
		return "MAINTAIN →"
	case ActionKill:
		return "KILL ✕"
	case ActionNeedsData:
		return "NEEDS DATA"
	}
	return "UNKNOWN"
}

// ordem usada no ranking de criativos
func (a Action) order() int {
	switch a {
	case ActionScale:
		return 0
	case ActionMaintain:
		return 1
	case ActionKill:
		return 2
	}
	return 3
}

// DefaultTargetLeads é a regra prática de ~50 conversões para 95% de confiança
// de que o CPL real está a ±20% do observado
const DefaultTargetLeads = 50

type Thresholds struct {
	HighSpend     float64 `json:"high_spend" yaml:"high_spend"`
	HighLeads     int     `json:"high_leads" yaml:"high_leads"`
	MediumSpend   float64 `json:"medium_spend" yaml:"medium_spend"`
	MediumLeads   int     `json:"medium_leads" yaml:"medium_leads"`
	CPLTarget     float64 `json:"cpl_target" yaml:"cpl_target"`
	CPLAcceptable float64 `json:"cpl_acceptable" yaml:"cpl_acceptable"`
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		HighSpend:     500,
		HighLeads:     30,
		MediumSpend:   250,
		MediumLeads:   15,
		CPLTarget:     30,
		CPLAcceptable: 45,
	}
}

// Confidence exige gasto E leads acima do limite de cada nível
func Confidence(spend float64, leads int, t Thresholds) ConfidenceLevel {
	if spend >= t.HighSpend && leads >= t.HighLeads {
		return ConfidenceHigh
	}
	if spend >= t.MediumSpend && leads >= t.MediumLeads {
		return ConfidenceMedium
	}
	return ConfidenceLow
}

// Recommend só recomenda ação para dados de alta confiança com CPL
func Recommend(confidence ConfidenceLevel, cpl *float64, t Thresholds) Action {
	if confidence != ConfidenceHigh || cpl == nil {
		return ActionNeedsData
	}
	switch {
	case *cpl <= t.CPLTarget:
		return ActionScale
	case *cpl <= t.CPLAcceptable:
		return ActionMaintain
	}
	return ActionKill
}

type SampleSize struct {
	LeadsNeeded  int      `json:"leads_needed" yaml:"leads_needed"`
	SpendNeeded  *float64 `json:"spend_needed" yaml:"spend_needed"`
	ProgressPct  float64  `json:"progress_pct" yaml:"progress_pct"`
	TargetLeads  int      `json:"target_leads" yaml:"target_leads"`
	CurrentLeads int      `json:"current_leads" yaml:"current_leads"`
}

// RequiredSampleSize estima quantos leads (e quanto gasto, pelo CPL atual) faltam para a meta
func RequiredSampleSize(currentLeads, targetLeads int, cpl *float64) SampleSize {
	s := SampleSize{
		LeadsNeeded:  max(0, targetLeads-currentLeads),
		TargetLeads:  targetLeads,
		CurrentLeads: currentLeads,
	}
	if targetLeads > 0 {
		s.ProgressPct = math.Min(100, float64(currentLeads)/float64(targetLeads)*100)
	}
	if cpl != nil && *cpl > 0 && s.LeadsNeeded > 0 {
		spend := float64(s.LeadsNeeded) * *cpl
		s.SpendNeeded = &spend
	}
	return s
}

// ScoredRow é uma linha de insight com confiança, recomendação e amostra necessária
type ScoredRow struct {
	domain.InsightRow `yaml:",inline"`

	Confidence      ConfidenceLevel `json:"confidence" yaml:"confidence"`
	ConfidenceEmoji string          `json:"confidence_emoji" yaml:"confidence_emoji"`
	Action          Action          `json:"action" yaml:"action"`
	ActionDisplay   string          `json:"action_display" yaml:"action_display"`
	LeadsNeeded     int             `json:"leads_needed" yaml:"leads_needed"`
	SpendNeeded     *float64        `json:"spend_needed" yaml:"spend_needed"`
	ProgressPct     float64         `json:"progress_pct" yaml:"progress_pct"`
}

func AnnotateConfidence(rows []domain.InsightRow, t Thresholds, targetLeads int) []ScoredRow {
	out := make([]ScoredRow, 0, len(rows))
	for _, r := range rows {
		confidence := Confidence(r.Spend, r.Leads, t)
		action := Recommend(confidence, r.CPL, t)
		sample := RequiredSampleSize(r.Leads, targetLeads, r.CPL)

		out = append(out, ScoredRow{
			InsightRow:      r,
			Confidence:      confidence,
			ConfidenceEmoji: confidence.Emoji(),
			Action:          action,
			ActionDisplay:   action.Display(),
			LeadsNeeded:     sample.LeadsNeeded,
			SpendNeeded:     sample.SpendNeeded,
			ProgressPct:     sample.ProgressPct,
		})
	}
	return out
}
