package meta

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/lead-ads-dashboard/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/lead-ads-dashboard/internal/domain"
)

// CountLeads soma os valores das ações cujo action_type é um tipo de lead.
// Totais <= 0 viram 0; o resultado é truncado.
func CountLeads(actions []metadomain.Action, leadTypes []string) int {
	types := make(map[string]struct{}, len(leadTypes))
	for _, t := range leadTypes {
		types[t] = struct{}{}
	}

	total := 0.0
	for _, a := range actions {
		if _, ok := types[a.ActionType]; !ok {
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(a.Value), 64)
		if err != nil {
			continue
		}
		total += v
	}

	if total <= 0 {
		return 0
	}
	return int(math.Floor(total))
}

// ComputeCPL retorna nil sem leads ou com gasto inválido
func ComputeCPL(spend string, leads int) *float64 {
	if leads <= 0 {
		return nil
	}
	s, err := strconv.ParseFloat(strings.TrimSpace(spend), 64)
	if err != nil {
		return nil
	}
	cpl := s / float64(leads)
	return &cpl
}

func parseFloat(field, value string, insight metadomain.Insight) float64 {
	if value == "" {
		return 0
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"meta_field": field,
			"meta_value": value,
			"meta_ad_id": insight.AdID,
		}).Warn("meta: valor numérico inválido, usando 0")
		return 0
	}
	return f
}

func parseInt(field, value string, insight metadomain.Insight) int {
	return int(parseFloat(field, value, insight))
}

// FactoryInsightRows converte as linhas do Graph API em InsightRow
func FactoryInsightRows(insights []metadomain.Insight, leadTypes []string) []domain.InsightRow {
	rows := make([]domain.InsightRow, 0, len(insights))
	for _, in := range insights {
		leads := CountLeads(in.Actions, leadTypes)
		rows = append(rows, domain.InsightRow{
			CampaignID:        in.CampaignID,
			AdsetID:           in.AdsetID,
			AdID:              in.AdID,
			CampaignName:      in.CampaignName,
			AdsetName:         in.AdsetName,
			AdName:            in.AdName,
			Age:               in.Age,
			Gender:            in.Gender,
			PublisherPlatform: in.PublisherPlatform,
			PlatformPosition:  in.PlatformPosition,
			DevicePlatform:    in.DevicePlatform,
			Spend:             parseFloat("spend", in.Spend, in),
			Leads:             leads,
			CPL:               ComputeCPL(in.Spend, leads),
			Impressions:       parseInt("impressions", in.Impressions, in),
			Clicks:            parseInt("clicks", in.Clicks, in),
			CTR:               parseFloat("ctr", in.CTR, in),
			CPC:               parseFloat("cpc", in.CPC, in),
			Frequency:         parseFloat("frequency", in.Frequency, in),
			Reach:             parseInt("reach", in.Reach, in),
		})
	}
	return rows
}

// SummarizeActionTypes soma os valores por action_type, do maior para o menor
func SummarizeActionTypes(insights []metadomain.Insight) []domain.ActionTypeTotal {
	totals := make(map[string]float64)
	for _, in := range insights {
		for _, a := range in.Actions {
			if a.ActionType == "" {
				continue
			}
			v, err := strconv.ParseFloat(strings.TrimSpace(a.Value), 64)
			if err != nil {
				continue
			}
			totals[a.ActionType] += v
		}
	}

	summary := make([]domain.ActionTypeTotal, 0, len(totals))
	for t, v := range totals {
		summary = append(summary, domain.ActionTypeTotal{ActionType: t, TotalValue: v})
	}
	sort.Slice(summary, func(i, j int) bool {
		if summary[i].TotalValue != summary[j].TotalValue {
			return summary[i].TotalValue > summary[j].TotalValue
		}
		return summary[i].ActionType < summary[j].ActionType
	})
	return summary
}
