package exporting

import (
	"slices"
	"strconv"

	"github.com/vfg2006/lead-ads-dashboard/internal/domain"
)

const (
	InsightsCSVFileName = "meta_lead_ads_report.csv"
	CombinedCSVFileName = "meta_leadspedia_combined_report.csv"
)

// Table é o formato comum das exportações: cabeçalho e linhas já em texto
type Table struct {
	Header []string
	Rows   [][]string
}

// Values converte para a matriz enviada ao Google Sheets
func (t Table) Values() [][]any {
	values := make([][]any, 0, len(t.Rows)+1)
	values = append(values, toAny(t.Header))
	for _, r := range t.Rows {
		values = append(values, toAny(r))
	}
	return values
}

func toAny(cells []string) []any {
	out := make([]any, len(cells))
	for i, c := range cells {
		out[i] = c
	}
	return out
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func formatOptional(f *float64) string {
	if f == nil {
		return ""
	}
	return formatFloat(*f)
}

var (
	insightIDColumns        = []string{"campaign_id", "adset_id", "ad_id"}
	insightBreakdownColumns = []string{"age", "gender", "publisher_platform", "platform_position", "device_platform"}
	insightBaseColumns      = []string{"campaign_name", "adset_name", "ad_name", "spend", "leads", "cpl", "impressions", "clicks", "ctr", "cpc", "frequency", "reach"}
)

func insightCell(r domain.InsightRow, column string) string {
	switch column {
	case "campaign_id":
		return r.CampaignID
	case "adset_id":
		return r.AdsetID
	case "ad_id":
		return r.AdID
	case "campaign_name":
		return r.CampaignName
	case "adset_name":
		return r.AdsetName
	case "ad_name":
		return r.AdName
	case "spend":
		return formatFloat(r.Spend)
	case "leads":
		return strconv.Itoa(r.Leads)
	case "cpl":
		return formatOptional(r.CPL)
	case "impressions":
		return strconv.Itoa(r.Impressions)
	case "clicks":
		return strconv.Itoa(r.Clicks)
	case "ctr":
		return formatFloat(r.CTR)
	case "cpc":
		return formatFloat(r.CPC)
	case "frequency":
		return formatFloat(r.Frequency)
	case "reach":
		return strconv.Itoa(r.Reach)
	}
	return r.Breakdown(column)
}

// InsightTable monta as colunas ids + breakdowns presentes + métricas.
// Um breakdown entra quando ao menos uma linha tem valor.
func InsightTable(rows []domain.InsightRow) Table {
	header := slices.Clone(insightIDColumns)
	for _, c := range insightBreakdownColumns {
		for _, r := range rows {
			if r.Breakdown(c) != "" {
				header = append(header, c)
				break
			}
		}
	}
	header = append(header, insightBaseColumns...)

	t := Table{Header: header, Rows: make([][]string, 0, len(rows))}
	for _, r := range rows {
		line := make([]string, len(header))
		for i, c := range header {
			line[i] = insightCell(r, c)
		}
		t.Rows = append(t.Rows, line)
	}
	return t
}

var matchedColumns = []string{
	"campaign_id", "campaign_name", "adset_id", "adset_name", "ad_id", "ad_name",
	"spend", "meta_leads", "impressions", "clicks", "cpl",
	"lp_total_leads", "lp_sold_leads", "lp_rejected_leads", "lp_pending_leads",
	"revenue", "payout", "net_revenue", "sell_through_rate", "rejection_rate",
	"avg_sale_price", "roi", "profit", "profit_per_lead", "epc", "epl", "break_even_cpl",
}

func matchedLine(r domain.MatchedRow) []string {
	return []string{
		r.CampaignID, r.CampaignName, r.AdsetID, r.AdsetName, r.AdID, r.AdName,
		formatFloat(r.Spend), strconv.Itoa(r.MetaLeads), strconv.Itoa(r.Impressions), strconv.Itoa(r.Clicks), formatFloat(r.CPL),
		strconv.Itoa(r.LPTotalLeads), strconv.Itoa(r.LPSoldLeads), strconv.Itoa(r.LPRejectedLeads), strconv.Itoa(r.LPPendingLeads),
		formatFloat(r.Revenue), formatFloat(r.Payout), formatFloat(r.NetRevenue), formatFloat(r.SellThroughRate), formatFloat(r.RejectionRate),
		formatFloat(r.AvgSalePrice), formatFloat(r.ROI), formatFloat(r.Profit), formatFloat(r.ProfitPerLead), formatFloat(r.EPC), formatFloat(r.EPL), formatFloat(r.BreakEvenCPL),
	}
}

// MatchedTable é o relatório combinado Meta + Leadspedia
func MatchedTable(rows []domain.MatchedRow) Table {
	t := Table{Header: slices.Clone(matchedColumns), Rows: make([][]string, 0, len(rows))}
	for _, r := range rows {
		t.Rows = append(t.Rows, matchedLine(r))
	}
	return t
}
