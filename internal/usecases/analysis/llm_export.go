package analysis

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/vfg2006/lead-ads-dashboard/pkg/utils"
)

const LLMExportFileName = "meta_ads_analysis.md"

type LLMExportOptions struct {
	Since           time.Time
	Until           time.Time
	Thresholds      Thresholds
	MinSpend        float64
	TopN            int
	BottomN         int
	IncludeFullData bool
}

func DefaultLLMExportOptions(since, until time.Time) LLMExportOptions {
	return LLMExportOptions{
		Since:           since,
		Until:           until,
		Thresholds:      DefaultThresholds(),
		MinSpend:        250,
		TopN:            5,
		BottomN:         5,
		IncludeFullData: true,
	}
}

var (
	rankingColumns = []string{"ad_name", "campaign_name", "spend", "leads", "cpl", "confidence_emoji", "action_display"}
	fullColumns    = []string{"ad_name", "campaign_name", "adset_name", "spend", "leads", "cpl", "confidence_emoji", "action_display", "leads_needed", "spend_needed"}
)

func cell(r ScoredRow, column string) string {
	switch column {
	case "ad_name":
		return r.AdName
	case "campaign_name":
		return r.CampaignName
	case "adset_name":
		return r.AdsetName
	case "spend":
		return utils.FormatCurrency(r.Spend)
	case "leads":
		return utils.FormatInt(r.Leads)
	case "cpl":
		return utils.FormatOptionalCurrency(r.CPL)
	case "confidence_emoji":
		return r.ConfidenceEmoji
	case "action_display":
		return r.ActionDisplay
	case "leads_needed":
		return utils.FormatInt(r.LeadsNeeded)
	case "spend_needed":
		return utils.FormatOptionalCurrency(r.SpendNeeded)
	}
	return "N/A"
}

func markdownTable(rows []ScoredRow, columns []string) string {
	if len(rows) == 0 {
		return "*No data*"
	}

	separators := make([]string, len(columns))
	for i := range separators {
		separators[i] = "---"
	}

	lines := []string{
		"| " + strings.Join(columns, " | ") + " |",
		"| " + strings.Join(separators, " | ") + " |",
	}
	for _, r := range rows {
		values := make([]string, len(columns))
		for i, c := range columns {
			values[i] = cell(r, c)
		}
		lines = append(lines, "| "+strings.Join(values, " | ")+" |")
	}
	return strings.Join(lines, "\n")
}

// sortByCPL ordena uma cópia por CPL (sem CPL por último)
func sortByCPL(rows []ScoredRow, descending bool) []ScoredRow {
	sorted := make([]ScoredRow, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i].CPL, sorted[j].CPL
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		case descending:
			return *a > *b
		}
		return *a < *b
	})
	return sorted
}

func firstN(rows []ScoredRow, n int) []ScoredRow {
	if n < len(rows) {
		return rows[:n]
	}
	return rows
}

// LLMExport gera um markdown pronto para colar em um assistente de IA, com ranking por CPL,
// indicadores de confiança e o pedido de análise
func LLMExport(rows []ScoredRow, opts LLMExportOptions) string {
	if len(rows) == 0 {
		return "## Meta Ads CPL Analysis Data\n\n*No data available for the selected date range.*"
	}

	summary := Summarize(rows)

	var rankable []ScoredRow
	for _, r := range rows {
		if r.Spend >= opts.MinSpend && r.CPL != nil {
			rankable = append(rankable, r)
		}
	}
	top := firstN(sortByCPL(rankable, false), opts.TopN)
	bottom := firstN(sortByCPL(rankable, true), opts.BottomN)

	overall := "N/A"
	if summary.TotalLeads > 0 {
		overall = utils.FormatCurrency(summary.TotalSpend / float64(summary.TotalLeads))
	}

	s := []string{
		"## Meta Ads CPL Analysis Data",
		"",
		fmt.Sprintf("**Date Range:** %s to %s", opts.Since.Format(utils.DateLayout), opts.Until.Format(utils.DateLayout)),
		fmt.Sprintf("**Total Spend:** %s", utils.FormatCurrency(summary.TotalSpend)),
		fmt.Sprintf("**Total Leads:** %s", utils.FormatInt(summary.TotalLeads)),
		fmt.Sprintf("**Overall CPL:** %s", overall),
		fmt.Sprintf("**Total Ads:** %d", summary.TotalAds),
		"",
		"### Data Reliability Summary",
		fmt.Sprintf("- 🟢 High confidence (reliable): %d ads", summary.Confidence[ConfidenceHigh]),
		fmt.Sprintf("- 🟡 Medium confidence (directional): %d ads", summary.Confidence[ConfidenceMedium]),
		fmt.Sprintf("- 🔴 Low confidence (insufficient data): %d ads", summary.Confidence[ConfidenceLow]),
		"",
		fmt.Sprintf("### Top %d Performers (by CPL, min $%.0f spend)", opts.TopN, opts.MinSpend),
		markdownTable(top, rankingColumns),
		"",
		fmt.Sprintf("### Bottom %d Performers (by CPL, min $%.0f spend)", opts.BottomN, opts.MinSpend),
		markdownTable(bottom, rankingColumns),
		"",
	}

	if opts.IncludeFullData {
		s = append(s,
			"### Full Data",
			"<details>",
			"<summary>Click to expand full data table</summary>",
			"",
			markdownTable(sortByCPL(rows, false), fullColumns),
			"",
			"</details>",
			"",
		)
	}

	t := opts.Thresholds
	s = append(s,
		"---",
		"",
		"## Analysis Request",
		"",
		"Please analyze this Meta Ads data and help me identify:",
		"",
		"1. **Creative patterns**: What do the top-performing ads have in common?",
		"   Look at naming conventions that might indicate creative type, hook, or angle.",
		"",
		"2. **Statistical concerns**: Which results are statistically reliable vs. noise?",
		"   Flag any conclusions that need more data to confirm.",
		"   Reference the confidence indicators (🟢 = reliable, 🟡 = directional, 🔴 = insufficient).",
		"",
		"3. **Optimization recommendations**: Based on reliable data only, what should I:",
		"   - **Scale** (increase budget)",
		"   - **Kill** (pause immediately)",
		"   - **Test further** (needs more data before deciding)",
		"",
		"4. **Hypotheses to test**: What creative variations should I test next based on patterns you see?",
		"",
		"### Important Context",
		"",
		fmt.Sprintf("- Target CPL: $%.0f or less (up to $%.0f is acceptable)", t.CPLTarget, t.CPLAcceptable),
		"- I'm running both Advantage+ and manual targeting campaigns",
		"- Sample sizes are small (~$250-500 per ad, ~25 leads)",
		"- **Focus on creative-level insights, not targeting recommendations**",
		"- Only make recommendations based on 🟢 high-confidence data",
		"",
	)

	return strings.Join(s, "\n")
}
