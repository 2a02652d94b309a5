package handler

import (
	"net/http"
	"net/url"

	"github.com/vfg2006/lead-ads-dashboard/internal/domain"
	"github.com/vfg2006/lead-ads-dashboard/internal/usecases/analysis"
	"github.com/vfg2006/lead-ads-dashboard/pkg/log"
	"github.com/vfg2006/lead-ads-dashboard/pkg/utils"
)

type LLMExportResponse struct {
	Since    string `json:"since"`
	Until    string `json:"until"`
	Markdown string `json:"markdown"`
}

func parseThresholds(q url.Values) (analysis.Thresholds, error) {
	t := analysis.DefaultThresholds()

	floats := map[string]*float64{
		"high_spend":     &t.HighSpend,
		"medium_spend":   &t.MediumSpend,
		"cpl_target":     &t.CPLTarget,
		"cpl_acceptable": &t.CPLAcceptable,
	}
	for key, target := range floats {
		v, err := parseFloat(q, key)
		if err != nil {
			return t, err
		}
		if v != nil {
			*target = *v
		}
	}

	var err error
	if t.HighLeads, err = parseInt(q, "high_leads", t.HighLeads); err != nil {
		return t, err
	}
	if t.MediumLeads, err = parseInt(q, "medium_leads", t.MediumLeads); err != nil {
		return t, err
	}
	return t, nil
}

func parseAnalysisOptions(q url.Values) (analysis.Options, error) {
	opts := analysis.DefaultOptions()

	var err error
	if opts.Thresholds, err = parseThresholds(q); err != nil {
		return opts, err
	}
	if opts.TargetLeads, err = parseInt(q, "target_leads", analysis.DefaultTargetLeads); err != nil {
		return opts, err
	}
	opts.Filter = analysis.ConfidenceFilter(q.Get("confidence"))
	return opts, nil
}

// parseLLMOptions usa llm_min_spend porque min_spend já é o limite do guardrail
func parseLLMOptions(q url.Values, filters *domain.InsightFilters) (analysis.LLMExportOptions, error) {
	opts := analysis.DefaultLLMExportOptions(filters.Since, filters.Until)

	var err error
	if opts.Thresholds, err = parseThresholds(q); err != nil {
		return opts, err
	}
	minSpend, err := parseFloat(q, "llm_min_spend")
	if err != nil {
		return opts, err
	}
	if minSpend != nil {
		opts.MinSpend = *minSpend
	}
	if opts.TopN, err = parseInt(q, "top_n", opts.TopN); err != nil {
		return opts, err
	}
	if opts.BottomN, err = parseInt(q, "bottom_n", opts.BottomN); err != nil {
		return opts, err
	}
	opts.IncludeFullData = parseBool(q, "full_data", opts.IncludeFullData)
	return opts, nil
}

func Analyze(service analysis.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filters, err := parseFilters(r)
		if err != nil {
			writeBadRequest(w, r, err)
			return
		}

		opts, err := parseAnalysisOptions(r.URL.Query())
		if err != nil {
			writeBadRequest(w, r, err)
			return
		}
		if opts.Filter, err = analysis.ParseConfidenceFilter(string(opts.Filter)); err != nil {
			writeServiceError(w, r, err, "análise: filtro de confiança inválido")
			return
		}

		report, err := service.Analyze(r.Context(), filters, opts)
		if err != nil {
			writeServiceError(w, r, err, "análise: falha ao pontuar anúncios")
			return
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"ranked":     len(report.Ranked),
			"needs_data": len(report.NeedsData),
		}).Info("análise: ranking calculado")

		writeJSON(w, r, http.StatusOK, report)
	})
}

func AnalysisLLMExport(service analysis.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filters, err := parseFilters(r)
		if err != nil {
			writeBadRequest(w, r, err)
			return
		}

		opts, err := parseLLMOptions(r.URL.Query(), filters)
		if err != nil {
			writeBadRequest(w, r, err)
			return
		}

		markdown, err := service.LLMExport(r.Context(), filters, opts)
		if err != nil {
			writeServiceError(w, r, err, "análise: falha ao gerar o markdown")
			return
		}

		writeJSON(w, r, http.StatusOK, LLMExportResponse{
			Since:    filters.Since.Format(utils.DateLayout),
			Until:    filters.Until.Format(utils.DateLayout),
			Markdown: markdown,
		})
	})
}
