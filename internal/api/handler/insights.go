package handler

import (
	"net/http"

	"github.com/vfg2006/lead-ads-dashboard/internal/usecases/insighting"
	"github.com/vfg2006/lead-ads-dashboard/pkg/log"
)

func GetInsights(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, err := parseFilters(r)
		if err != nil {
			writeBadRequest(w, r, err)
			return
		}

		resp, err := service.GetInsights(r.Context(), filters)
		if err != nil {
			writeServiceError(w, r, err, "insights: falha ao buscar insights do Meta")
			return
		}

		logger.WithFields(log.Fields{
			"since":      resp.Since,
			"until":      resp.Until,
			"breakdown":  resp.Breakdown,
			"total_rows": resp.TotalRows,
			"rows":       len(resp.Rows),
		}).Info("insights: linhas retornadas")

		writeJSON(w, r, http.StatusOK, resp)
	})
}

func GetActionTypes(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filters, err := parseFilters(r)
		if err != nil {
			writeBadRequest(w, r, err)
			return
		}

		totals, err := service.GetActionTypes(r.Context(), filters)
		if err != nil {
			writeServiceError(w, r, err, "insights: falha ao somar action types")
			return
		}

		writeJSON(w, r, http.StatusOK, totals)
	})
}

// statusFlags lê show_live e show_paused; sem parâmetros, mostra tudo
func statusFlags(r *http.Request) (bool, bool) {
	q := r.URL.Query()
	return parseBool(q, "show_live", true), parseBool(q, "show_paused", true)
}

func GetCampaigns(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		showLive, showPaused := statusFlags(r)

		campaigns, err := service.GetCampaigns(r.Context(), showLive, showPaused)
		if err != nil {
			writeServiceError(w, r, err, "objetos: falha ao listar campanhas")
			return
		}

		writeJSON(w, r, http.StatusOK, campaigns)
	})
}

func GetAdsets(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		showLive, showPaused := statusFlags(r)
		campaignIDs := parseList(r.URL.Query(), "campaign_ids")

		adsets, err := service.GetAdsets(r.Context(), campaignIDs, showLive, showPaused)
		if err != nil {
			writeServiceError(w, r, err, "objetos: falha ao listar conjuntos de anúncios")
			return
		}

		writeJSON(w, r, http.StatusOK, adsets)
	})
}

func GetAds(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		showLive, showPaused := statusFlags(r)
		adsetIDs := parseList(r.URL.Query(), "adset_ids")

		ads, err := service.GetAds(r.Context(), adsetIDs, showLive, showPaused)
		if err != nil {
			writeServiceError(w, r, err, "objetos: falha ao listar anúncios")
			return
		}

		writeJSON(w, r, http.StatusOK, ads)
	})
}

func GetCombined(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filters, err := parseFilters(r)
		if err != nil {
			writeBadRequest(w, r, err)
			return
		}

		view, err := service.GetCombined(r.Context(), filters)
		if err != nil {
			writeServiceError(w, r, err, "roi: falha ao cruzar Meta e Leadspedia")
			return
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"match_rate":    view.MatchRate,
			"meta_leads":    view.MetaLeadCount,
			"lp_leads":      view.LPLeadCount,
			"unmatched_cnt": len(view.UnmatchedMetaCampaigns),
		}).Info("roi: visão combinada calculada")

		writeJSON(w, r, http.StatusOK, view)
	})
}

// GetProblemAreas usa o mesmo min_spend do guardrail para decidir o que já pode ser julgado
func GetProblemAreas(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filters, err := parseFilters(r)
		if err != nil {
			writeBadRequest(w, r, err)
			return
		}

		areas, err := service.GetProblemAreas(r.Context(), filters, filters.GuardrailMinSpend)
		if err != nil {
			writeServiceError(w, r, err, "roi: falha ao listar áreas problemáticas")
			return
		}

		writeJSON(w, r, http.StatusOK, areas)
	})
}
