package handler

import (
	"net/http"

	"github.com/vfg2006/lead-ads-dashboard/internal/usecases/reporting"
	"github.com/vfg2006/lead-ads-dashboard/pkg/log"
)

type leadsCall func(r *http.Request, query reporting.LeadsQuery) (any, int, error)

// leadsHandler concentra a leitura dos filtros e o log das telas de leads
func leadsHandler(action string, call leadsCall) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query, err := parseLeadsQuery(r)
		if err != nil {
			writeBadRequest(w, r, err)
			return
		}

		body, count, err := call(r, query)
		if err != nil {
			writeServiceError(w, r, err, "leadspedia: falha ao buscar "+action)
			return
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"action": action,
			"source": query.Source,
			"count":  count,
		}).Info("leadspedia: consulta concluída")

		writeJSON(w, r, http.StatusOK, body)
	})
}

func GetLeads(service reporting.LeadReporter) http.Handler {
	return leadsHandler("leads", func(r *http.Request, query reporting.LeadsQuery) (any, int, error) {
		records, err := service.Leads(r.Context(), query)
		return records, len(records), err
	})
}

func GetLeadLog(service reporting.LeadReporter) http.Handler {
	return leadsHandler("log", func(r *http.Request, query reporting.LeadsQuery) (any, int, error) {
		entries, err := service.Log(r.Context(), query)
		return entries, len(entries), err
	})
}

func GetLeadStats(service reporting.LeadReporter) http.Handler {
	return leadsHandler("stats", func(r *http.Request, query reporting.LeadsQuery) (any, int, error) {
		overview, err := service.Stats(r.Context(), query)
		if err != nil {
			return nil, 0, err
		}
		return overview, overview.Stats.TotalLeads, nil
	})
}

func GetBuyers(service reporting.LeadReporter) http.Handler {
	return leadsHandler("buyers", func(r *http.Request, query reporting.LeadsQuery) (any, int, error) {
		buyers, err := service.Buyers(r.Context(), query)
		return buyers, len(buyers), err
	})
}

func GetContracts(service reporting.LeadReporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contracts, err := service.Contracts(r.Context(), r.URL.Query().Get("status"))
		if err != nil {
			writeServiceError(w, r, err, "leadspedia: falha ao listar contratos")
			return
		}
		writeJSON(w, r, http.StatusOK, contracts)
	})
}

func GetAdvertisers(service reporting.LeadReporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		advertisers, err := service.Advertisers(r.Context(), r.URL.Query().Get("status"))
		if err != nil {
			writeServiceError(w, r, err, "leadspedia: falha ao listar anunciantes")
			return
		}
		writeJSON(w, r, http.StatusOK, advertisers)
	})
}

func GetVerticals(service reporting.LeadReporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		verticals, err := service.Verticals(r.Context())
		if err != nil {
			writeServiceError(w, r, err, "leadspedia: falha ao listar verticais")
			return
		}
		writeJSON(w, r, http.StatusOK, verticals)
	})
}
