package handler

import (
	"fmt"
	"net/http"

	"github.com/vfg2006/lead-ads-dashboard/internal/domain"
	"github.com/vfg2006/lead-ads-dashboard/internal/usecases/exporting"
	"github.com/vfg2006/lead-ads-dashboard/pkg/log"
	"github.com/vfg2006/lead-ads-dashboard/pkg/utils"
)

const (
	InsightsCSVName = "meta_lead_ads_report"
	CombinedCSVName = "meta_leadspedia_combined_report"
	LLMExportName   = "meta_ads_cpl_analysis"
)

func attachmentName(base, ext string, filters *domain.InsightFilters) string {
	return fmt.Sprintf("%s_%s_%s.%s", base,
		filters.Since.Format(utils.DateLayout), filters.Until.Format(utils.DateLayout), ext)
}

func writeAttachment(w http.ResponseWriter, r *http.Request, contentType, filename string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("exportação: falha ao enviar arquivo")
	}
}

func ExportInsightsCSV(service exporting.Exporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filters, err := parseFilters(r)
		if err != nil {
			writeBadRequest(w, r, err)
			return
		}

		body, err := service.InsightsCSV(r.Context(), filters)
		if err != nil {
			writeServiceError(w, r, err, "exportação: falha ao gerar CSV de insights")
			return
		}

		writeAttachment(w, r, "text/csv; charset=utf-8", attachmentName(InsightsCSVName, "csv", filters), body)
	})
}

func ExportCombinedCSV(service exporting.Exporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filters, err := parseFilters(r)
		if err != nil {
			writeBadRequest(w, r, err)
			return
		}

		body, err := service.CombinedCSV(r.Context(), filters)
		if err != nil {
			writeServiceError(w, r, err, "exportação: falha ao gerar CSV combinado")
			return
		}

		writeAttachment(w, r, "text/csv; charset=utf-8", attachmentName(CombinedCSVName, "csv", filters), body)
	})
}

func ExportLLMMarkdown(service exporting.Exporter) http.Handler {
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

		markdown, err := service.LLMMarkdown(r.Context(), filters, opts)
		if err != nil {
			writeServiceError(w, r, err, "exportação: falha ao gerar markdown")
			return
		}

		writeAttachment(w, r, "text/markdown; charset=utf-8", attachmentName(LLMExportName, "md", filters), []byte(markdown))
	})
}

func PushSheets(service exporting.Exporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filters, err := parseFilters(r)
		if err != nil {
			writeBadRequest(w, r, err)
			return
		}

		result, err := service.PushSheets(r.Context(), filters)
		if err != nil {
			writeServiceError(w, r, err, "exportação: falha ao enviar para o Google Sheets")
			return
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"worksheet": result.Worksheet,
			"rows":      result.Rows,
		}).Info("exportação: planilha atualizada")

		writeJSON(w, r, http.StatusOK, result)
	})
}
