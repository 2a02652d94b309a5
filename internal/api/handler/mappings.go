package handler

import (
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/lead-ads-dashboard/infrastructure/repository"
	"github.com/vfg2006/lead-ads-dashboard/internal/domain"
	"github.com/vfg2006/lead-ads-dashboard/pkg/apiErrors"
	"github.com/vfg2006/lead-ads-dashboard/pkg/log"
)

type MappingRequest struct {
	MetaCampaignID   string   `json:"meta_campaign_id"`
	MetaCampaignName string   `json:"meta_campaign_name"`
	VerticalID       string   `json:"vertical_id"`
	VerticalName     string   `json:"vertical_name"`
	MinSellRate      *float64 `json:"min_sell_rate"`
	MinROI           *float64 `json:"min_roi"`
}

type AffiliateRequest struct {
	AffiliateID string `json:"affiliate_id"`
}

type DefaultsRequest struct {
	DefaultVerticalID *string  `json:"default_vertical_id"`
	MinSellRate       *float64 `json:"default_min_sell_rate"`
	MinROI            *float64 `json:"default_min_roi"`
}

func ListMappings(repo repository.CampaignMappingRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, repo.Load())
	})
}

// SaveMapping cria ou substitui o mapeamento da campanha; metas ausentes usam os padrões salvos
func SaveMapping(repo repository.CampaignMappingRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req MappingRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		req.MetaCampaignID = strings.TrimSpace(req.MetaCampaignID)
		req.VerticalID = strings.TrimSpace(req.VerticalID)
		if req.MetaCampaignID == "" || req.VerticalID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "meta_campaign_id e vertical_id são obrigatórios", nil)
			return
		}

		current := repo.Load()
		mapping := domain.CampaignVerticalMapping{
			MetaCampaignID:   req.MetaCampaignID,
			MetaCampaignName: req.MetaCampaignName,
			VerticalID:       req.VerticalID,
			VerticalName:     req.VerticalName,
			MinSellRate:      current.DefaultMinSellRate,
			MinROI:           current.DefaultMinROI,
		}
		if req.MinSellRate != nil {
			mapping.MinSellRate = *req.MinSellRate
		}
		if req.MinROI != nil {
			mapping.MinROI = *req.MinROI
		}

		if err := repo.AddMapping(mapping); err != nil {
			writeServiceError(w, r, err, "mapeamentos: falha ao salvar")
			return
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"meta_campaign_id": mapping.MetaCampaignID,
			"vertical_id":      mapping.VerticalID,
		}).Info("mapeamentos: campanha mapeada")

		writeJSON(w, r, http.StatusOK, mapping)
	})
}

func RemoveMapping(repo repository.CampaignMappingRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("campaign_id")

		removed, err := repo.RemoveMapping(id)
		if err != nil {
			writeServiceError(w, r, err, "mapeamentos: falha ao remover")
			return
		}
		if !removed {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Mapeamento não encontrado", map[string]string{"meta_campaign_id": id})
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func SetAffiliate(repo repository.CampaignMappingRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req AffiliateRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		if err := repo.SetAffiliateID(strings.TrimSpace(req.AffiliateID)); err != nil {
			writeServiceError(w, r, err, "mapeamentos: falha ao salvar affiliate")
			return
		}

		writeJSON(w, r, http.StatusOK, repo.Load())
	})
}

func SetMappingDefaults(repo repository.CampaignMappingRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req DefaultsRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		if req.DefaultVerticalID != nil && strings.TrimSpace(*req.DefaultVerticalID) == "" {
			req.DefaultVerticalID = nil
		}
		if err := repo.SetDefaultVertical(req.DefaultVerticalID); err != nil {
			writeServiceError(w, r, err, "mapeamentos: falha ao salvar vertical padrão")
			return
		}

		if req.MinSellRate != nil || req.MinROI != nil {
			current := repo.Load()
			minSellRate, minROI := current.DefaultMinSellRate, current.DefaultMinROI
			if req.MinSellRate != nil {
				minSellRate = *req.MinSellRate
			}
			if req.MinROI != nil {
				minROI = *req.MinROI
			}
			if err := repo.SetDefaultThresholds(minSellRate, minROI); err != nil {
				writeServiceError(w, r, err, "mapeamentos: falha ao salvar metas padrão")
				return
			}
		}

		writeJSON(w, r, http.StatusOK, repo.Load())
	})
}
