package handler

import (
	"net/http"

	"github.com/vfg2006/lead-ads-dashboard/infrastructure/repository"
	"github.com/vfg2006/lead-ads-dashboard/pkg/apiErrors"
	"github.com/vfg2006/lead-ads-dashboard/pkg/log"
)

func GetCacheStats(cache repository.CacheRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		stats, err := cache.Stats(r.Context())
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("cache: falha ao ler estatísticas")
			apiErrors.WriteFromError(w, err, apiErrors.ErrCacheOperation)
			return
		}
		writeJSON(w, r, http.StatusOK, stats)
	})
}
