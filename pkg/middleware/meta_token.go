package middleware

import (
	"net/http"

	"github.com/vfg2006/lead-ads-dashboard/infrastructure/integrator/meta/metaclient"
)

// MetaAccessToken repassa o token do Meta digitado no painel para as chamadas da requisição
func MetaAccessToken() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token := r.Header.Get(metaclient.HeaderAccessToken); token != "" {
				r = r.WithContext(metaclient.WithAccessToken(r.Context(), token))
			}
			next.ServeHTTP(w, r)
		})
	}
}
