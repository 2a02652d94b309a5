package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/lead-ads-dashboard/internal/domain"
	"github.com/vfg2006/lead-ads-dashboard/internal/usecases/authenticating"
	"github.com/vfg2006/lead-ads-dashboard/pkg/apiErrors"
)

type contextKey string

const (
	ContextKeySession contextKey = "session"
)

var publicPaths = map[string]bool{
	"/":            true,
	"/v1/login":    true,
	"/healthcheck": true,
}

// AuthMiddleware exige um Bearer token nas rotas da API quando o login do painel está configurado.
// O websocket aceita o token pela query string, já que o navegador não envia cabeçalhos no upgrade.
func AuthMiddleware(authService authenticating.Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !authService.Enabled() || publicPaths[r.URL.Path] || r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			tokenString, ok := bearerToken(r)
			if !ok {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Bearer token é obrigatório", nil)
				return
			}

			claims, err := authService.ValidateToken(tokenString)
			if err != nil {
				logrus.WithFields(logrus.Fields{
					"path":  r.URL.Path,
					"error": err.Error(),
				}).Warn("Token rejeitado")

				code := apiErrors.ErrInvalidToken
				if authErr, isAuthErr := err.(*authenticating.AuthError); isAuthErr {
					code = authErr.Code
				}
				apiErrors.WriteError(w, code, "Token inválido ou expirado", nil)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeySession, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	if strings.HasPrefix(r.URL.Path, "/ws/") {
		if token := r.URL.Query().Get("token"); token != "" {
			return token, true
		}
	}

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", false
	}
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader || tokenString == "" {
		return "", false
	}
	return tokenString, true
}

// SessionFromContext retorna as claims do token validado pelo AuthMiddleware
func SessionFromContext(ctx context.Context) (*domain.Claims, bool) {
	claims, ok := ctx.Value(ContextKeySession).(*domain.Claims)
	return claims, ok
}
