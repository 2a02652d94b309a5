package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/lead-ads-dashboard/internal/domain"
	"github.com/vfg2006/lead-ads-dashboard/internal/usecases/authenticating"
	"github.com/vfg2006/lead-ads-dashboard/pkg/apiErrors"
	"github.com/vfg2006/lead-ads-dashboard/pkg/middleware"
)

type SessionResponse struct {
	AuthEnabled bool           `json:"auth_enabled"`
	Session     *domain.Claims `json:"session,omitempty"`
}

func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.LoginRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		resp, err := service.Login(req.Password)
		if err != nil {
			handleLoginError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, resp)
	}
}

// handleLoginError trata erros específicos de login e retorna a resposta apropriada
func handleLoginError(w http.ResponseWriter, r *http.Request, err error) {
	logrus.WithFields(logrus.Fields{
		"remote_addr": r.RemoteAddr,
		"error":       err.Error(),
	}).Warn("Falha no login do painel")

	var authErr *authenticating.AuthError
	if errors.As(err, &authErr) {
		apiErrors.WriteError(w, authErr.Code, authErr.Error(), nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao realizar login", nil)
}

// Session informa ao painel se o login está ativo e qual sessão fez a chamada
func Session(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := SessionResponse{AuthEnabled: service.Enabled()}
		if claims, ok := middleware.SessionFromContext(r.Context()); ok {
			resp.Session = claims
		}
		writeJSON(w, r, http.StatusOK, resp)
	}
}
