package apiErrors

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	// Erros de autenticação
	ErrInvalidCredentials = "AUTH_001" // Senha do painel inválida
	ErrAuthDisabled       = "AUTH_002" // Autenticação não configurada
	ErrInvalidToken       = "AUTH_006" // Token inválido
	ErrExpiredToken       = "AUTH_007" // Token expirado

	// Erros de validação
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido
	ErrNotFound            = "VAL_004" // Recurso não encontrado
	ErrIntegrationDisabled = "VAL_005" // Integração não configurada

	// Erros do servidor
	ErrInternalServer  = "SRV_001" // Erro interno do servidor
	ErrCacheOperation  = "SRV_002" // Erro de operação no cache
	ErrExternalService = "SRV_003" // Erro em serviço externo
	ErrCommunication   = "SRV_004" // Erro de comunicação
)

var httpStatusMap = map[string]int{
	ErrInvalidCredentials:  http.StatusUnauthorized,
	ErrAuthDisabled:        http.StatusNotFound,
	ErrInvalidToken:        http.StatusUnauthorized,
	ErrExpiredToken:        http.StatusUnauthorized,
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusBadRequest,
	ErrNotFound:            http.StatusNotFound,
	ErrIntegrationDisabled: http.StatusConflict,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrCacheOperation:      http.StatusInternalServerError,
	ErrExternalService:     http.StatusBadGateway,
	ErrCommunication:       http.StatusServiceUnavailable,
}

// UpstreamError é implementado pelos erros retornados pelas APIs do Meta e do Leadspedia
type UpstreamError interface {
	error
	Upstream() string
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

// StatusFor retorna o status HTTP associado ao código
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado na resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	_ = json.NewEncoder(w).Encode(apiErr)
}

// FromError cria um erro de API a partir de um erro Go.
// Erros vindos das APIs externas viram ErrExternalService independente do código sugerido.
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Erro desconhecido",
		}
	}

	var upstream UpstreamError
	if errors.As(err, &upstream) {
		return APIError{
			Code:    ErrExternalService,
			Message: err.Error(),
			Details: map[string]string{"upstream": upstream.Upstream()},
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}

// WriteFromError combina FromError e WriteError
func WriteFromError(w http.ResponseWriter, err error, code string) {
	apiErr := FromError(err, code)
	WriteError(w, apiErr.Code, apiErr.Message, apiErr.Details)
}
