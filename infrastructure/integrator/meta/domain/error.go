package metadomain

import "fmt"

// ErrorResponse representa a estrutura de erro da API do Meta
type ErrorResponse struct {
	Error *ErrorDetails `json:"error"`
}

// ErrorDetails contém os detalhes de erro da API do Meta
type ErrorDetails struct {
	Message      string `json:"message"`
	Type         string `json:"type"`
	Code         int    `json:"code"`
	ErrorSubcode int    `json:"error_subcode,omitempty"`
	FBTraceID    string `json:"fbtrace_id"`
}

// APIError é o erro retornado pelo cliente do Graph API
type APIError struct {
	StatusCode int
	Details    *ErrorDetails
}

func (e *APIError) Error() string {
	if e.Details == nil {
		return fmt.Sprintf("Meta API error HTTP %d", e.StatusCode)
	}

	message := e.Details.Message
	if message == "" {
		message = "unknown"
	}
	return fmt.Sprintf("Meta API error: %s (type=%s, code=%d)", message, e.Details.Type, e.Details.Code)
}

// Upstream identifica a origem do erro para a camada HTTP
func (e *APIError) Upstream() string {
	return "meta"
}

// IsTokenExpired verifica se o erro é de token expirado ou inválido
func (e *APIError) IsTokenExpired() bool {
	if e.Details == nil {
		return false
	}
	// 190 = token expirado; subcódigos 460, 463 e 467 também indicam token inválido
	return e.Details.Code == 190 ||
		(e.Details.Type == "OAuthException" && (e.Details.ErrorSubcode == 460 || e.Details.ErrorSubcode == 463 || e.Details.ErrorSubcode == 467))
}
