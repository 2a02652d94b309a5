package lpdomain

import "fmt"

// APIError é o erro retornado pelo cliente do Leadspedia, tanto para status HTTP >= 400
// quanto para respostas 200 com success=false
type APIError struct {
	StatusCode int
	Message    string
	ErrorCode  string
	Payload    map[string]any
}

func (e *APIError) Error() string {
	return e.Message
}

// Upstream identifica a origem do erro para a camada HTTP
func (e *APIError) Upstream() string {
	return "leadspedia"
}

// CheckPayload aplica a regra de erro do Leadspedia a um corpo JSON já decodificado.
// Sem a chave success, o corpo só é aceito se result == "success".
func CheckPayload(status int, payload map[string]any) *APIError {
	if payload != nil {
		var success bool
		if v, ok := payload["success"]; ok {
			success = Truthy(v)
		} else {
			success = AsString(payload["result"]) == "success"
		}

		if !success {
			message := AsString(First(payload, "message", "error"))
			if message == "" {
				message = "Unknown API error"
			}
			return &APIError{
				StatusCode: status,
				Message:    "Leadspedia API error: " + message,
				ErrorCode:  AsString(First(payload, "errorCode", "code")),
				Payload:    payload,
			}
		}
	}

	if status >= 400 {
		return &APIError{
			StatusCode: status,
			Message:    fmt.Sprintf("Leadspedia API HTTP error %d", status),
			Payload:    payload,
		}
	}

	return nil
}
