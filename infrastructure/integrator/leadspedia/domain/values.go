package lpdomain

import (
	"strconv"
	"strings"
	"time"
)

// As respostas do Leadspedia variam de formato entre endpoints e contas, então os campos
// são lidos de map[string]any com uma lista de nomes alternativos.

// Truthy segue a regra de "valor preenchido": nil, "", 0, false e coleções vazias são falsos
func Truthy(v any) bool {
	switch value := v.(type) {
	case nil:
		return false
	case string:
		return value != ""
	case bool:
		return value
	case float64:
		return value != 0
	case int:
		return value != 0
	case int64:
		return value != 0
	case []any:
		return len(value) > 0
	case map[string]any:
		return len(value) > 0
	}
	return true
}

// First retorna o primeiro valor preenchido entre as chaves informadas
func First(data map[string]any, keys ...string) any {
	for _, k := range keys {
		if v, ok := data[k]; ok && Truthy(v) {
			return v
		}
	}
	return nil
}

// AsString converte valores escalares, números inteiros sem casas decimais
func AsString(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case int:
		return strconv.Itoa(value)
	case int64:
		return strconv.FormatInt(value, 10)
	case bool:
		if value {
			return "True"
		}
		return "False"
	}
	return ""
}

// OptionalString retorna nil para valores vazios
func OptionalString(v any) *string {
	s := AsString(v)
	if s == "" {
		return nil
	}
	return &s
}

// SafeFloat converte valores monetários, 0 em caso de falha
func SafeFloat(v any) float64 {
	switch value := v.(type) {
	case float64:
		return value
	case int:
		return float64(value)
	case int64:
		return float64(value)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return 0
		}
		return f
	}
	return 0
}

// OptionalInt converte contadores; valores vazios ou inválidos viram nil
func OptionalInt(v any) *int {
	if !Truthy(v) {
		return nil
	}
	switch value := v.(type) {
	case float64:
		n := int(value)
		return &n
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return nil
		}
		return &n
	}
	return nil
}

var dateTimeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05Z",
	"2006-01-02",
}

// ParseDateTime aceita os formatos de data usados pelo Leadspedia
func ParseDateTime(v any) *time.Time {
	s, ok := v.(string)
	if !ok || s == "" {
		return nil
	}
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}
