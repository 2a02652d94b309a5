package middleware

import "net/http"

// DefaultMaxBody é o limite dos corpos JSON aceitos pela API
const DefaultMaxBody = 1 << 20

// LimitBody corta corpos maiores que maxBytes; o decoder recebe erro ao passar do limite
func LimitBody(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			}
			next.ServeHTTP(w, r)
		})
	}
}
