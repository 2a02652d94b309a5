package handler

import (
	"embed"
	"net/http"

	"github.com/sirupsen/logrus"
)

//go:embed static/index.html
var static embed.FS

// Dashboard serve a página única do painel, que consome a API /v1 e o feed /ws/alerts
func Dashboard() http.Handler {
	page, err := static.ReadFile("static/index.html")
	if err != nil {
		logrus.WithError(err).Fatal("Página do painel ausente do binário")
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Cache-Control", "no-cache")
		if _, err := w.Write(page); err != nil {
			logrus.WithError(err).Warn("Erro ao enviar a página do painel")
		}
	})
}
