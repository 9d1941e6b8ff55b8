package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/NewsDesk/internal/infra/tracing"
	"github.com/NewsDesk/pkg/config"
	"github.com/NewsDesk/pkg/newsapi"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter assembles the gateway routes: probes, the backend API mirror and
// the single-page app.
func NewRouter(cfg *config.Config, client *newsapi.Client) *mux.Router {
	r := mux.NewRouter().UseEncodedPath()

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := fmt.Fprintf(w, "OK"); err != nil {
			slog.Debug("Failed to write health response", "error", err)
		}
	}).Methods("GET")
	r.Handle("/metrics", promhttp.Handler())

	r.PathPrefix("/api/").Handler(NewAPIHandler(client).Router())
	r.PathPrefix("/").Handler(NewSPAHandler(cfg.StaticDir))

	r.Use(AllowedHosts(cfg.AllowedHosts, "/health", "/metrics"))
	return r
}

func NewHTTPServer(cfg *config.Config, client *newsapi.Client) *http.Server {
	return &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           tracing.Handler(NewRouter(cfg, client), "newsdesk-gateway"),
		ReadHeaderTimeout: 10 * time.Second,
	}
}
