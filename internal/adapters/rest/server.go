package rest

import (
	"context"
	"net/http"

	"oglasnik-service/internal/adapters/metrics"
	core_port "oglasnik-service/internal/core/port"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Server struct {
	httpServer *http.Server
	logger     core_port.LoggerPort
}

func NewServer(port string,
	searchHandler *SearchHandler,
	similarityHandler *SimilarityHandler,
	baseLogger core_port.LoggerPort) *Server {

	r := chi.NewRouter()

	r.Use(LoggerMiddleware(baseLogger), metrics.Middleware(), middleware.Recoverer)

	r.Route("/api/v1", func(r chi.Router) {
		// public, read-only search surface
		r.Get("/announcements/search", searchHandler.SearchAnnouncements)
		r.Get("/companies/search", searchHandler.SearchCompanies)
		r.Get("/real-estates/similar", similarityHandler.FindSimilar)

		// moderation view; authorization is enforced upstream
		r.Get("/announcements/deleted", searchHandler.SearchDeletedAnnouncements)
	})

	r.Handle("/metrics", promhttp.Handler())

	return &Server{
		httpServer: &http.Server{
			Addr:    ":" + port,
			Handler: r,
		},
		logger: baseLogger,
	}
}

func (s *Server) Start() error {
	s.logger.Info("Starting REST server", core_port.Fields{"address": s.httpServer.Addr})
	return s.httpServer.ListenAndServe()
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping REST server...", nil)
	return s.httpServer.Shutdown(ctx)
}
