package v1

import (
	"context"
	"net"
	"net/http"

	"github.com/avoropay/receipt_ingestor/internal/config"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type Server struct {
	httpServer *http.Server
}

func NewServer(cfg config.HTTP, processor EventProcessor, recordsRepo RecordsRepository, eventsRepo IngestionEventsRepository) *Server {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	eventsHandler := NewEventsHandler(processor)
	filesHandler := NewFilesHandler(recordsRepo, eventsRepo)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/events", eventsHandler.HandleEvents)
		r.Get("/files", filesHandler.GetFiles)
		r.Get("/files/export", filesHandler.ExportFiles)
		r.Get("/files/{file_name}", filesHandler.GetFileByName)
		r.Get("/files/{file_name}/events", filesHandler.GetFileEvents)
	})

	return &Server{
		httpServer: &http.Server{
			Addr:         net.JoinHostPort(cfg.Host, cfg.Port),
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
			Handler:      r,
		},
	}
}

func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
