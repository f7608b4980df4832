package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/opportunity-summarizer/internal/api/handler"
	"github.com/vfg2006/opportunity-summarizer/internal/api/handler/router"
	"github.com/vfg2006/opportunity-summarizer/internal/config"
	"github.com/vfg2006/opportunity-summarizer/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer *http.Server
}

func New(cfg *config.Config, summaryTrigger handler.SummaryTrigger) *Server {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Summary(summaryTrigger)...),
	)

	logrus.WithField("routes", rt.Routes()).Debug("api: routes registered")

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
	}

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           alice.New(middlewares...).Then(rt),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}
}

// Run bloqueia até o contexto ser cancelado e então desliga o servidor
func (s *Server) Run(ctx context.Context) error {
	serverErr := make(chan error, 1)

	go func() {
		logrus.WithField("address", s.httpServer.Addr).Info("api: server starting")

		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err, ok := <-serverErr:
		if ok {
			logrus.WithError(err).Error("api: server stopped unexpectedly")
			return err
		}
		return nil
	case <-ctx.Done():
		logrus.Info("api: application context cancelled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithField("timeout", shutdownTimeout.String()).Info("api: starting graceful shutdown")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("api: error during server shutdown")
		return err
	}

	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}

	logrus.Info("api: http server stopped")
	return nil
}
