package observe

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/KirkDiggler/pokemon-tabletop-bot/internal/logging"
)

// Server exposes /metrics, /healthz and /readyz
type Server struct {
	srv *http.Server
}

// NewServer builds the metrics listener. The metrics handler defaults to promhttp.Handler().
func NewServer(addr string, health *Health, metricsHandler http.Handler) *Server {
	if metricsHandler == nil {
		metricsHandler = promhttp.Handler()
	}
	if health == nil {
		health = NewHealth()
	}

	mux := http.NewServeMux()
	mux.Handle("GET /metrics", metricsHandler)
	health.Register(mux)

	return &Server{
		srv: &http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

// Handler returns the routed handler, for tests
func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}

// Start listens in the background. Listen errors are returned synchronously.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return err
	}

	go func() {
		if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.L().Error("metrics server stopped", zap.Error(err))
		}
	}()

	logging.L().Info("metrics server listening", zap.String("addr", ln.Addr().String()))
	return nil
}

// Shutdown stops accepting requests and waits for in-flight ones
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
