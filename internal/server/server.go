package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/otel/metric"

	"github.com/guiate/guiate/internal/cache"
	"github.com/guiate/guiate/internal/catalog"
	"github.com/guiate/guiate/internal/engine"
	"github.com/guiate/guiate/internal/queue"
	"github.com/guiate/guiate/internal/storage"
	"github.com/guiate/guiate/internal/worker"
	"github.com/guiate/guiate/pkg/core"
)

// Config holds the game parameters the handlers need.
type Config struct {
	WinDistanceKm     int
	MaxPlayerAttempts int
	RankingLimit      int
	AdminPasswordHash string
}

// Deps holds everything the handlers share. The catalog is resolved
// lazily through the Handle so startup never blocks on the GeoJSON
// fetch.
type Deps struct {
	Logger  *slog.Logger
	Backend storage.Backend
	Handle  *catalog.Handle
	Loader  *catalog.Loader
	Roster  []core.Player
	Players *cache.PlayerCache

	Daily    *cache.DailyCache
	Sessions *cache.SessionCache
	Events   *queue.Queue[core.GuessEvent]
	Worker   *worker.Manager
	Guesses  *cache.SafeCounter
	Metrics  RequestRecorder
	Meter    metric.Meter

	Config Config

	// Now is swappable in tests; defaults to time.Now.
	Now func() time.Time

	engOnce sync.Once
	eng     *engine.Engine
}

func (d *Deps) now() time.Time {
	if d.Now != nil {
		return d.Now()
	}
	return time.Now()
}

func (d *Deps) catalog(ctx context.Context) *catalog.Catalog {
	return d.Handle.Get(ctx, d.Loader)
}

func (d *Deps) engine(ctx context.Context) *engine.Engine {
	d.engOnce.Do(func() {
		d.eng = engine.New(d.catalog(ctx))
	})
	return d.eng
}

type Server struct {
	srv    *http.Server
	logger *slog.Logger
}

func New(addr string, deps *Deps) *Server {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(newStructuredLogger(deps.Logger, deps.Metrics, deps.Meter))
	r.Use(middleware.Recoverer)

	addRoutes(r, deps)

	return &Server{
		srv: &http.Server{
			Addr:              addr,
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
			IdleTimeout:       120 * time.Second,
		},
		logger: deps.Logger,
	}
}

// Handler exposes the router, used by the httptest-based tests.
func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}

func (s *Server) Run(_ context.Context) error {
	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.srv.Addr, err)
	}

	s.logger.Info("HTTP server listening", "addr", s.srv.Addr)

	err = s.srv.Serve(ln)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return s.srv.Shutdown(ctx)
}
