package metrics

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/marmos91/posixshim/internal/logger"
)

// DefaultPort is the port the metrics server listens on when none is set.
const DefaultPort = 9464

// seriesPrefix selects the families listed on the index page.
const seriesPrefix = "posixshim_"

// ServerConfig configures the metrics HTTP server.
type ServerConfig struct {
	// Port to listen on. Default: DefaultPort
	Port int
}

// Server serves the registry for scraping.
//
// Endpoints:
//   - /metrics: Prometheus exposition, 503 while metrics are disabled
//   - /healthz: liveness probe
//   - /: plain-text summary of the emulator and backend series
type Server struct {
	srv  *http.Server
	port int

	stopOnce sync.Once
}

// NewServer creates a stopped server. Call Start to serve.
func NewServer(cfg ServerConfig) *Server {
	if cfg.Port <= 0 {
		cfg.Port = DefaultPort
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", metricsHandler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = fmt.Fprintln(w, "ok")
	})
	mux.HandleFunc("/", indexHandler)

	return &Server{
		srv: &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
			WriteTimeout:      10 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
		port: cfg.Port,
	}
}

func metricsHandler() http.Handler {
	if reg := GetRegistry(); reg != nil {
		return promhttp.HandlerFor(reg, promhttp.HandlerOpts{EnableOpenMetrics: true})
	}
	logger.Debug("metrics: collection disabled, /metrics answers 503")
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "metrics collection is disabled", http.StatusServiceUnavailable)
	})
}

// indexHandler lists the posixshim series currently registered, so an
// operator can see which emulated calls and backends are being recorded.
func indexHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	var b strings.Builder
	b.WriteString("posixshim\n\n")
	b.WriteString("  /metrics  Prometheus exposition\n")
	b.WriteString("  /healthz  liveness\n\n")

	reg := GetRegistry()
	if reg == nil {
		b.WriteString("metrics collection is disabled\n")
	} else {
		families, err := reg.Gather()
		if err != nil {
			logger.Warn("metrics: gather for index page: %v", err)
		}
		var lines []string
		for _, mf := range families {
			if strings.HasPrefix(mf.GetName(), seriesPrefix) {
				lines = append(lines, fmt.Sprintf("  %-55s %s", mf.GetName(), mf.GetHelp()))
			}
		}
		sort.Strings(lines)
		if len(lines) == 0 {
			b.WriteString("no emulated calls recorded yet\n")
		} else {
			b.WriteString("series:\n")
			b.WriteString(strings.Join(lines, "\n"))
			b.WriteString("\n")
		}
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = fmt.Fprint(w, b.String())
}

// Start listens and serves until ctx is done, then shuts down. It returns
// early if the listener cannot be opened or serving fails.
func (s *Server) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return fmt.Errorf("metrics server failed to listen on port %d: %w", s.port, err)
	}
	logger.Info("Metrics server listening on port %d", s.port)

	serveErr := make(chan error, 1)
	go func() {
		if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.Stop(shutdownCtx)
	case err, ok := <-serveErr:
		if !ok {
			return nil
		}
		return fmt.Errorf("metrics server failed: %w", err)
	}
}

// Stop shuts the server down. Calls after the first return nil.
func (s *Server) Stop(ctx context.Context) error {
	var err error
	s.stopOnce.Do(func() {
		if err = s.srv.Shutdown(ctx); err != nil {
			err = fmt.Errorf("metrics server shutdown: %w", err)
			return
		}
		logger.Debug("Metrics server stopped")
	})
	return err
}

// Port returns the configured TCP port.
func (s *Server) Port() int {
	return s.port
}

// Handler returns the HTTP handler serving the endpoints.
func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}
