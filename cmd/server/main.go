package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"connectrpc.com/connect"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/tabcalc/internal/auth"
	"github.com/mmynk/tabcalc/internal/config"
	"github.com/mmynk/tabcalc/internal/metrics"
	"github.com/mmynk/tabcalc/internal/middleware"
	"github.com/mmynk/tabcalc/internal/service"
	"github.com/mmynk/tabcalc/internal/storage/memory"
	"github.com/mmynk/tabcalc/pkg/logging"
	"github.com/mmynk/tabcalc/pkg/tabapi"
)

func main() {
	cfg := config.Load()
	logging.Setup(cfg.LogLevel)
	if cfg.GeneratedSecret {
		slog.Warn("SESSION_SECRET not set, using a random secret; sessions will not survive a restart")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store := memory.New()
	defer store.Close()

	tokens := auth.NewTokenManager(cfg.SessionSecret, cfg.SessionTTL)
	m := metrics.New()
	tabService := service.NewTabService(store, tokens, m)

	go sweepSessions(ctx, tabService, cfg.SweepInterval, cfg.SessionTTL)

	mux := http.NewServeMux()

	// Register Connect services
	interceptors := connect.WithInterceptors(
		middleware.MetricsInterceptor(m),
		middleware.RequireSession(tokens, tabapi.TabServiceStartSessionProcedure),
		middleware.LoggingInterceptor(),
	)
	tabPath, tabHandler := tabapi.NewTabServiceHandler(tabService, interceptors)
	mux.Handle(tabPath, tabHandler)
	mux.Handle("/metrics", m.Handler())

	if cfg.StaticPath != "" {
		if err := mountStatic(mux, cfg.StaticPath); err != nil {
			slog.Error("Failed to resolve static path", "error", err)
			os.Exit(1)
		}
	}

	// Wrap with h2c for HTTP/2 without TLS
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           h2c.NewHandler(corsMiddleware(mux), &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("Shutdown failed", "error", err)
		}
	}()

	slog.Info("Connect server starting", "address", server.Addr, "url", "http://localhost"+server.Addr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Server stopped")
}

// sweepSessions periodically drops idle sessions until ctx is cancelled.
func sweepSessions(ctx context.Context, svc *service.TabService, every, maxIdle time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed, err := svc.SweepIdle(ctx, maxIdle)
			if err != nil {
				slog.Warn("Session sweep failed", "error", err)
				continue
			}
			if removed > 0 {
				slog.Info("Swept idle sessions", "removed", removed)
			}
		}
	}
}

// mountStatic serves a presentation front end from dir on every non-API path.
func mountStatic(mux *http.ServeMux, dir string) error {
	staticDir, err := filepath.Abs(dir)
	if err != nil {
		return err
	}
	slog.Info("Serving static files", "path", staticDir)

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/"+tabapi.TabServiceName) {
			http.NotFound(w, r)
			return
		}

		urlPath := r.URL.Path
		if urlPath == "/" {
			urlPath = "/index.html"
		}
		filePath := filepath.Join(staticDir, filepath.Clean(urlPath))
		if _, err := os.Stat(filePath); os.IsNotExist(err) {
			http.ServeFile(w, r, filepath.Join(staticDir, "index.html"))
			return
		}
		http.ServeFile(w, r, filePath)
	})
	return nil
}

// corsMiddleware adds CORS headers for browser access
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, Connect-Protocol-Version, Connect-Timeout-Ms")
		w.Header().Set("Access-Control-Expose-Headers", "Connect-Protocol-Version, Connect-Timeout-Ms")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
