package aura

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// NewHealthRouter answers liveness probes. It never looks at the gateway
// connection; a running process is a live process.
func NewHealthRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	alive := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if r.Method != http.MethodHead {
			_, _ = w.Write([]byte(`{"status":"ok"}`))
		}
	}

	r.Head("/", alive)
	r.Get("/", alive)
	r.Head("/health", alive)
	r.Get("/health", alive)

	return r
}

type HealthServer struct {
	srv    *http.Server
	logger *zap.Logger
}

func StartHealthServer(addr string, logger *zap.Logger) *HealthServer {
	hs := &HealthServer{
		srv: &http.Server{
			Addr:              addr,
			Handler:           NewHealthRouter(),
			ReadHeaderTimeout: 5 * time.Second,
		},
		logger: logger,
	}

	go func() {
		logger.Info("health endpoint listening", zap.String("addr", addr))
		if err := hs.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("health endpoint stopped", zap.Error(err))
		}
	}()

	return hs
}

func (hs *HealthServer) Shutdown(ctx context.Context) error {
	return hs.srv.Shutdown(ctx)
}
