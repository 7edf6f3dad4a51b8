// Package probe serves liveness and readiness endpoints for the orchestrator.
package probe

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"

	"neetup/pkg/contextx"
	"neetup/pkg/logx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

const (
	httpServerReadHeaderTimeout = 5 * time.Second
	readinessCheckTimeout       = 2 * time.Second
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// Check reports whether a dependency the service needs is reachable.
type Check struct {
	Name string
	Func func(context.Context) error
}

type Server struct {
	listenAddress string
	options       Options
	checks        []Check
}

type Options struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

type readyState struct {
	Options

	Failed []string `json:"failed,omitempty"`
}

func NewServer(
	listenAddress string,
	options Options,
	checks ...Check,
) Server {
	return Server{
		listenAddress: listenAddress,
		options:       options,
		checks:        checks,
	}
}

func (s Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", s.handlerHealthz)
	mux.HandleFunc("/ready", s.handlerReady)

	return mux
}

func (s Server) Run(ctx context.Context) error {
	httpServer := &http.Server{
		//nolint:exhaustruct
		Addr:              s.listenAddress,
		Handler:           s.Handler(),
		ReadHeaderTimeout: httpServerReadHeaderTimeout,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		<-ctx.Done()

		if err := httpServer.Shutdown(context.WithoutCancel(ctx)); err != nil {
			logger(ctx).Error("httpServer.Shutdown", logx.Error(err))
		}
	}()

	logger(ctx).Info("probe server started", slog.String("address", s.listenAddress))

	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("httpServer.ListenAndServe: %w", err)
	}

	logger(ctx).Info("probe server stopped")

	return nil
}

func (s Server) handlerHealthz(w http.ResponseWriter, r *http.Request) {
	s.write(r.Context(), w, http.StatusOK, readyState{Options: s.options})
}

// handlerReady answers 503 listing the failed checks if any dependency is
// unreachable.
func (s Server) handlerReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readinessCheckTimeout)
	defer cancel()

	state := readyState{Options: s.options}

	for _, check := range s.checks {
		if err := check.Func(ctx); err != nil {
			logger(ctx).Warn("readiness check failed", slog.String("check", check.Name), logx.Error(err))
			state.Failed = append(state.Failed, check.Name)
		}
	}

	if len(state.Failed) > 0 {
		s.write(ctx, w, http.StatusServiceUnavailable, state)
		return
	}

	s.write(ctx, w, http.StatusOK, state)
}

func (s Server) write(ctx context.Context, w http.ResponseWriter, statusCode int, state readyState) {
	body, err := json.Marshal(state)
	if err != nil {
		logger(ctx).Error("json.Marshal", logx.Error(err))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(body) //nolint:errcheck
}
