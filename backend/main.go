package main

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/TheKrainBow/connect4/engine"
)

const maxRequestBytes = 64 << 10

type server struct {
	configs *ConfigStore
	hub     *Hub
	logger  *slog.Logger
}

type settingsPayload struct {
	Config engine.Config `json:"config"`
}

func newServer(configs *ConfigStore, hub *Hub, logger *slog.Logger) *server {
	return &server{configs: configs, hub: hub, logger: logger}
}

func (s *server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/api/ping", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})

	r.Get("/api/settings", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, settingsPayload{Config: s.configs.Get()})
	})

	r.Post("/api/settings", func(w http.ResponseWriter, r *http.Request) {
		var payload settingsPayload
		if !decodeBody(w, r, &payload) {
			return
		}
		if err := s.configs.Update(payload.Config); err != nil {
			writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
			return
		}
		s.logger.Info("engine config updated",
			slog.Int("max_depth", payload.Config.MaxDepth),
			slog.String("side", payload.Config.Side.String()),
			slog.Bool("log_search_stats", payload.Config.LogSearchStats),
		)
		writeJSON(w, http.StatusOK, settingsPayload{Config: s.configs.Get()})
	})

	r.Post("/api/choose", func(w http.ResponseWriter, r *http.Request) {
		var req chooseRequest
		if !decodeBody(w, r, &req) {
			return
		}
		decision, err := decide(s.configs.Get(), req, s.logger)
		if err != nil {
			writeJSON(w, statusForError(err), errorBody(err.Error()))
			return
		}
		if s.hub.HasClients() {
			s.hub.Publish(decision)
		}
		writeJSON(w, http.StatusOK, decision)
	})

	r.Post("/api/evaluate", func(w http.ResponseWriter, r *http.Request) {
		var req evaluateRequest
		if !decodeBody(w, r, &req) {
			return
		}
		result, err := evaluateRack(req)
		if err != nil {
			writeJSON(w, statusForError(err), errorBody(err.Error()))
			return
		}
		writeJSON(w, http.StatusOK, result)
	})

	r.Post("/api/analysis/chart", func(w http.ResponseWriter, r *http.Request) {
		var req chooseRequest
		if !decodeBody(w, r, &req) {
			return
		}
		decision, err := decide(s.configs.Get(), req, s.logger)
		if err != nil {
			writeJSON(w, statusForError(err), errorBody(err.Error()))
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := renderScoreChart(w, decision); err != nil {
			s.logger.Error("render score chart", slog.Any("error", err))
		}
	})

	r.Get("/ws/", s.serveWS)
	return r
}

func main() {
	env := loadServerEnv()
	logger := newLogger(os.Stderr, env.LogLevel, false)
	slog.SetDefault(logger)

	config := engine.DefaultConfig()
	if restored, ok, err := loadConfig(env.ConfigPath); err != nil {
		logger.Warn("ignoring persisted engine config", slog.Any("error", err))
	} else if ok {
		config = restored
		logger.Info("restored engine config", slog.String("path", env.ConfigPath), slog.Int("max_depth", config.MaxDepth))
	}
	configs := NewConfigStore(config)
	hub := NewHub()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx.Done())

	srv := newServer(configs, hub, logger)
	httpServer := &http.Server{
		Addr:    env.Addr,
		Handler: srv.routes(),
	}
	serverErrCh := make(chan error, 1)
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrCh <- err
		}
		close(serverErrCh)
	}()

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stopSignals()

	logger.Info("backend listening", slog.String("addr", env.Addr))
	var runErr error
	select {
	case <-sigCtx.Done():
		logger.Info("shutdown signal received", slog.Any("error", sigCtx.Err()))
	case err, ok := <-serverErrCh:
		if ok {
			runErr = err
			logger.Error("server error", slog.Any("error", err))
		}
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), env.ShutdownTimeout)
	defer cancelShutdown()
	if err := httpServer.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("graceful shutdown failed", slog.Any("error", err))
		if closeErr := httpServer.Close(); closeErr != nil && !errors.Is(closeErr, http.ErrServerClosed) {
			logger.Error("forced close failed", slog.Any("error", closeErr))
		}
	}

	cancel()
	if err := saveConfig(env.ConfigPath, configs.Get()); err != nil {
		logger.Error("persist engine config", slog.Any("error", err))
	}
	if runErr != nil {
		logger.Error("exiting after server error", slog.Any("error", runErr))
		os.Exit(1)
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, out any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBytes)
	if err := json.NewDecoder(r.Body).Decode(out); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid payload"))
		return false
	}
	return true
}

// statusForError maps boundary validation errors to 400; anything else is a
// server fault.
func statusForError(err error) int {
	switch {
	case errors.Is(err, engine.ErrRackRows),
		errors.Is(err, engine.ErrRackColumns),
		errors.Is(err, engine.ErrCellValue),
		errors.Is(err, engine.ErrSide),
		errors.Is(err, engine.ErrDepth):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func errorBody(msg string) map[string]string {
	return map[string]string{"error": msg}
}

func mustMarshal(v any) json.RawMessage {
	data, _ := json.Marshal(v)
	return data
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
