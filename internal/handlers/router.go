package handlers

import (
	"context"
	"net/http"

	"mood_forge/internal/metrics"
	"mood_forge/internal/usecases"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// Pinger reports whether the entry store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type RouterConfig struct {
	BasePath       string
	AllowedOrigins []string

	Gate        *usecases.SubmissionGate
	Aggregation *usecases.AggregationService
	Feedback    *usecases.FeedbackOrchestrator
	Store       Pinger
	Logger      *zap.Logger
}

func NewRouter(cfg RouterConfig) http.Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("http")

	moods := NewMoodHandler(cfg.Gate, cfg.Aggregation, cfg.Feedback, logger)
	reflections := NewReflectionHandler(cfg.Gate, cfg.Feedback, logger)
	chat := NewChatHandler(cfg.Feedback, logger)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(forwardRequestID)
	r.Use(requestLogger(logger))
	r.Use(instrument)
	r.Use(middleware.Recoverer)
	r.Use(allowOrigins(cfg.AllowedOrigins))

	r.Get("/health", healthHandler(cfg.Store, logger))
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	api := func(api chi.Router) {
		api.Get("/mood/check", moods.HandleCheck)
		api.Post("/mood/submit", moods.HandleSubmit)
		api.Get("/mood/weekly", moods.HandleWeekly)
		api.Get("/mood/all", moods.HandleAll)
		api.Get("/mood/weekly-summary", moods.HandleWeeklySummary)
		api.Get("/mood/reflection-feedback", moods.HandleReflection)

		api.Get("/reflection/check", reflections.HandleCheck)
		api.Post("/reflection/submit", reflections.HandleSubmit)
		api.Post("/reflection-feedback", reflections.HandleFeedback)

		api.Post("/chat/send", chat.HandleSend)
	}
	if cfg.BasePath == "" {
		r.Group(api)
	} else {
		r.Route(cfg.BasePath, api)
	}

	return r
}

func healthHandler(store Pinger, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.Health"

		if store != nil {
			if err := store.Ping(r.Context()); err != nil {
				logger.Warn("store ping failed", zap.String("op", op), zap.Error(err))
				writeJSON(w, logger, op, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
				return
			}
		}
		writeJSON(w, logger, op, http.StatusOK, map[string]string{"status": "ok"})
	}
}
