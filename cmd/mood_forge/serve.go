package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"mood_forge/internal/ai"
	"mood_forge/internal/config"
	"mood_forge/internal/handlers"
	"mood_forge/internal/storage"
	"mood_forge/internal/usecases"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Long: `Run the HTTP API until SIGINT or SIGTERM.

Examples:
  # Serve with Postgres, applying pending migrations first
  mood_forge serve

  # Serve from memory, no database needed
  STORAGE_DRIVER=memory mood_forge serve --env-file dev.env`,
	RunE: runServe,
}

type stores struct {
	moods       usecases.MoodStore
	reflections usecases.ReflectionStore
	chats       usecases.ChatStore
	pinger      handlers.Pinger
	close       func()
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", zap.Error(err))
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, err := openStores(ctx, cfg, log)
	if err != nil {
		log.Error("unable to open store", zap.String("driver", cfg.StorageDriver), zap.Error(err))
		return err
	}
	defer st.close()

	gateway := ai.NewClient(ai.Config{
		ChatURL:               cfg.AI.ChatURL,
		SummaryURL:            cfg.AI.SummaryURL,
		MoodReflectionURL:     cfg.AI.MoodReflectionURL,
		ReflectionFeedbackURL: cfg.AI.ReflectionFeedbackURL,
		Timeout:               cfg.AI.Timeout,
		RateLimit:             cfg.AI.RateLimit,
		RateBurst:             cfg.AI.RateBurst,
	})

	router := handlers.NewRouter(handlers.RouterConfig{
		BasePath:       cfg.HTTPBasePath,
		AllowedOrigins: cfg.CORSAllowedOrigins,
		Gate:           usecases.NewSubmissionGate(st.moods, st.reflections, log),
		Aggregation:    usecases.NewAggregationService(st.moods, log),
		Feedback:       usecases.NewFeedbackOrchestrator(st.moods, st.chats, gateway, log),
		Store:          st.pinger,
		Logger:         log,
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadTimeout:       cfg.HTTPReadTimeout,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      cfg.HTTPWriteTimeout,
		ErrorLog:          zap.NewStdLog(log.Named("http")),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("listening", zap.String("addr", cfg.HTTPAddr), zap.String("base_path", cfg.HTTPBasePath))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down", zap.Duration("timeout", cfg.ShutdownTimeout))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server stopped with error", zap.Error(err))
		return err
	}
	log.Info("server stopped")
	return nil
}

func openStores(ctx context.Context, cfg *config.Config, log *zap.Logger) (*stores, error) {
	if cfg.StorageDriver == config.DriverMemory {
		log.Warn("using in-memory store, entries are lost on exit")
		mem := storage.NewMemoryStorage()
		return &stores{moods: mem, reflections: mem, chats: mem, pinger: mem, close: func() {}}, nil
	}

	pool, err := storage.Connect(ctx, cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}
	log.Info("connected to db")

	if cfg.AutoMigrate {
		if err := storage.MigrateUp(pool); err != nil {
			pool.Close()
			return nil, err
		}
		log.Info("migrations applied")
	}

	return &stores{
		moods:       storage.NewMoodStorage(pool),
		reflections: storage.NewReflectionStorage(pool),
		chats:       storage.NewChatStorage(pool),
		pinger:      pool,
		close:       pool.Close,
	}, nil
}
