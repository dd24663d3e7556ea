package main

import (
	"mood_forge/internal/storage"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var downSteps int

func init() {
	migrateDownCmd.Flags().IntVar(&downSteps, "steps", 1, "number of migrations to roll back")
	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateDownCmd)
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage the Postgres schema",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withPool(cmd, "up", storage.MigrateUp)
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back migrations",
	Long: `Roll back the most recent migrations.

Examples:
  # Undo the last migration
  mood_forge migrate down

  # Undo the last two
  mood_forge migrate down --steps 2`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withPool(cmd, "down", func(pool *pgxpool.Pool) error {
			return storage.MigrateDown(pool, downSteps)
		})
	},
}

func withPool(cmd *cobra.Command, direction string, fn func(*pgxpool.Pool) error) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	pool, err := storage.Connect(cmd.Context(), cfg.PostgresDSN)
	if err != nil {
		log.Error("unable to connect to db", zap.Error(err))
		return err
	}
	defer pool.Close()

	if err := fn(pool); err != nil {
		log.Error("migration failed", zap.String("direction", direction), zap.Error(err))
		return err
	}
	log.Info("migration finished", zap.String("direction", direction))
	return nil
}
