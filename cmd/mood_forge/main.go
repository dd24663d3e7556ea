// Package main runs the mood_forge HTTP service and its maintenance commands.
package main

import (
	"fmt"
	"os"

	"mood_forge/internal/config"
	"mood_forge/internal/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// envFile is the dotenv file loaded before the environment is read
	envFile string
	version = "dev"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mood_forge",
	Short: "Mood journal backend with AI feedback",
	Long: `mood_forge records daily moods and reflection forms, serves mood history
for charts, and asks an external inference service for chat replies, weekly
summaries and reflective feedback.`,
	Version:      version,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file to load before reading the environment")
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
}

// setup loads configuration and builds the process logger.
func setup() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, nil, err
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, nil, fmt.Errorf("build logger: %w", err)
	}
	return cfg, log, nil
}
