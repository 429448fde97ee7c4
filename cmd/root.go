package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/example/ellinika/internal/config"
	"github.com/example/ellinika/internal/database"
	"github.com/example/ellinika/internal/logger"
	"github.com/spf13/cobra"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:   "ellinika",
	Short: "Spaced-repetition scheduling for learning Greek",
	Long: `Ellinika schedules Greek vocabulary reviews with SM-2 and records
practice sessions, attempts, weak grammatical areas and streaks.`,
	SilenceUsage: true,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "path to a YAML config file (default ./config.yaml if present)")
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// bootstrap loads configuration, sets up logging and opens the migrated database
func bootstrap() (*config.Config, *slog.Logger, *database.DB, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, nil, nil, err
	}
	log := logger.Setup(cfg.Server)

	db, err := database.Open(cfg.Database.Driver, cfg.Database.DSN)
	if err != nil {
		return nil, nil, nil, err
	}
	return cfg, log, db, nil
}
