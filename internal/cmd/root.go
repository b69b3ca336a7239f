package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"owlplanner/internal/config"
	"owlplanner/internal/logger"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "owlplanner",
	Short: "Conflict-free course schedule planner",
	Long:  `owlplanner assembles conflict-free weekly class schedules from catalog data and ranks them by desirability.`,
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "configuration file (json or yaml)")
}

// loadConfig reads the configured file, falling back to defaults when
// no file is given.
func loadConfig() (*config.Config, error) {
	if cfgPath == "" {
		return config.Default(), nil
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

func setupLogging(cfg *config.Config) {
	logger.SetLevel(cfg.Logging.Level)
}
