package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/carbon-cli/internal/catalog"
	"github.com/sells-group/carbon-cli/internal/config"
	"github.com/sells-group/carbon-cli/internal/emission"
)

var (
	cfg         *config.Config
	catalogPath string
)

var rootCmd = &cobra.Command{
	Use:   "carbon-cli",
	Short: "Construction project carbon footprint calculator",
	Long:  "Computes kg CO2e per category for construction projects from an emission factor catalog, and exports or imports the report as XLSX or CSV.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if catalogPath != "" {
			cfg.Catalog.Path = catalogPath
		}

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

// newCalculator loads the configured catalog.
func newCalculator() (*emission.Calculator, error) {
	cat, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		return nil, err
	}
	if cfg.Catalog.Path != "" {
		zap.L().Debug("loaded emission factor catalog", zap.String("path", cfg.Catalog.Path))
	}
	return emission.NewCalculator(cat), nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "emission factor catalog YAML (default: built-in)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
