package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lembzg/Infrastructure-Allocation-Agent/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "allocation-agent",
	Short: "Capital-allocation decision support",
	Long:  "Scores candidate companies from financial records, news sentiment, and a client memo, then emits a ranked recommendation with a calibrated confidence.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
