package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gpu-benchmark-scraper/config"
	"gpu-benchmark-scraper/utils"
)

var (
	cfg    *config.Config
	logger *utils.Logger
)

var rootCmd = &cobra.Command{
	Use:   "gpubench",
	Short: "gpubench scrapes GPU benchmark scores and prices and plots their value.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg = config.Load()
		logger = utils.NewLogger()
		logger.SetLevel(utils.ParseLevel(cfg.LogLevel))
	},
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func fatal(format string, args ...any) {
	logger.Error(format, args...)
	os.Exit(1)
}

// orDefault returns flag unless it is empty.
func orDefault(flag, fallback string) string {
	if flag == "" {
		return fallback
	}
	return flag
}
