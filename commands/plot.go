package commands

import (
	"github.com/spf13/cobra"

	"gpu-benchmark-scraper/models"
	"gpu-benchmark-scraper/plot"
	"gpu-benchmark-scraper/plot/gui"
	"gpu-benchmark-scraper/services"
	"gpu-benchmark-scraper/storage"
)

var (
	plotIn  *string
	plotPNG *string
)

func init() {
	plotIn = plotCmd.Flags().String("in", "", "The records file to plot (default DATA_PATH).")
	plotPNG = plotCmd.Flags().String("png", "", "Write the scatter to this PNG file instead of opening a window.")
	rootCmd.AddCommand(plotCmd)
}

// loadScored reads the records file and computes a value score per card.
func loadScored(path string) []models.ScoredGPU {
	samples, err := storage.NewTextStore(path).Load()
	if err != nil {
		fatal("Load failed: %v", err)
	}
	cards, err := services.ScoreAll(samples)
	if err != nil {
		fatal("Scoring failed: %v", err)
	}
	logger.Info("Loaded %d cards from %s", len(cards), path)
	return cards
}

var plotCmd = &cobra.Command{
	Use:   "plot [--in <path/to/records.txt>] [--png <path/to/out.png>]",
	Short: "Plots value score against benchmark with a hover tooltip per card.",
	Run: func(cmd *cobra.Command, args []string) {
		cards := loadScored(orDefault(*plotIn, cfg.DataPath))

		if *plotPNG == "" {
			gui.Show(cards, cfg.PlotWidth, cfg.PlotHeight)
			return
		}

		if err := plot.WritePNGFile(*plotPNG, cards, cfg.PlotWidth, cfg.PlotHeight); err != nil {
			fatal("PNG export failed: %v", err)
		}
		logger.Info("Scatter written to %s", *plotPNG)
	},
}
