package commands

import (
	"github.com/spf13/cobra"

	"gpu-benchmark-scraper/models"
	"gpu-benchmark-scraper/services"
	"gpu-benchmark-scraper/storage"
)

var (
	reportIn          *string
	reportTop         *int
	reportCSV         *string
	reportFromArchive *bool
)

func init() {
	reportIn = reportCmd.Flags().String("in", "", "The records file to summarize (default DATA_PATH).")
	reportTop = reportCmd.Flags().Int("top", 0, "How many cards to list by value score (default REPORT_TOP_N).")
	reportCSV = reportCmd.Flags().String("csv", "", "Also export every scored card to this CSV file.")
	reportFromArchive = reportCmd.Flags().Bool("from-archive", false, "Read the latest archived snapshot instead of the records file.")
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report [--in <path/to/records.txt>] [--top <n>] [--csv <path/to/out.csv>] [--from-archive]",
	Short: "Prints a value summary of the scraped cards.",
	Run: func(cmd *cobra.Command, args []string) {
		var cards []models.ScoredGPU
		if *reportFromArchive {
			cards = loadArchivedScored(cmd)
		} else {
			cards = loadScored(orDefault(*reportIn, cfg.DataPath))
		}

		topN := *reportTop
		if topN <= 0 {
			topN = cfg.ReportTopN
		}

		insightSvc := services.NewInsightService(logger)
		insightSvc.Print(insightSvc.Generate(cards, topN))

		if *reportCSV == "" {
			return
		}
		w, err := storage.NewCSVWriter(*reportCSV)
		if err != nil {
			fatal("Failed to create CSV writer: %v", err)
		}
		if err := w.WriteScored(cards); err != nil {
			w.Close()
			fatal("CSV write failed: %v", err)
		}
		if err := w.Close(); err != nil {
			fatal("CSV write failed: %v", err)
		}
		logger.Info("Scored cards saved to %s", *reportCSV)
	},
}

func loadArchivedScored(cmd *cobra.Command) []models.ScoredGPU {
	driver, dsn := cfg.ArchiveTarget()
	if driver == "" {
		fatal("No archive configured (set ARCHIVE_DRIVER)")
	}

	archive, err := storage.OpenArchive(driver, dsn, archiveRetry())
	if err != nil {
		fatal("Failed to open %s archive: %v", driver, err)
	}
	defer archive.Close()

	scrapedAt, records, ok, err := archive.LatestSnapshot(cmd.Context())
	if err != nil {
		fatal("Archive read failed: %v", err)
	}
	if !ok {
		fatal("Archive holds no snapshots")
	}

	samples, err := storage.SamplesOf(records)
	if err != nil {
		fatal("Archived snapshot is unreadable: %v", err)
	}
	cards, err := services.ScoreAll(samples)
	if err != nil {
		fatal("Scoring failed: %v", err)
	}
	logger.Info("Loaded %d cards from snapshot taken %s", len(cards), scrapedAt.Local().Format("2006-01-02 15:04"))
	return cards
}
