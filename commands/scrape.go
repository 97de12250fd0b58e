package commands

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/spf13/cobra"

	"gpu-benchmark-scraper/models"
	"gpu-benchmark-scraper/scraper/gpulist"
	"gpu-benchmark-scraper/services"
	"gpu-benchmark-scraper/storage"
	"gpu-benchmark-scraper/utils"
)

var (
	scrapeURL *string
	scrapeOut *string
)

func init() {
	scrapeURL = scrapeCmd.Flags().String("url", "", "The GPU list page to scrape (default GPU_LIST_URL).")
	scrapeOut = scrapeCmd.Flags().String("out", "", "The file to write ranked records to (default DATA_PATH).")
	rootCmd.AddCommand(scrapeCmd)
}

func newFetcher() gpulist.Fetcher {
	if cfg.FetchMode == "browser" {
		return gpulist.NewBrowserFetcher(cfg.ChromeBin, logger)
	}
	return gpulist.NewHTTPFetcher(logger)
}

var scrapeCmd = &cobra.Command{
	Use:   "scrape [--url <page>] [--out <path/to/records.txt>]",
	Short: "Scrapes benchmark scores and prices and writes them ranked by benchmark.",
	Run: func(cmd *cobra.Command, args []string) {
		url := orDefault(*scrapeURL, cfg.SourceURL)
		out := orDefault(*scrapeOut, cfg.DataPath)

		logger.Info("=== GPU scrape starting ===")
		t1 := time.Now()

		ranked, err := services.RunScrape(cmd.Context(), newFetcher(), url, storage.NewTextStore(out), logger)
		if errors.Is(err, gpulist.ErrNoData) {
			// the fetcher has already logged the failure
			logger.Warn("no data")
			os.Exit(1)
		}
		if err != nil {
			fatal("Scrape failed: %v", err)
		}
		logger.Info("Wrote %d records to %s in %.1fs", len(ranked), out, time.Since(t1).Seconds())

		archiveSnapshot(cmd.Context(), t1, ranked)
	},
}

func archiveRetry() *utils.RetryConfig {
	return &utils.RetryConfig{
		MaxAttempts: cfg.MaxRetries,
		BaseDelay:   2 * time.Second,
		Logger:      logger,
	}
}

// archiveSnapshot stores the ranked records in the configured archive, if any.
// Failures are logged; the text file already holds the result.
func archiveSnapshot(ctx context.Context, scrapedAt time.Time, ranked []models.GpuRecord) {
	driver, dsn := cfg.ArchiveTarget()
	if driver == "" {
		return
	}

	archive, err := storage.OpenArchive(driver, dsn, archiveRetry())
	if err != nil {
		logger.Error("Failed to open %s archive: %v", driver, err)
		return
	}
	defer archive.Close()

	if err := archive.WriteSnapshot(ctx, scrapedAt, ranked); err != nil {
		logger.Error("Archive write failed: %v", err)
		return
	}
	logger.Info("Snapshot of %d records stored in %s archive", len(ranked), driver)

	if n, err := archive.SnapshotCount(ctx); err == nil {
		logger.Debug("[archive] %d snapshots stored", n)
	}
}
