package services

import (
	"context"

	"gpu-benchmark-scraper/models"
	"gpu-benchmark-scraper/scraper/gpulist"
	"gpu-benchmark-scraper/storage"
	"gpu-benchmark-scraper/utils"
)

// RunScrape fetches the GPU list at url, cleans and ranks its rows and
// writes them to store. The store is only touched once every earlier step
// has succeeded; a failed fetch returns gpulist.ErrNoData.
func RunScrape(ctx context.Context, fetcher gpulist.Fetcher, url string, store storage.RecordWriter, logger *utils.Logger) ([]models.GpuRecord, error) {
	rows, err := gpulist.New(fetcher, url, logger).Scrape(ctx)
	if err != nil {
		return nil, err
	}

	ranked, err := Rank(NewCleaner(logger).Clean(rows))
	if err != nil {
		return nil, err
	}

	if err := store.Write(ranked); err != nil {
		return nil, err
	}
	return ranked, nil
}
