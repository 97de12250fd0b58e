// Package gpulist scrapes the GPU benchmark and price table from
// videocardbenchmark.net.
package gpulist

import (
	"context"
	"errors"
	"fmt"

	"gpu-benchmark-scraper/models"
	"gpu-benchmark-scraper/utils"
)

// ErrNoData is returned when the fetcher produced nothing to parse.
var ErrNoData = errors.New("gpulist: no data available")

// Scraper drives one fetch followed by one extraction.
type Scraper struct {
	fetcher Fetcher
	url     string
	logger  *utils.Logger
}

// New creates a Scraper that reads the table at url through fetcher.
func New(fetcher Fetcher, url string, logger *utils.Logger) *Scraper {
	return &Scraper{fetcher: fetcher, url: url, logger: logger}
}

// Scrape fetches the page and returns its raw table rows.
func (s *Scraper) Scrape(ctx context.Context) ([]models.RawRow, error) {
	s.logger.Info("[gpulist] Fetching %s", s.url)

	raw := s.fetcher.Fetch(ctx, s.url)
	if raw == nil {
		return nil, ErrNoData
	}
	s.logger.Debug("[gpulist] Received %d bytes", len(raw))

	rows, err := Extract(raw)
	if err != nil {
		return nil, fmt.Errorf("extract %s: %w", s.url, err)
	}

	s.logger.Info("[gpulist] Extracted %d table rows", len(rows))
	return rows, nil
}
