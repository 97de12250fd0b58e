package storage

import (
	"context"
	"time"

	"gpu-benchmark-scraper/models"
)

// RecordWriter persists a ranked scrape result, replacing the previous one.
type RecordWriter interface {
	Write(records []models.GpuRecord) error
}

// SampleLoader reads a persisted scrape result back for analysis.
type SampleLoader interface {
	Load() ([]models.Sample, error)
}

// SnapshotWriter keeps a history of scrape results.
type SnapshotWriter interface {
	WriteSnapshot(ctx context.Context, scrapedAt time.Time, records []models.GpuRecord) error
	Close() error
}

// ScoredWriter exports scored cards in a tabular format.
type ScoredWriter interface {
	WriteScored(cards []models.ScoredGPU) error
	Close() error
}

var (
	_ RecordWriter   = (*TextStore)(nil)
	_ SampleLoader   = (*TextStore)(nil)
	_ SnapshotWriter = (*SQLArchive)(nil)
	_ ScoredWriter   = (*CSVWriter)(nil)
)
