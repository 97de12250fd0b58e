package storage

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"gpu-benchmark-scraper/models"
	"gpu-benchmark-scraper/utils"
)

func openTestArchive(t *testing.T) *SQLArchive {
	t.Helper()
	archive, err := OpenArchive("sqlite", ":memory:", &utils.RetryConfig{MaxAttempts: 1})
	require.NoError(t, err)
	t.Cleanup(func() { _ = archive.Close() })
	return archive
}

func TestArchiveEmpty(t *testing.T) {
	archive := openTestArchive(t)

	_, records, ok, err := archive.LatestSnapshot(context.Background())
	require.NoError(t, err)
	require.False(t, ok)
	require.Empty(t, records)
}

func TestArchiveLatestSnapshot(t *testing.T) {
	archive := openTestArchive(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	first := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	second := first.Add(24 * time.Hour)

	require.NoError(t, archive.WriteSnapshot(ctx, first, []models.GpuRecord{
		{Name: "Old", Benchmark: "100", Price: "10"},
	}))
	require.NoError(t, archive.WriteSnapshot(ctx, second, []models.GpuRecord{
		{Name: "Card A", Benchmark: "15000", Price: "200"},
		{Name: "Card C", Benchmark: "9800", Price: "150"},
	}))

	scrapedAt, records, ok, err := archive.LatestSnapshot(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	require.True(t, second.Equal(scrapedAt))
	require.Equal(t, []models.GpuRecord{
		{Name: "Card A", Benchmark: "15000", Price: "200"},
		{Name: "Card C", Benchmark: "9800", Price: "150"},
	}, records)

	n, err := archive.SnapshotCount(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, n)
}

func TestArchiveEmptySnapshotBecomesLatest(t *testing.T) {
	archive := openTestArchive(t)
	ctx := context.Background()

	first := time.Unix(0, 100)
	second := time.Unix(0, 200)
	require.NoError(t, archive.WriteSnapshot(ctx, first, []models.GpuRecord{
		{Name: "Old", Benchmark: "1", Price: "1"},
	}))
	require.NoError(t, archive.WriteSnapshot(ctx, second, nil))

	scrapedAt, records, ok, err := archive.LatestSnapshot(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	require.True(t, second.Equal(scrapedAt))
	require.Empty(t, records)

	n, err := archive.SnapshotCount(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, n)
}

func TestArchiveBatchesKeepRankOrder(t *testing.T) {
	archive := openTestArchive(t)
	ctx := context.Background()

	var records []models.GpuRecord
	for i := 0; i < 2*archiveBatchSize+7; i++ {
		records = append(records, models.GpuRecord{
			Name:      fmt.Sprintf("Card %03d", i),
			Benchmark: fmt.Sprint(10000 - i),
			Price:     "100",
		})
	}
	require.NoError(t, archive.WriteSnapshot(ctx, time.Now(), records))

	_, got, ok, err := archive.LatestSnapshot(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, records, got)
}

func TestArchiveRejectsUnknownDriver(t *testing.T) {
	_, err := OpenArchive("mysql", "dsn", &utils.RetryConfig{MaxAttempts: 1})
	require.Error(t, err)
}
