package services

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"gpu-benchmark-scraper/models"
	"gpu-benchmark-scraper/scraper/gpulist"
	"gpu-benchmark-scraper/storage"
	"gpu-benchmark-scraper/utils"
)

type pageFetcher struct {
	body []byte
}

func (p pageFetcher) Fetch(context.Context, string) []byte { return p.body }

func gpuPage(rows string) []byte {
	return []byte(`<html><body><table id="cputable">
<thead><tr><th>Videocard</th><th>Mark</th><th>Rank</th><th>Value</th><th>Price</th></tr></thead>
<tbody>` + rows + `</tbody></table></body></html>`)
}

func TestRunScrapeUnreachableHostWritesNothing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	var out, errOut bytes.Buffer
	logger := utils.NewLoggerWithWriters(&out, &errOut)
	path := filepath.Join(t.TempDir(), "gpu_benchmark_price.txt")

	ranked, err := RunScrape(context.Background(), gpulist.NewHTTPFetcher(logger), url, storage.NewTextStore(path), logger)

	require.ErrorIs(t, err, gpulist.ErrNoData)
	require.Nil(t, ranked)
	require.Equal(t, 1, strings.Count(errOut.String(), "\n"), "error output: %q", errOut.String())
	_, statErr := os.Stat(path)
	require.ErrorIs(t, statErr, os.ErrNotExist)
}

func TestRunScrapeWritesRankedRecords(t *testing.T) {
	page := gpuPage(`
<tr><td>Card C</td><td>9,800</td><td>3</td><td>65</td><td>$150</td></tr>
<tr><td>Card B</td><td>22,500</td><td>2</td><td>NA</td><td>NA</td></tr>
<tr><td>Card A</td><td>15,000</td><td>1</td><td>75</td><td>$200</td></tr>`)
	path := filepath.Join(t.TempDir(), "gpu_benchmark_price.txt")

	ranked, err := RunScrape(context.Background(), pageFetcher{body: page}, "http://gpus.invalid", storage.NewTextStore(path), newTestLogger())
	require.NoError(t, err)
	require.Equal(t, []models.GpuRecord{
		{Name: "Card A", Benchmark: "15000", Price: "200"},
		{Name: "Card C", Benchmark: "9800", Price: "150"},
	}, ranked)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "('Card A', '15000', '200')\n('Card C', '9800', '150')\n", string(data))
}

func TestRunScrapeBadBenchmarkWritesNothing(t *testing.T) {
	page := gpuPage(`<tr><td>Card X</td><td>NA</td><td>1</td><td>1</td><td>$100</td></tr>`)
	path := filepath.Join(t.TempDir(), "gpu_benchmark_price.txt")

	_, err := RunScrape(context.Background(), pageFetcher{body: page}, "http://gpus.invalid", storage.NewTextStore(path), newTestLogger())
	require.ErrorContains(t, err, `"Card X"`)
	_, statErr := os.Stat(path)
	require.ErrorIs(t, statErr, os.ErrNotExist)
}
