package gpulist

import (
	"context"
	"os"
	"os/exec"

	"github.com/chromedp/chromedp"

	"gpu-benchmark-scraper/utils"
)

// BrowserFetcher loads the page in headless Chrome and returns the rendered
// document. It honours the same nil-on-failure contract as HTTPFetcher.
type BrowserFetcher struct {
	chromeBin string
	logger    *utils.Logger
}

// NewBrowserFetcher creates a BrowserFetcher. chromeBin may be empty, in
// which case well-known binary names and paths are searched.
func NewBrowserFetcher(chromeBin string, logger *utils.Logger) *BrowserFetcher {
	return &BrowserFetcher{chromeBin: chromeBin, logger: logger}
}

func (b *BrowserFetcher) Fetch(ctx context.Context, url string) []byte {
	chromeBin := findChromeBinary(b.chromeBin)
	b.logger.Info("[browser] Using browser binary: %s", chromeBin)

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.UserAgent("Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 "+
			"(KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"),
	)
	if chromeBin != "" {
		opts = append(opts, chromedp.ExecPath(chromeBin))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	// Suppress chromedp log noise
	tabCtx, cancelTab := chromedp.NewContext(allocCtx, chromedp.WithLogf(func(string, ...interface{}) {}))
	defer cancelTab()

	var html string
	err := chromedp.Run(tabCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.OuterHTML("html", &html, chromedp.ByQuery),
	)
	if err != nil {
		b.logger.Error("[browser] Error during requests to %s : %v", url, err)
		return nil
	}
	if html == "" {
		return nil
	}
	return []byte(html)
}

// findChromeBinary locates a Chrome/Chromium binary, preferring the
// configured path.
func findChromeBinary(configured string) string {
	if configured != "" {
		return configured
	}
	if bin := os.Getenv("CHROME_BIN"); bin != "" {
		return bin
	}

	names := []string{"google-chrome-stable", "google-chrome", "chromium", "chromium-browser"}
	for _, name := range names {
		if path, err := exec.LookPath(name); err == nil {
			return path
		}
	}

	paths := []string{
		"/usr/bin/google-chrome-stable",
		"/usr/bin/google-chrome",
		"/usr/bin/chromium-browser",
		"/usr/bin/chromium",
		"/snap/bin/chromium",
		"/opt/google/chrome/google-chrome",
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	return ""
}
