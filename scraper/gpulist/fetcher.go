package gpulist

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"gpu-benchmark-scraper/utils"
)

// Fetcher retrieves the raw page. A nil result means "no data available";
// failures are logged by the fetcher and never returned.
type Fetcher interface {
	Fetch(ctx context.Context, url string) []byte
}

// HTTPFetcher issues a single GET per call. There is no retry and no
// timeout beyond the transport defaults.
type HTTPFetcher struct {
	http   *resty.Client
	logger *utils.Logger
}

func NewHTTPFetcher(logger *utils.Logger) *HTTPFetcher {
	client := resty.New()
	client.SetLogger(restyLogger{logger: logger})
	return &HTTPFetcher{http: client, logger: logger}
}

func (f *HTTPFetcher) Fetch(ctx context.Context, url string) []byte {
	res, err := f.http.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		Get(url)
	if err != nil {
		f.logger.Error("[fetcher] Error during requests to %s : %v", url, err)
		return nil
	}

	body := res.RawBody()
	if body == nil {
		return nil
	}
	defer body.Close()

	if !IsGoodResponse(res.StatusCode(), res.Header().Get("Content-Type")) {
		f.logger.Warn("[fetcher] Rejected response from %s: status %d, content-type %q",
			url, res.StatusCode(), res.Header().Get("Content-Type"))
		return nil
	}

	data, err := io.ReadAll(body)
	if err != nil {
		f.logger.Error("[fetcher] Error during requests to %s : %v", url, err)
		return nil
	}
	return data
}

// IsGoodResponse reports whether a response looks like an HTML page.
func IsGoodResponse(status int, contentType string) bool {
	return status == http.StatusOK &&
		contentType != "" &&
		strings.Contains(strings.ToLower(contentType), "html")
}

// restyLogger routes resty's internal messages through the app logger.
// Client-side errors are reported by Fetch itself, so resty's own errors
// are demoted to warnings to keep one error line per failure.
type restyLogger struct {
	logger *utils.Logger
}

func (l restyLogger) Errorf(format string, v ...interface{}) {
	l.logger.Warn("[resty] "+format, v...)
}

func (l restyLogger) Warnf(format string, v ...interface{}) {
	l.logger.Warn("[resty] "+format, v...)
}

func (l restyLogger) Debugf(format string, v ...interface{}) {
	l.logger.Debug("[resty] "+format, v...)
}
