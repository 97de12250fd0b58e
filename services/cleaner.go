package services

import (
	"regexp"

	"gpu-benchmark-scraper/models"
	"gpu-benchmark-scraper/utils"
)

// unavailablePrice is the literal the source table shows for unpriced cards.
const unavailablePrice = "NA"

// nonNumericRegexp matches every character that cannot appear in a number.
var nonNumericRegexp = regexp.MustCompile(`[^0-9.]`)

// Cleaner turns raw table rows into GpuRecords.
type Cleaner struct {
	logger *utils.Logger
}

// NewCleaner creates a Cleaner with the given logger.
func NewCleaner(logger *utils.Logger) *Cleaner {
	return &Cleaner{logger: logger}
}

// Clean drops rows without a price and strips benchmark and price down to
// digits and dots. The name is kept as-is and row order is preserved.
//
// Only the price column is checked for "NA"; a non-numeric benchmark is
// left for Rank to reject.
func (c *Cleaner) Clean(raw []models.RawRow) []models.GpuRecord {
	result := make([]models.GpuRecord, 0, len(raw))

	for _, r := range raw {
		if r.Price == unavailablePrice {
			c.logger.Debug("[cleaner] Dropping unpriced card: %s", r.Name)
			continue
		}

		result = append(result, models.GpuRecord{
			Name:      r.Name,
			Benchmark: StripNonNumeric(r.Benchmark),
			Price:     StripNonNumeric(r.Price),
		})
	}

	c.logger.Info("[cleaner] Cleaned %d → %d rows (dropped %d)",
		len(raw), len(result), len(raw)-len(result))
	return result
}

// StripNonNumeric removes every character that is not a digit or a dot.
func StripNonNumeric(s string) string {
	return nonNumericRegexp.ReplaceAllString(s, "")
}
