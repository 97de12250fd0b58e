package gpulist

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/PuerkitoBio/goquery"

	"gpu-benchmark-scraper/models"
)

const (
	tableSelector = "table#cputable"

	nameColumn      = 0
	benchmarkColumn = 1
	priceColumn     = 4
	minCells        = priceColumn + 1
)

// Structural errors mean the page layout changed; extraction stops.
var (
	ErrTableNotFound = errors.New("gpulist: table #cputable not found")
	ErrBodyNotFound  = errors.New("gpulist: table body not found")
	ErrTooFewCells   = errors.New("gpulist: row has too few cells")
)

// Extract parses the page and returns the name, benchmark and price cell
// texts of every row of the GPU table, in document order.
//
// The HTML5 parser inserts an implicit tbody around rows written directly
// inside the table, so such tables parse normally. ErrBodyNotFound is only
// returned for a table that has no rows at all.
func Extract(raw []byte) ([]models.RawRow, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("gpulist: parse html: %w", err)
	}

	table := doc.Find(tableSelector).First()
	if table.Length() == 0 {
		return nil, ErrTableNotFound
	}

	body := table.Find("tbody").First()
	if body.Length() == 0 {
		return nil, ErrBodyNotFound
	}

	var (
		rows   []models.RawRow
		rowErr error
	)
	body.Find("tr").EachWithBreak(func(i int, tr *goquery.Selection) bool {
		cells := tr.Find("td")
		if cells.Length() < minCells {
			rowErr = fmt.Errorf("%w: row %d has %d, need %d", ErrTooFewCells, i, cells.Length(), minCells)
			return false
		}

		rows = append(rows, models.RawRow{
			Name:      cells.Eq(nameColumn).Text(),
			Benchmark: cells.Eq(benchmarkColumn).Text(),
			Price:     cells.Eq(priceColumn).Text(),
		})
		return true
	})
	if rowErr != nil {
		return nil, rowErr
	}

	return rows, nil
}
