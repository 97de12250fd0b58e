package services

import (
	"fmt"
	"sort"
	"strconv"

	"gpu-benchmark-scraper/models"
)

// Rank returns the records sorted by benchmark score, highest first. The
// benchmark must parse as a base-10 integer; ties keep their input order.
func Rank(records []models.GpuRecord) ([]models.GpuRecord, error) {
	type keyed struct {
		score  int
		record models.GpuRecord
	}

	items := make([]keyed, len(records))
	for i, r := range records {
		score, err := strconv.Atoi(r.Benchmark)
		if err != nil {
			return nil, fmt.Errorf("rank: benchmark of %q is not an integer: %w", r.Name, err)
		}
		items[i] = keyed{score: score, record: r}
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].score > items[j].score
	})

	ranked := make([]models.GpuRecord, len(items))
	for i, it := range items {
		ranked[i] = it.record
	}
	return ranked, nil
}
