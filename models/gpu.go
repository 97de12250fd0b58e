package models

// RawRow holds the unprocessed cell texts of one row of the GPU list table.
// Nothing has been trimmed or filtered yet.
type RawRow struct {
	Name      string
	Benchmark string
	Price     string
}

// GpuRecord is a cleaned row: benchmark and price contain only digits and dots.
// This is the triple persisted one per line to the dataset file.
type GpuRecord struct {
	Name      string
	Benchmark string
	Price     string
}

// Sample is a GpuRecord read back from disk with its numeric fields parsed.
type Sample struct {
	Name      string
	Benchmark float64
	Price     float64
}

// ScoredGPU is a Sample with its value score (benchmark per unit of price).
type ScoredGPU struct {
	Sample
	ValueScore float64
}

// InsightReport holds the computed summary over a loaded dataset.
type InsightReport struct {
	TotalCards   int
	AveragePrice float64
	MinPrice     float64
	MaxPrice     float64
	BestValue    *ScoredGPU
	Fastest      *ScoredGPU
	TopByValue   []*ScoredGPU
}
