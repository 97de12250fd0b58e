package storage

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"strconv"
	"unicode/utf8"

	"gpu-benchmark-scraper/models"
)

// TextStore persists ranked records as one tuple per line.
type TextStore struct {
	path string
}

// NewTextStore returns a store backed by the file at path.
func NewTextStore(path string) *TextStore {
	return &TextStore{path: path}
}

// Write creates or truncates the file and writes records in the given order.
func (s *TextStore) Write(records []models.GpuRecord) error {
	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("text store: create %q: %w", s.path, err)
	}

	w := bufio.NewWriter(f)
	for _, r := range records {
		if _, err := w.WriteString(EncodeRecord(r) + "\n"); err != nil {
			_ = f.Close()
			return fmt.Errorf("text store: write %q: %w", s.path, err)
		}
	}
	if err := w.Flush(); err != nil {
		_ = f.Close()
		return fmt.Errorf("text store: flush %q: %w", s.path, err)
	}
	return f.Close()
}

// Load reads every line back as a Sample. Bytes outside 7-bit ASCII are
// dropped before parsing. Any bad line fails the whole load.
func (s *TextStore) Load() ([]models.Sample, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("text store: read %q: %w", s.path, err)
	}

	scanner := bufio.NewScanner(bytes.NewReader(dropNonASCII(data)))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var samples []models.Sample
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		sample, err := parseSample(scanner.Text())
		if err != nil {
			return nil, fmt.Errorf("text store: %s line %d: %w", s.path, lineNo, err)
		}
		samples = append(samples, sample)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("text store: scan %q: %w", s.path, err)
	}
	return samples, nil
}

func parseSample(line string) (models.Sample, error) {
	rec, err := ParseRecord(line)
	if err != nil {
		return models.Sample{}, err
	}
	return SampleOf(rec)
}

// SampleOf converts a stored record to numeric form.
func SampleOf(rec models.GpuRecord) (models.Sample, error) {
	benchmark, err := strconv.ParseFloat(rec.Benchmark, 64)
	if err != nil {
		return models.Sample{}, fmt.Errorf("benchmark of %q: %w", rec.Name, err)
	}
	price, err := strconv.ParseFloat(rec.Price, 64)
	if err != nil {
		return models.Sample{}, fmt.Errorf("price of %q: %w", rec.Name, err)
	}

	return models.Sample{Name: rec.Name, Benchmark: benchmark, Price: price}, nil
}

// SamplesOf converts records in order, failing on the first bad one.
func SamplesOf(records []models.GpuRecord) ([]models.Sample, error) {
	samples := make([]models.Sample, 0, len(records))
	for _, rec := range records {
		s, err := SampleOf(rec)
		if err != nil {
			return nil, err
		}
		samples = append(samples, s)
	}
	return samples, nil
}

func dropNonASCII(data []byte) []byte {
	out := make([]byte, 0, len(data))
	for _, c := range data {
		if c < utf8.RuneSelf {
			out = append(out, c)
		}
	}
	return out
}
