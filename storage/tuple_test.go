package storage

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"gpu-benchmark-scraper/models"
)

func TestEncodeRecord(t *testing.T) {
	tests := []struct {
		name string
		in   models.GpuRecord
		want string
	}{
		{
			name: "plain",
			in:   models.GpuRecord{Name: "GeForce RTX 3080", Benchmark: "17435", Price: "699"},
			want: `('GeForce RTX 3080', '17435', '699')`,
		},
		{
			name: "single quote switches to double quotes",
			in:   models.GpuRecord{Name: "Radeon 'Pro'", Benchmark: "1", Price: "2"},
			want: `("Radeon 'Pro'", '1', '2')`,
		},
		{
			name: "both quotes escape the single quote",
			in:   models.GpuRecord{Name: `It's "fast"`, Benchmark: "1", Price: "2"},
			want: `('It\'s "fast"', '1', '2')`,
		},
		{
			name: "backslash and control characters",
			in:   models.GpuRecord{Name: "a\\b\tc\nd\x01", Benchmark: "1", Price: "2"},
			want: `('a\\b\tc\nd\x01', '1', '2')`,
		},
		{
			name: "empty fields",
			in:   models.GpuRecord{Name: "x", Benchmark: "", Price: ""},
			want: `('x', '', '')`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, EncodeRecord(tt.in))
		})
	}
}

func TestParseRecordRoundTrip(t *testing.T) {
	records := []models.GpuRecord{
		{Name: "GeForce RTX 3080", Benchmark: "17435", Price: "699"},
		{Name: "Radeon 'Pro'", Benchmark: "1", Price: "2.5"},
		{Name: `It's "fast"`, Benchmark: "1", Price: "2"},
		{Name: "a\\b\tc\nd\x01\x7f", Benchmark: "", Price: "0"},
		{Name: "GeForce GTX", Benchmark: "10", Price: "20"},
	}

	for _, r := range records {
		got, err := ParseRecord(EncodeRecord(r))
		require.NoError(t, err, "record %+v", r)
		require.Equal(t, r, got)
	}
}

func TestParseRecordAcceptsLiteralVariants(t *testing.T) {
	tests := []struct {
		line string
		want models.GpuRecord
	}{
		{`("A", "1", "2")`, models.GpuRecord{Name: "A", Benchmark: "1", Price: "2"}},
		{`  ( 'A' ,'1','2', )  `, models.GpuRecord{Name: "A", Benchmark: "1", Price: "2"}},
		{"('A', '1', '2')\r", models.GpuRecord{Name: "A", Benchmark: "1", Price: "2"}},
		{`('caf\xe9', '1', '2')`, models.GpuRecord{Name: "café", Benchmark: "1", Price: "2"}},
		{`('™', '1', '2')`, models.GpuRecord{Name: "™", Benchmark: "1", Price: "2"}},
		{`('a\qb', '1', '2')`, models.GpuRecord{Name: `a\qb`, Benchmark: "1", Price: "2"}},
	}

	for _, tt := range tests {
		got, err := ParseRecord(tt.line)
		require.NoError(t, err, "line %q", tt.line)
		require.Equal(t, tt.want, got, "line %q", tt.line)
	}
}

func TestParseRecordRejectsMalformed(t *testing.T) {
	lines := []string{
		``,
		`['A', '1', '2']`,
		`('A', '1')`,
		`('A', '1', '2', '3')`,
		`('A', 1, '2')`,
		`('A', '1', '2'`,
		`('A, '1', '2')`,
		`('A', '1', '2') + ('B',)`,
		`__import__('os')`,
		`('A', '1', '\x4')`,
	}

	for _, line := range lines {
		_, err := ParseRecord(line)
		require.Error(t, err, "line %q", line)
		require.True(t, errors.Is(err, ErrMalformedRecord), "line %q: %v", line, err)
	}
}
