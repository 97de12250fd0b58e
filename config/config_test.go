package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, key := range []string{"GPU_LIST_URL", "DATA_PATH", "FETCH_MODE", "ARCHIVE_DRIVER", "REPORT_TOP_N"} {
		t.Setenv(key, "")
	}

	cfg := FromEnv()
	require.Equal(t, DefaultSourceURL, cfg.SourceURL)
	require.Equal(t, DefaultDataPath, cfg.DataPath)
	require.Equal(t, "http", cfg.FetchMode)
	require.Equal(t, 10, cfg.ReportTopN)

	driver, dsn := cfg.ArchiveTarget()
	require.Empty(t, driver)
	require.Empty(t, dsn)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("GPU_LIST_URL", "http://localhost:8080/list")
	t.Setenv("DATA_PATH", "/tmp/out.txt")
	t.Setenv("FETCH_MODE", "Browser")
	t.Setenv("REPORT_TOP_N", "3")
	t.Setenv("PLOT_WIDTH", "not-a-number")

	cfg := FromEnv()
	require.Equal(t, "http://localhost:8080/list", cfg.SourceURL)
	require.Equal(t, "/tmp/out.txt", cfg.DataPath)
	require.Equal(t, "browser", cfg.FetchMode)
	require.Equal(t, 3, cfg.ReportTopN)
	require.Equal(t, 1100, cfg.PlotWidth)
}

func TestArchiveTarget(t *testing.T) {
	tests := []struct {
		name       string
		cfg        Config
		wantDriver string
		wantDSN    string
	}{
		{
			name:       "postgres from parts",
			cfg:        Config{ArchiveDriver: "postgres", PostgresHost: "db", PostgresPort: "5432", PostgresUser: "u", PostgresPassword: "p", PostgresDB: "d", PostgresSSLMode: "disable"},
			wantDriver: "postgres",
			wantDSN:    "host=db port=5432 user=u password=p dbname=d sslmode=disable",
		},
		{
			name:       "postgres explicit dsn",
			cfg:        Config{ArchiveDriver: "postgres", ArchiveDSN: "postgres://x"},
			wantDriver: "postgres",
			wantDSN:    "postgres://x",
		},
		{
			name:       "sqlite default file",
			cfg:        Config{ArchiveDriver: "sqlite"},
			wantDriver: "sqlite",
			wantDSN:    "gpu_prices.db",
		},
		{
			name: "unknown driver disables archive",
			cfg:  Config{ArchiveDriver: "mysql", ArchiveDSN: "x"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			driver, dsn := tt.cfg.ArchiveTarget()
			require.Equal(t, tt.wantDriver, driver)
			require.Equal(t, tt.wantDSN, dsn)
		})
	}
}
