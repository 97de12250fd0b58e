package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DefaultSourceURL = "https://www.videocardbenchmark.net/gpu_list.php"
	DefaultDataPath  = "gpu_benchmark_price.txt"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	SourceURL string
	DataPath  string
	FetchMode string
	ChromeBin string

	ArchiveDriver    string
	ArchiveDSN       string
	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresSSLMode  string
	MaxRetries       int

	PlotWidth  int
	PlotHeight int
	ReportTopN int

	LogLevel string
}

// Load reads the .env file and returns a populated Config struct.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] No .env file found, falling back to system env vars")
	}
	return FromEnv()
}

// FromEnv builds a Config from the current process environment only.
func FromEnv() *Config {
	return &Config{
		SourceURL: getEnv("GPU_LIST_URL", DefaultSourceURL),
		DataPath:  getEnv("DATA_PATH", DefaultDataPath),
		FetchMode: strings.ToLower(getEnv("FETCH_MODE", "http")),
		ChromeBin: getEnv("CHROME_BIN", ""),

		ArchiveDriver:    strings.ToLower(getEnv("ARCHIVE_DRIVER", "")),
		ArchiveDSN:       getEnv("ARCHIVE_DSN", ""),
		PostgresHost:     getEnv("POSTGRES_HOST", "localhost"),
		PostgresPort:     getEnv("POSTGRES_PORT", "5432"),
		PostgresUser:     getEnv("POSTGRES_USER", "scraper"),
		PostgresPassword: getEnv("POSTGRES_PASSWORD", "scraper123"),
		PostgresDB:       getEnv("POSTGRES_DB", "gpu_prices"),
		PostgresSSLMode:  getEnv("POSTGRES_SSLMODE", "disable"),
		MaxRetries:       getEnvInt("MAX_RETRIES", 3),

		PlotWidth:  getEnvInt("PLOT_WIDTH", 1100),
		PlotHeight: getEnvInt("PLOT_HEIGHT", 700),
		ReportTopN: getEnvInt("REPORT_TOP_N", 10),

		LogLevel: getEnv("LOG_LEVEL", "info"),
	}
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	return "host=" + c.PostgresHost +
		" port=" + c.PostgresPort +
		" user=" + c.PostgresUser +
		" password=" + c.PostgresPassword +
		" dbname=" + c.PostgresDB +
		" sslmode=" + c.PostgresSSLMode
}

// ArchiveTarget returns the driver and DSN of the snapshot archive, or an
// empty driver when archiving is off. Postgres falls back to DSN() when
// ARCHIVE_DSN is unset.
func (c *Config) ArchiveTarget() (driver, dsn string) {
	switch c.ArchiveDriver {
	case "postgres":
		if c.ArchiveDSN != "" {
			return "postgres", c.ArchiveDSN
		}
		return "postgres", c.DSN()
	case "sqlite":
		if c.ArchiveDSN != "" {
			return "sqlite", c.ArchiveDSN
		}
		return "sqlite", "gpu_prices.db"
	default:
		return "", ""
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.Atoi(val)
		if err == nil {
			return n
		}
	}
	return fallback
}
