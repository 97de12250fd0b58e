package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"gpu-benchmark-scraper/models"
	"gpu-benchmark-scraper/utils"
)

const archiveBatchSize = 50

// SQLArchive keeps every scrape as a snapshot in PostgreSQL or SQLite.
// Snapshots are keyed by the scrape time in Unix nanoseconds. Each one has
// a row in snapshots, so a scrape that kept no cards still counts as latest.
type SQLArchive struct {
	db     *sql.DB
	driver string
}

// OpenArchive opens a connection, waits for it to answer a ping and
// creates the schema. driver is "postgres" or "sqlite".
func OpenArchive(driver, dsn string, retry *utils.RetryConfig) (*SQLArchive, error) {
	if driver != "postgres" && driver != "sqlite" {
		return nil, fmt.Errorf("archive: unsupported driver %q", driver)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("archive: open: %w", err)
	}
	if driver == "sqlite" {
		// a single connection keeps :memory: databases alive and serialises writes
		db.SetMaxOpenConns(1)
	}

	if err := retry.Do("archive-ping", db.Ping); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("archive: %w", err)
	}

	a := &SQLArchive{db: db, driver: driver}
	if err := a.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("archive: migrate: %w", err)
	}

	return a, nil
}

func (a *SQLArchive) migrate() error {
	idColumn := "id SERIAL PRIMARY KEY"
	if a.driver == "sqlite" {
		idColumn = "id INTEGER PRIMARY KEY AUTOINCREMENT"
	}

	statements := []string{
		`CREATE TABLE IF NOT EXISTS snapshots (
			snapshot     BIGINT  PRIMARY KEY,
			record_count INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS gpu_prices (
			` + idColumn + `,
			snapshot  BIGINT  NOT NULL,
			position  INTEGER NOT NULL,
			name      TEXT    NOT NULL,
			benchmark TEXT    NOT NULL,
			price     TEXT    NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_gpu_prices_snapshot ON gpu_prices(snapshot)`,
	}
	for _, stmt := range statements {
		if _, err := a.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (a *SQLArchive) placeholder(n int) string {
	if a.driver == "postgres" {
		return fmt.Sprintf("$%d", n)
	}
	return "?"
}

// WriteSnapshot stores records, in rank order, as one snapshot. An empty
// slice is stored as an empty snapshot.
func (a *SQLArchive) WriteSnapshot(ctx context.Context, scrapedAt time.Time, records []models.GpuRecord) error {
	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("archive: begin: %w", err)
	}

	snapshot := scrapedAt.UnixNano()
	_, err = tx.ExecContext(ctx,
		`INSERT INTO snapshots (snapshot, record_count) VALUES (`+a.placeholder(1)+`, `+a.placeholder(2)+`)`,
		snapshot, len(records),
	)
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("archive: insert snapshot: %w", err)
	}

	for i := 0; i < len(records); i += archiveBatchSize {
		end := i + archiveBatchSize
		if end > len(records) {
			end = len(records)
		}
		if err := a.insertBatch(ctx, tx, snapshot, i, records[i:end]); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("archive: insert: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("archive: commit: %w", err)
	}
	return nil
}

func (a *SQLArchive) insertBatch(ctx context.Context, tx *sql.Tx, snapshot int64, offset int, batch []models.GpuRecord) error {
	const columns = 5
	valueStrings := make([]string, 0, len(batch))
	valueArgs := make([]interface{}, 0, len(batch)*columns)

	for idx, r := range batch {
		base := idx * columns
		valueStrings = append(valueStrings,
			fmt.Sprintf("(%s,%s,%s,%s,%s)",
				a.placeholder(base+1), a.placeholder(base+2), a.placeholder(base+3),
				a.placeholder(base+4), a.placeholder(base+5)))
		valueArgs = append(valueArgs, snapshot, offset+idx+1, r.Name, r.Benchmark, r.Price)
	}

	query := fmt.Sprintf(
		`INSERT INTO gpu_prices (snapshot, position, name, benchmark, price) VALUES %s`,
		strings.Join(valueStrings, ","),
	)

	_, err := tx.ExecContext(ctx, query, valueArgs...)
	return err
}

// LatestSnapshot returns the time and records of the most recent snapshot.
// ok is false when the archive is empty; records is empty when the latest
// scrape kept no cards.
func (a *SQLArchive) LatestSnapshot(ctx context.Context) (scrapedAt time.Time, records []models.GpuRecord, ok bool, err error) {
	var latest sql.NullInt64
	if err := a.db.QueryRowContext(ctx, `SELECT MAX(snapshot) FROM snapshots`).Scan(&latest); err != nil {
		return time.Time{}, nil, false, fmt.Errorf("archive: latest snapshot: %w", err)
	}
	if !latest.Valid {
		return time.Time{}, nil, false, nil
	}

	rows, err := a.db.QueryContext(ctx,
		`SELECT name, benchmark, price FROM gpu_prices WHERE snapshot = `+a.placeholder(1)+` ORDER BY position`,
		latest.Int64,
	)
	if err != nil {
		return time.Time{}, nil, false, fmt.Errorf("archive: fetch snapshot: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var r models.GpuRecord
		if err := rows.Scan(&r.Name, &r.Benchmark, &r.Price); err != nil {
			return time.Time{}, nil, false, fmt.Errorf("archive: scan row: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return time.Time{}, nil, false, fmt.Errorf("archive: fetch snapshot: %w", err)
	}

	return time.Unix(0, latest.Int64), records, true, nil
}

// SnapshotCount returns how many scrapes have been archived.
func (a *SQLArchive) SnapshotCount(ctx context.Context) (int, error) {
	var n int
	err := a.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM snapshots`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("archive: count snapshots: %w", err)
	}
	return n, nil
}

func (a *SQLArchive) Close() error {
	return a.db.Close()
}
