package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "modernc.org/sqlite"

	"EuriborChart/internal/model"
)

// SQLiteRecorder appends one row per run to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id        TEXT NOT NULL,
			timestamp     INTEGER NOT NULL,
			window_days   INTEGER,
			start_date    TEXT,
			end_date      TEXT,
			records_w01   INTEGER,
			records_m01   INTEGER,
			records_m03   INTEGER,
			records_m06   INTEGER,
			records_m12   INTEGER,
			output_path   TEXT,
			elapsed_ms    INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_ts ON runs(timestamp)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

// RecordRun appends one diagnostics row for a completed run.
func (r *SQLiteRecorder) RecordRun(sum *model.RunSummary) error {
	_, err := r.db.Exec(`INSERT INTO runs
		(run_id, timestamp, window_days, start_date, end_date,
		 records_w01, records_m01, records_m03, records_m06, records_m12,
		 output_path, elapsed_ms)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?)`,
		sum.RunID, time.Now().Unix(), sum.WindowDays,
		sum.Start.Format("2006-01-02"), sum.End.Format("2006-01-02"),
		sum.Counts[model.Tenor1W], sum.Counts[model.Tenor1M], sum.Counts[model.Tenor3M],
		sum.Counts[model.Tenor6M], sum.Counts[model.Tenor12M],
		sum.OutputPath, sum.Elapsed.Milliseconds(),
	)
	return err
}

func (r *SQLiteRecorder) Close() error {
	return r.db.Close()
}
