package db

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"voice-dataset/models"
	"voice-dataset/utils"

	_ "github.com/mattn/go-sqlite3" // SQLite driver registration
)

// SQLiteClient is a catalog of dataset build runs backed by SQLite.
type SQLiteClient struct {
	db *sql.DB
}

func NewSQLiteClient(dataSourceName string) (*SQLiteClient, error) {
	// Extract the file path before query parameters
	dbPath := dataSourceName
	if idx := strings.Index(dataSourceName, "?"); idx != -1 {
		dbPath = dataSourceName[:idx]
	}

	// Create the directory if it doesn't exist (cross-platform)
	dbDir := filepath.Dir(dbPath)
	if dbDir != "." && dbDir != "" {
		if err := utils.CreateFolder(dbDir); err != nil {
			return nil, fmt.Errorf("error creating database directory: %s", err)
		}
	}

	// Add busy timeout param to DSN (milliseconds)
	if !strings.Contains(dataSourceName, "_busy_timeout") {
		if strings.Contains(dataSourceName, "?") {
			dataSourceName += "&_busy_timeout=5000" // 5 seconds
		} else {
			dataSourceName += "?_busy_timeout=5000"
		}
	}

	db, err := sql.Open("sqlite3", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("error connecting to SQLite: %s", err)
	}

	if err := createTables(db); err != nil {
		return nil, fmt.Errorf("error creating tables: %s", err)
	}

	return &SQLiteClient{db: db}, nil
}

// createTables creates the required tables if they don't exist
func createTables(db *sql.DB) error {
	createRunsTable := `
    CREATE TABLE IF NOT EXISTS runs (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        timestamp DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
        base_dir TEXT NOT NULL,
        output_file TEXT NOT NULL,
        start_sample INTEGER NOT NULL,
        end_sample INTEGER NOT NULL,
        rows INTEGER NOT NULL DEFAULT 0,
        columns INTEGER NOT NULL DEFAULT 0,
        failures INTEGER NOT NULL DEFAULT 0,
        classes TEXT NOT NULL
    );
    CREATE INDEX IF NOT EXISTS idx_runs_timestamp ON runs(timestamp);
    `

	if _, err := db.Exec(createRunsTable); err != nil {
		return fmt.Errorf("error creating runs table: %s", err)
	}
	return nil
}

func (c *SQLiteClient) Close() error {
	if c.db != nil {
		return c.db.Close()
	}
	return nil
}

// SaveRun records one dataset build in the catalog and returns its id.
func (c *SQLiteClient) SaveRun(run *models.BuildRun) (int64, error) {
	classes, err := json.Marshal(run.Classes)
	if err != nil {
		return 0, fmt.Errorf("error marshaling class counts: %s", err)
	}

	ts := run.Timestamp
	if ts.IsZero() {
		ts = time.Now().UTC()
	}

	result, err := c.db.Exec(`
        INSERT INTO runs (timestamp, base_dir, output_file, start_sample, end_sample, rows, columns, failures, classes)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		ts, run.BaseDir, run.OutputFile, run.StartSample, run.EndSample,
		run.Rows, run.Columns, run.Failures, string(classes))
	if err != nil {
		return 0, fmt.Errorf("error inserting run: %s", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("error reading run id: %s", err)
	}
	run.ID = id
	return id, nil
}

// ListRuns returns the most recent builds, newest first.
func (c *SQLiteClient) ListRuns(limit int) ([]models.BuildRun, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := c.db.Query(`
        SELECT id, timestamp, base_dir, output_file, start_sample, end_sample, rows, columns, failures, classes
        FROM runs ORDER BY timestamp DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("error querying runs: %s", err)
	}
	defer rows.Close()

	var runs []models.BuildRun
	for rows.Next() {
		var run models.BuildRun
		var classes string
		err := rows.Scan(&run.ID, &run.Timestamp, &run.BaseDir, &run.OutputFile,
			&run.StartSample, &run.EndSample, &run.Rows, &run.Columns, &run.Failures, &classes)
		if err != nil {
			return nil, fmt.Errorf("error scanning run: %s", err)
		}
		if classes != "" {
			if err := json.Unmarshal([]byte(classes), &run.Classes); err != nil {
				return nil, fmt.Errorf("error unmarshaling class counts: %s", err)
			}
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}
