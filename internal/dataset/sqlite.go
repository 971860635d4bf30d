package dataset

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Veraticus/plu/internal/model"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// SQLiteSource reads records from a dataset database built by WriteSQLite.
type SQLiteSource struct {
	db     *sql.DB
	dbPath string
}

// OpenSQLite opens an existing dataset database read-only.
func OpenSQLite(dbPath string) (*SQLiteSource, error) {
	if _, err := os.Stat(dbPath); err != nil {
		return nil, fmt.Errorf("failed to open dataset database: %w", err)
	}

	db, err := sql.Open("sqlite3", "file:"+dbPath+"?mode=ro&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &SQLiteSource{db: db, dbPath: dbPath}, nil
}

// Close closes the database connection.
func (s *SQLiteSource) Close() error {
	return s.db.Close()
}

// Records returns every record in dataset order.
func (s *SQLiteSource) Records(ctx context.Context) ([]model.Record, error) {
	if err := checkSchema(ctx, s.db); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT plu, korean, english, french, season
		FROM plu_codes
		ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query records: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []model.Record
	for rows.Next() {
		var r model.Record
		if err := rows.Scan(&r.Code, &r.Korean, &r.English, &r.French, &r.Season); err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate records: %w", err)
	}

	return records, nil
}

// WriteSQLite creates (or replaces) a dataset database at dbPath holding
// records in order. progress, when non-nil, is called once per record. On
// failure or cancellation no database is left at dbPath.
func WriteSQLite(ctx context.Context, dbPath string, records []model.Record, progress func()) error {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0750); err != nil {
		return fmt.Errorf("failed to create database directory: %w", err)
	}
	if err := os.Remove(dbPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to replace existing database: %w", err)
	}

	if err := writeSQLite(ctx, dbPath, records, progress); err != nil {
		_ = os.Remove(dbPath)
		return err
	}
	return nil
}

func writeSQLite(ctx context.Context, dbPath string, records []model.Record, progress func()) error {
	db, err := sql.Open("sqlite3", dbPath+"?_busy_timeout=5000")
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() { _ = db.Close() }()
	db.SetMaxOpenConns(1)

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := migrate(tx); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO plu_codes (position, plu, korean, english, french, season)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for i, r := range records {
		if _, err := stmt.ExecContext(ctx, i, r.Code, r.Korean, r.English, r.French, r.Season); err != nil {
			return fmt.Errorf("failed to insert record %s: %w", r.Code, err)
		}
		if progress != nil {
			progress()
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit dataset: %w", err)
	}
	return nil
}
