package store

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// =============================================================================
// SQLiteStore
// =============================================================================

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sqlx.DB
}

// NewSQLiteStore creates a new SQLite store and runs migrations.
func NewSQLiteStore(dsn string) (*SQLiteStore, error) {
	db, err := sqlx.Open("sqlite3", dsn+"?_foreign_keys=on")
	if err != nil {
		return nil, NewStoreError("NewSQLiteStore", "", "failed to open database", ErrConnectionFailed)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, NewStoreError("NewSQLiteStore", "", "failed to ping database", ErrConnectionFailed)
	}

	if err := runMigrations(db.DB); err != nil {
		db.Close()
		return nil, NewStoreError("NewSQLiteStore", "", err.Error(), ErrMigrationFailed)
	}

	return &SQLiteStore{db: db}, nil
}

// runMigrations runs database migrations using embedded SQL files.
func runMigrations(db *sql.DB) error {
	driver, err := sqlite3.WithInstance(db, &sqlite3.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to create migration source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "sqlite3", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// =============================================================================
// Operation Record Operations
// =============================================================================

// operationRow represents an operation record row in the database.
type operationRow struct {
	ID        string  `db:"id"`
	Kind      string  `db:"kind"`
	Request   string  `db:"request"`
	Response  *string `db:"response"`
	Error     *string `db:"error"`
	CreatedAt string  `db:"created_at"`
}

func (r operationRow) toRecord() (*OperationRecord, error) {
	createdAt, err := time.Parse(time.RFC3339Nano, r.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("parse created_at: %w", err)
	}
	record := &OperationRecord{
		ID:        r.ID,
		Kind:      r.Kind,
		Request:   json.RawMessage(r.Request),
		CreatedAt: createdAt,
	}
	if r.Response != nil {
		record.Response = json.RawMessage(*r.Response)
	}
	if r.Error != nil {
		record.Error = *r.Error
	}
	return record, nil
}

func rowFromRecord(record *OperationRecord) operationRow {
	row := operationRow{
		ID:        record.ID,
		Kind:      record.Kind,
		Request:   string(record.Request),
		CreatedAt: record.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	if len(record.Response) > 0 {
		response := string(record.Response)
		row.Response = &response
	}
	if record.Error != "" {
		errText := record.Error
		row.Error = &errText
	}
	return row
}

// CreateOperation inserts a new operation record.
func (s *SQLiteStore) CreateOperation(ctx context.Context, record *OperationRecord) error {
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	row := rowFromRecord(record)
	_, err := s.db.NamedExecContext(ctx, `
		INSERT INTO operations (id, kind, request, response, error, created_at)
		VALUES (:id, :kind, :request, :response, :error, :created_at)`,
		row,
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return NewStoreError("CreateOperation", record.ID, "duplicate id", ErrDuplicateID)
		}
		return NewStoreError("CreateOperation", record.ID, err.Error(), err)
	}
	return nil
}

// GetOperation fetches an operation record by ID.
func (s *SQLiteStore) GetOperation(ctx context.Context, id string) (*OperationRecord, error) {
	var row operationRow
	err := s.db.GetContext(ctx, &row, `
		SELECT id, kind, request, response, error, created_at
		FROM operations WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, NewStoreError("GetOperation", id, "not found", ErrNotFound)
	}
	if err != nil {
		return nil, NewStoreError("GetOperation", id, err.Error(), err)
	}
	return row.toRecord()
}

// ListOperations returns operation records, newest first.
func (s *SQLiteStore) ListOperations(ctx context.Context, opts ListOptions) ([]OperationRecord, error) {
	return s.listOperations(ctx, "", opts)
}

// ListOperationsByKind returns operation records of one resolver kind,
// newest first.
func (s *SQLiteStore) ListOperationsByKind(ctx context.Context, kind string, opts ListOptions) ([]OperationRecord, error) {
	return s.listOperations(ctx, kind, opts)
}

func (s *SQLiteStore) listOperations(ctx context.Context, kind string, opts ListOptions) ([]OperationRecord, error) {
	if opts.Limit <= 0 {
		opts = DefaultListOptions()
	}

	query := `
		SELECT id, kind, request, response, error, created_at
		FROM operations`
	args := []any{}
	if kind != "" {
		query += " WHERE kind = ?"
		args = append(args, kind)
	}
	query += " ORDER BY created_at DESC, id LIMIT ? OFFSET ?"
	args = append(args, opts.Limit, opts.Offset)

	var rows []operationRow
	if err := s.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, NewStoreError("ListOperations", "", err.Error(), err)
	}

	records := make([]OperationRecord, 0, len(rows))
	for _, row := range rows {
		record, err := row.toRecord()
		if err != nil {
			return nil, NewStoreError("ListOperations", row.ID, err.Error(), err)
		}
		records = append(records, *record)
	}
	return records, nil
}

// CountOperations returns the total number of operation records.
func (s *SQLiteStore) CountOperations(ctx context.Context) (int, error) {
	var count int
	if err := s.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM operations"); err != nil {
		return 0, NewStoreError("CountOperations", "", err.Error(), err)
	}
	return count, nil
}
