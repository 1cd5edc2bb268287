package archive

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite"
)

// SQLiteStore archives runs in a SQLite database. Records are stored as JSON
// with indexed timestamp and month columns for filtering.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens or creates the database at path and ensures the
// schema.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	schema := `CREATE TABLE IF NOT EXISTS runs (
        id TEXT PRIMARY KEY,
        ts INTEGER,
        year INTEGER,
        month INTEGER,
        record TEXT
    );
    CREATE INDEX IF NOT EXISTS runs_ts ON runs (ts);
    CREATE INDEX IF NOT EXISTS runs_month ON runs (year, month);`
	if _, err := db.Exec(schema); err != nil {
		if cerr := db.Close(); cerr != nil {
			return nil, fmt.Errorf("close db: %v (schema err: %w)", cerr, err)
		}
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

// Append writes the record to the database.
func (s *SQLiteStore) Append(ctx context.Context, rec RunRecord) error {
	b, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO runs (id, ts, year, month, record) VALUES (?, ?, ?, ?, ?)`,
		rec.ID, rec.CreatedAt.Unix(), rec.Year, int(rec.Month), string(b))
	return err
}

// Query returns the records matching q in insertion order.
func (s *SQLiteStore) Query(ctx context.Context, q Query) ([]RunRecord, error) {
	query := `SELECT record FROM runs WHERE 1=1`
	var args []any
	if !q.Start.IsZero() {
		query += ` AND ts >= ?`
		args = append(args, q.Start.Unix())
	}
	if !q.End.IsZero() {
		query += ` AND ts <= ?`
		args = append(args, q.End.Unix())
	}
	if q.Year != 0 {
		query += ` AND year = ?`
		args = append(args, q.Year)
	}
	if q.Month != 0 {
		query += ` AND month = ?`
		args = append(args, int(q.Month))
	}
	query += ` ORDER BY ts`
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	var res []RunRecord
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		var r RunRecord
		if err := json.Unmarshal([]byte(raw), &r); err != nil {
			return nil, err
		}
		res = append(res, r)
	}
	return res, rows.Err()
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error { return s.db.Close() }
