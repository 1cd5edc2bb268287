package ingest

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"

	_ "github.com/jackc/pgx/v5/stdlib"
)

var identPattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// LoadPostgres reads raw customer records from a Postgres table with name,
// team, frequency and location columns.
func LoadPostgres(ctx context.Context, dsn, table string) ([]Record, error) {
	if !identPattern.MatchString(table) {
		return nil, fmt.Errorf("invalid table name %q", table)
	}
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	defer func() { _ = db.Close() }()
	query := fmt.Sprintf(
		`SELECT name, team, frequency, COALESCE(location, '') FROM %s ORDER BY name`, table)
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query customers: %w", err)
	}
	defer func() { _ = rows.Close() }()
	var records []Record
	for rows.Next() {
		var rec Record
		if err := rows.Scan(&rec.Name, &rec.Team, &rec.Frequency, &rec.Location); err != nil {
			return nil, fmt.Errorf("scan customer row: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
