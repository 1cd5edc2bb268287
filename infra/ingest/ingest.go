// Package ingest loads and normalizes customer records from an external
// store. Structural problems here are fatal for the run; the engine never
// sees an invalid customer.
package ingest

import (
	"context"
	"fmt"
)

// Record is one raw customer row before normalization.
type Record struct {
	Name      string
	Team      string
	Frequency string
	Location  string
}

// Config selects and parameterizes the customer source.
type Config struct {
	// Source is "csv" or "postgres".
	Source string `json:"source"`
	// Path locates the CSV file when Source is "csv".
	Path string `json:"path"`
	// DSN and Table configure the Postgres source.
	DSN   string `json:"dsn"`
	Table string `json:"table"`
	// Teams enumerates the canonical team names. Every record must resolve
	// to one of them.
	Teams []string `json:"teams"`
	// TeamAliases maps near-duplicate spellings to canonical team names.
	TeamAliases map[string]string `json:"team_aliases"`
	// ForceVIP lists customer names promoted to the VIP class regardless of
	// their declared frequency.
	ForceVIP []string `json:"force_vip"`
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if c.Source == "" {
		c.Source = "csv"
	}
	if c.Path == "" {
		c.Path = "customers.csv"
	}
	if c.Table == "" {
		c.Table = "customers"
	}
}

// Validate checks mandatory fields for the selected source.
func (c Config) Validate() error {
	switch c.Source {
	case "csv":
		if c.Path == "" {
			return fmt.Errorf("ingest: path is required for the csv source")
		}
	case "postgres":
		if c.DSN == "" {
			return fmt.Errorf("ingest: dsn is required for the postgres source")
		}
	default:
		return fmt.Errorf("ingest: unknown source %q", c.Source)
	}
	if len(c.Teams) == 0 {
		return fmt.Errorf("ingest: at least one canonical team is required")
	}
	return nil
}

// Load reads the raw records from the configured source and normalizes them.
func Load(ctx context.Context, cfg Config) ([]Customer, error) {
	var (
		records []Record
		err     error
	)
	switch cfg.Source {
	case "csv":
		records, err = LoadCSV(cfg.Path)
	case "postgres":
		records, err = LoadPostgres(ctx, cfg.DSN, cfg.Table)
	default:
		return nil, fmt.Errorf("ingest: unknown source %q", cfg.Source)
	}
	if err != nil {
		return nil, err
	}
	return Normalize(records, cfg)
}
