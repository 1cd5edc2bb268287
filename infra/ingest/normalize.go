package ingest

import (
	"fmt"

	"github.com/Abeljo/ECO-SCHEDULER/core/model"
)

// Customer is an alias re-exported for callers of Load.
type Customer = model.Customer

// Normalize validates the raw records and converts them to customers:
// team names are canonicalized through the configured alias table, names
// must be unique, and customers listed in force_vip are promoted to the VIP
// class. Row numbers in errors are 1-based over the record list.
func Normalize(records []Record, cfg Config) ([]Customer, error) {
	canonical := make(map[string]bool, len(cfg.Teams))
	for _, t := range cfg.Teams {
		canonical[t] = true
	}
	forced := make(map[string]bool, len(cfg.ForceVIP))
	for _, name := range cfg.ForceVIP {
		forced[name] = true
	}
	seen := make(map[string]bool, len(records))
	customers := make([]Customer, 0, len(records))
	for i, rec := range records {
		row := i + 1
		if rec.Name == "" {
			return nil, &RowError{Row: row, Err: ErrMissingName}
		}
		if seen[rec.Name] {
			return nil, &RowError{Row: row, Name: rec.Name, Err: ErrDuplicateName}
		}
		seen[rec.Name] = true
		if rec.Team == "" {
			return nil, &RowError{Row: row, Name: rec.Name, Err: ErrMissingTeam}
		}
		team := rec.Team
		if alias, ok := cfg.TeamAliases[team]; ok {
			team = alias
		}
		if !canonical[team] {
			return nil, &RowError{Row: row, Name: rec.Name, Err: fmt.Errorf("%w %q", ErrUnknownTeam, rec.Team)}
		}
		if rec.Frequency == "" {
			return nil, &RowError{Row: row, Name: rec.Name, Err: ErrMissingFrequency}
		}
		freq, err := model.ParseFrequency(rec.Frequency)
		if err != nil {
			return nil, &RowError{Row: row, Name: rec.Name, Err: err}
		}
		if forced[rec.Name] {
			freq = model.FrequencyVIP
		}
		customers = append(customers, Customer{
			Name:      rec.Name,
			Team:      team,
			Frequency: freq,
			Location:  rec.Location,
		})
	}
	return customers, nil
}
