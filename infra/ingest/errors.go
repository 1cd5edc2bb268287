package ingest

import "fmt"

// Sentinel errors for structural input failures.
var (
	ErrMissingName      = fmt.Errorf("missing customer name")
	ErrMissingTeam      = fmt.Errorf("missing team")
	ErrMissingFrequency = fmt.Errorf("missing frequency")
	ErrUnknownTeam      = fmt.Errorf("unknown team")
	ErrDuplicateName    = fmt.Errorf("duplicate customer name")
)

// RowError wraps a structural error with the row it occurred on.
type RowError struct {
	Row  int
	Name string
	Err  error
}

func (e *RowError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("row %d (%s): %v", e.Row, e.Name, e.Err)
	}
	return fmt.Sprintf("row %d: %v", e.Row, e.Err)
}

func (e *RowError) Unwrap() error { return e.Err }
