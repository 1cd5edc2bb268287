package model

import "fmt"

// VisitType tags the occurrence a committed visit fulfils.
type VisitType int

const (
	VisitVIP VisitType = iota
	VisitBiMonthly
	VisitMonthly1
	VisitMonthly2
	VisitQuarterly
)

// String returns the tag used in reports and archives.
func (t VisitType) String() string {
	switch t {
	case VisitVIP:
		return "VIP"
	case VisitBiMonthly:
		return "Bi-Monthly"
	case VisitMonthly1:
		return "Monthly_1"
	case VisitMonthly2:
		return "Monthly_2"
	case VisitQuarterly:
		return "Quarterly"
	default:
		return "unknown"
	}
}

// Frequency returns the frequency class the visit type belongs to.
func (t VisitType) Frequency() Frequency {
	switch t {
	case VisitVIP:
		return FrequencyVIP
	case VisitBiMonthly:
		return FrequencyBiMonthly
	case VisitMonthly1, VisitMonthly2:
		return FrequencyMonthly
	default:
		return FrequencyQuarterly
	}
}

// MarshalJSON encodes the visit type as its tag.
func (t VisitType) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

// UnmarshalJSON decodes a visit type tag.
func (t *VisitType) UnmarshalJSON(b []byte) error {
	s := string(b)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid visit type %s", s)
	}
	switch s[1 : len(s)-1] {
	case "VIP":
		*t = VisitVIP
	case "Bi-Monthly":
		*t = VisitBiMonthly
	case "Monthly_1":
		*t = VisitMonthly1
	case "Monthly_2":
		*t = VisitMonthly2
	case "Quarterly":
		*t = VisitQuarterly
	default:
		return fmt.Errorf("unknown visit type %s", s)
	}
	return nil
}

// Visit is one committed service call. Visits are created exactly once per
// (customer, occurrence) by an assigner and never moved or deleted afterwards.
type Visit struct {
	Customer string    `json:"customer"`
	Team     string    `json:"team"`
	Type     VisitType `json:"type"`
	Location string    `json:"location,omitempty"`
	Day      int       `json:"day"` // day of month, 1-based
}

// IsVIP reports whether the visit is part of a VIP route.
func (v Visit) IsVIP() bool { return v.Type == VisitVIP }
