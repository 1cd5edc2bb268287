package model

import "fmt"

// Frequency classifies how often a customer is visited within the month.
type Frequency int

const (
	FrequencyVIP Frequency = iota
	FrequencyBiMonthly
	FrequencyMonthly
	FrequencyQuarterly
)

// String returns the canonical label for the frequency class.
func (f Frequency) String() string {
	switch f {
	case FrequencyVIP:
		return "VIP"
	case FrequencyBiMonthly:
		return "Bi-Monthly"
	case FrequencyMonthly:
		return "Monthly"
	case FrequencyQuarterly:
		return "Quarterly"
	default:
		return "unknown"
	}
}

// ParseFrequency maps an input label to its Frequency. Labels are matched
// exactly: "VIP", "Bi-Monthly", "Monthly" and "Quarterly" are the only
// accepted forms.
func ParseFrequency(s string) (Frequency, error) {
	switch s {
	case "VIP":
		return FrequencyVIP, nil
	case "Bi-Monthly":
		return FrequencyBiMonthly, nil
	case "Monthly":
		return FrequencyMonthly, nil
	case "Quarterly":
		return FrequencyQuarterly, nil
	default:
		return 0, fmt.Errorf("unknown frequency %q", s)
	}
}

// MarshalJSON encodes the frequency as its canonical label.
func (f Frequency) MarshalJSON() ([]byte, error) {
	return []byte(`"` + f.String() + `"`), nil
}

// UnmarshalJSON decodes a canonical frequency label.
func (f *Frequency) UnmarshalJSON(b []byte) error {
	if len(b) < 2 || b[0] != '"' || b[len(b)-1] != '"' {
		return fmt.Errorf("invalid frequency %s", string(b))
	}
	v, err := ParseFrequency(string(b[1 : len(b)-1]))
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// Customer is a read-only input record for the whole planning run.
// Promotion to the VIP class happens at load time via the force_vip
// configuration list, never inside the engine.
type Customer struct {
	Name      string    `json:"name"`
	Team      string    `json:"team"`
	Frequency Frequency `json:"frequency"`
	Location  string    `json:"location,omitempty"`
}

// IsVIP reports whether the customer belongs to the VIP class.
func (c Customer) IsVIP() bool { return c.Frequency == FrequencyVIP }

// VIPTeams derives the set of teams owning at least one VIP customer. A VIP
// team follows different logistics rules for the rest of the month.
func VIPTeams(customers []Customer) map[string]bool {
	teams := make(map[string]bool)
	for _, c := range customers {
		if c.IsVIP() {
			teams[c.Team] = true
		}
	}
	return teams
}
