package config

import "fmt"

// ReportConfig selects the report rendering format and destination.
type ReportConfig struct {
	// Format is "text", "json" or "csv".
	Format string `json:"format"`
	// Output is a file path, or "-" for stdout.
	Output string `json:"output"`
}

// SetDefaults applies sane defaults.
func (c *ReportConfig) SetDefaults() {
	if c.Format == "" {
		c.Format = "text"
	}
	if c.Output == "" {
		c.Output = "-"
	}
}

// Validate checks the format enum.
func (c ReportConfig) Validate() error {
	switch c.Format {
	case "text", "json", "csv":
		return nil
	default:
		return fmt.Errorf("unknown report format %q", c.Format)
	}
}
