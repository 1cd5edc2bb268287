package config

import "fmt"

// ArchiveConfig defines settings for run archive storage.
type ArchiveConfig struct {
	// Backend selects the archive type: "jsonl" or "sqlite".
	Backend string `json:"backend"`
	// Path is the file location of the archive.
	Path string `json:"path"`
}

// SetDefaults applies sane defaults.
func (c *ArchiveConfig) SetDefaults() {
	if c.Backend == "" {
		c.Backend = "jsonl"
	}
	if c.Path == "" {
		c.Path = "runs.jsonl"
	}
}

// Validate checks mandatory fields.
func (c ArchiveConfig) Validate() error {
	if c.Backend != "jsonl" && c.Backend != "sqlite" {
		return fmt.Errorf("unknown archive backend %s", c.Backend)
	}
	if c.Path == "" {
		return fmt.Errorf("archive path is required")
	}
	return nil
}
