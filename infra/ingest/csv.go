package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// LoadCSV reads raw customer records from a CSV file with a
// name,team,frequency,location header. Column order is taken from the
// header; location is optional.
func LoadCSV(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open customer file: %w", err)
	}
	defer func() { _ = f.Close() }()
	return parseCSV(f)
}

func parseCSV(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(strings.ToLower(name))] = i
	}
	for _, required := range []string{"name", "team", "frequency"} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("missing column %q in header", required)
		}
	}
	field := func(row []string, name string) string {
		i, ok := cols[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}
	var records []Record
	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", line, err)
		}
		records = append(records, Record{
			Name:      field(row, "name"),
			Team:      field(row, "team"),
			Frequency: field(row, "frequency"),
			Location:  field(row, "location"),
		})
	}
	return records, nil
}
