package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abeljo/ECO-SCHEDULER/config"
	"github.com/Abeljo/ECO-SCHEDULER/core/archive"
)

const testCustomers = `name,team,frequency,location
Crown Estate,alpha,VIP,uptown
Acme,beta,Monthly,harbor
Globex,beta,Monthly,harbor
Initech,gamma,Bi-Monthly,
Hooli,gamma,Quarterly,midtown
`

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	customersPath := filepath.Join(dir, "customers.csv")
	require.NoError(t, os.WriteFile(customersPath, []byte(testCustomers), 0644))

	cfg := &config.Config{}
	cfg.Plan = config.PlanConfig{Year: 2025, Month: 6, Seed: 7}
	cfg.Rules.SetDefaults()
	cfg.Ingest.Source = "csv"
	cfg.Ingest.Path = customersPath
	cfg.Ingest.Teams = []string{"alpha", "beta", "gamma"}
	cfg.Report.Format = "text"
	cfg.Report.Output = filepath.Join(dir, "report.txt")
	cfg.Archive.Backend = "jsonl"
	cfg.Archive.Path = filepath.Join(dir, "runs.jsonl")
	cfg.Metrics.SetDefaults()
	cfg.API.SetDefaults()
	return cfg
}

func TestPlan_EndToEnd(t *testing.T) {
	cfg := testConfig(t)
	svc, err := New(cfg)
	require.NoError(t, err)
	defer func() { require.NoError(t, svc.Close()) }()

	rec, err := svc.Plan(context.Background())
	require.NoError(t, err)
	require.NotNil(t, rec)

	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, 2025, rec.Year)
	assert.Equal(t, time.June, rec.Month)
	assert.Equal(t, int64(7), rec.Seed)
	assert.Empty(t, rec.Violations)
	assert.True(t, rec.Summary.Passed)

	// VIP every 2 days over 30 days, two Monthly pairs, one Bi-Monthly, one
	// Quarterly.
	assert.Equal(t, 15+2*2+1+1, rec.Summary.TotalVisits)
	assert.Equal(t, 5, rec.Summary.TotalCustomers)
	assert.Equal(t, 15, rec.Summary.ByFrequency["VIP"])
	assert.Equal(t, 4, rec.Summary.ByFrequency["Monthly"])

	report, err := os.ReadFile(cfg.Report.Output)
	require.NoError(t, err)
	assert.Contains(t, string(report), "Validation Check: PASSED")
	assert.Contains(t, string(report), "Crown Estate[VIP]")

	// The run was archived.
	store, err := archive.NewJSONLStore(cfg.Archive.Path)
	require.NoError(t, err)
	runs, err := store.Query(context.Background(), archive.Query{Year: 2025, Month: time.June})
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, rec.ID, runs[0].ID)
}

func TestPlan_ReproducibleWithSameSeed(t *testing.T) {
	run := func() []string {
		cfg := testConfig(t)
		svc, err := New(cfg)
		require.NoError(t, err)
		defer func() { _ = svc.Close() }()
		rec, err := svc.Plan(context.Background())
		require.NoError(t, err)
		var got []string
		for _, v := range rec.Visits {
			got = append(got, v.Customer+"/"+v.Type.String()+"/"+time.Date(2025, 6, v.Day, 0, 0, 0, 0, time.UTC).Format("02"))
		}
		return got
	}
	assert.Equal(t, run(), run())
}

func TestPlan_StructuralIngestErrorFailsRun(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, os.WriteFile(cfg.Ingest.Path, []byte("name,team,frequency\nacme,unknown-team,Monthly\n"), 0644))

	svc, err := New(cfg)
	require.NoError(t, err)
	defer func() { _ = svc.Close() }()

	_, err = svc.Plan(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown team")
}
