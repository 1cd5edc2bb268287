package schedule

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abeljo/ECO-SCHEDULER/core/archive"
	"github.com/Abeljo/ECO-SCHEDULER/core/model"
	"github.com/Abeljo/ECO-SCHEDULER/core/schedule"
)

type fakeStore struct {
	records []archive.RunRecord
}

func (f *fakeStore) Append(ctx context.Context, rec archive.RunRecord) error {
	f.records = append(f.records, rec)
	return nil
}

func (f *fakeStore) Query(ctx context.Context, q archive.Query) ([]archive.RunRecord, error) {
	var res []archive.RunRecord
	for _, r := range f.records {
		if q.Year != 0 && r.Year != q.Year {
			continue
		}
		if q.Month != 0 && r.Month != q.Month {
			continue
		}
		if !q.Start.IsZero() && r.CreatedAt.Before(q.Start) {
			continue
		}
		if !q.End.IsZero() && r.CreatedAt.After(q.End) {
			continue
		}
		res = append(res, r)
	}
	return res, nil
}

func (f *fakeStore) Close() error { return nil }

func seededStore() *fakeStore {
	base := time.Date(2025, time.June, 30, 12, 0, 0, 0, time.UTC)
	return &fakeStore{records: []archive.RunRecord{
		{
			ID: "old", CreatedAt: base.Add(-48 * time.Hour), Year: 2025, Month: time.May,
			Summary: schedule.Summary{TotalVisits: 1, Passed: true},
		},
		{
			ID: "latest", CreatedAt: base, Year: 2025, Month: time.June,
			Summary: schedule.Summary{TotalVisits: 2, Passed: false},
			Visits: []model.Visit{
				{Customer: "acme", Team: "north", Type: model.VisitMonthly1, Day: 2},
				{Customer: "acme", Team: "north", Type: model.VisitMonthly2, Day: 16},
			},
			Violations: []string{"VIP visit for crown could not be placed on 2025-06-03"},
		},
	}}
}

func newTestServer(t *testing.T, opts Options) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(NewRouter(seededStore(), opts))
	t.Cleanup(srv.Close)
	return srv
}

func getJSON(t *testing.T, url string, out any) *http.Response {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	if out != nil && resp.StatusCode == http.StatusOK {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

func TestListRuns(t *testing.T) {
	srv := newTestServer(t, Options{AllowedOrigins: []string{"*"}})

	var runs []archive.RunRecord
	resp := getJSON(t, srv.URL+"/api/runs", &runs)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, runs, 2)

	runs = nil
	resp = getJSON(t, srv.URL+"/api/runs?month=6", &runs)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, runs, 1)
	assert.Equal(t, "latest", runs[0].ID)

	runs = nil
	resp = getJSON(t, srv.URL+"/api/runs?start=2025-06-30T00:00:00Z", &runs)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, runs, 1)
	assert.Equal(t, "latest", runs[0].ID)
}

func TestLatestEndpointsPickNewestRun(t *testing.T) {
	srv := newTestServer(t, Options{AllowedOrigins: []string{"*"}})

	var sched struct {
		ID     string        `json:"id"`
		Visits []model.Visit `json:"visits"`
	}
	resp := getJSON(t, srv.URL+"/api/schedule", &sched)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "latest", sched.ID)
	assert.Len(t, sched.Visits, 2)

	var sum schedule.Summary
	resp = getJSON(t, srv.URL+"/api/summary", &sum)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 2, sum.TotalVisits)
	assert.False(t, sum.Passed)

	var violations []string
	resp = getJSON(t, srv.URL+"/api/violations", &violations)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, violations, 1)
	assert.Contains(t, violations[0], "could not be placed")
}

func TestLatest_EmptyArchive(t *testing.T) {
	srv := httptest.NewServer(NewRouter(&fakeStore{}, Options{AllowedOrigins: []string{"*"}}))
	defer srv.Close()

	resp := getJSON(t, srv.URL+"/api/schedule", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestBearerAuth(t *testing.T) {
	srv := newTestServer(t, Options{AllowedOrigins: []string{"*"}, Token: "s3cret"})

	resp := getJSON(t, srv.URL+"/api/runs", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/api/runs", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer s3cret")
	authed, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer func() { _ = authed.Body.Close() }()
	assert.Equal(t, http.StatusOK, authed.StatusCode)
}
