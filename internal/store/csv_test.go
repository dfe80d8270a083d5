package store

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobpulse/internal/domain/job"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "jobs_20260801_000000.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadCSV(t *testing.T) {
	path := writeFile(t, `job_id,title,company,skills,location,experience,salary,posted_date,url
j1,Backend Engineer,Acme,"Go, Docker, PostgreSQL",Bangalore,2-4 years,1200000-1800000,2026-07-20,https://acme.example/j1
j2,Data Scientist,Beta,"Python, SQL",Remote,,,2026-07-21 09:30:00,
`)

	postings, err := LoadCSV(path, discardLogger())
	require.NoError(t, err)
	require.Len(t, postings, 2)

	assert.Equal(t, "j1", postings[0].ID)
	assert.Equal(t, []string{"Go", "Docker", "PostgreSQL"}, postings[0].Skills)
	assert.Equal(t, 1200000.0, postings[0].SalaryMin)
	assert.Equal(t, 1800000.0, postings[0].SalaryMax)
	assert.Equal(t, time.Date(2026, 7, 20, 0, 0, 0, 0, time.UTC), postings[0].PostedAt)

	assert.False(t, postings[1].HasSalary())
	assert.Equal(t, "Remote", postings[1].Location)
}

func TestLoadCSV_SkipsMalformedRows(t *testing.T) {
	path := writeFile(t, `job_id,title,company,skills,location,experience,salary,posted_date,url
,No ID,Acme,Go,,,,,
j2,Bad Salary,Acme,Go,,,not-a-number,,
j3,Bad Date,Acme,Go,,,,yesterday,
j4,Fine,Acme,Go,Pune,,,2026-07-01,
`)

	postings, err := LoadCSV(path, discardLogger())
	require.NoError(t, err)
	require.Len(t, postings, 1)
	assert.Equal(t, "j4", postings[0].ID)
}

func TestLoadCSV_EmptyFile(t *testing.T) {
	postings, err := LoadCSV(writeFile(t, ""), discardLogger())
	require.NoError(t, err)
	assert.Empty(t, postings)
}

func TestLoadCSV_MissingRequiredColumn(t *testing.T) {
	_, err := LoadCSV(writeFile(t, "title,company\na,b\n"), discardLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "job_id")
}

func TestWriteCSVRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := CSVName(dir, time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC))

	in := []job.Posting{{
		ID:        "j1",
		Title:     "SRE",
		Company:   "Acme",
		Skills:    []string{"Kubernetes", "Terraform"},
		Location:  "Hyderabad",
		SalaryMin: 2000000,
		SalaryMax: 3000000,
		PostedAt:  time.Date(2026, 7, 30, 10, 0, 0, 0, time.UTC),
		URL:       "https://acme.example/j1",
	}}
	require.NoError(t, WriteCSV(path, in))

	out, err := LoadCSV(path, discardLogger())
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, in[0], out[0])
}

func TestLatestCSVAndPrune(t *testing.T) {
	dir := t.TempDir()

	_, ok := LatestCSV(dir)
	assert.False(t, ok)

	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		require.NoError(t, WriteCSV(CSVName(dir, base.Add(time.Duration(i)*time.Hour)), nil))
	}

	latest, ok := LatestCSV(dir)
	require.True(t, ok)
	assert.Equal(t, CSVName(dir, base.Add(2*time.Hour)), latest)

	PruneCSV(dir, 1, discardLogger())
	matches, err := filepath.Glob(filepath.Join(dir, "jobs_*.csv"))
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, latest, matches[0])
}
