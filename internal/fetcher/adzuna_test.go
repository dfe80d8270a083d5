package fetcher

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobpulse/internal/config"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func feedServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "test-id", r.URL.Query().Get("app_id"))
		require.Equal(t, "test-key", r.URL.Query().Get("app_key"))

		parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
		page := parts[len(parts)-1]

		w.Header().Set("Content-Type", "application/json")
		switch page {
		case "1":
			fmt.Fprint(w, `{"count":3,"results":[
				{"id":"100","title":"Golang Developer","created":"2026-08-20T10:00:00Z",
				 "company":{"display_name":"Acme"},"location":{"display_name":"Bangalore, India"},
				 "description":"Backend role using golang and docker. 2-4 years experience.",
				 "salary_min":1500000,"salary_max":2500000,"redirect_url":"https://example.com/100"},
				{"id":"","title":"Broken"},
				{"id":"101","title":"Data Analyst","created":"2026-08-19T08:00:00Z",
				 "company":{"display_name":"Beta"},"location":{"display_name":"Remote"},
				 "description":"SQL and excel reporting."}
			]}`)
		case "2":
			fmt.Fprint(w, `{"count":3,"results":[
				{"id":"100","title":"Golang Developer","description":"duplicate of page one"},
				{"id":"102","title":"SRE","created":"2026-08-21T09:00:00Z",
				 "description":"kubernetes and terraform on aws"}
			]}`)
		default:
			fmt.Fprint(w, `{"count":3,"results":[]}`)
		}
	}))
}

func testCfg(baseURL string) config.AdzunaConfig {
	return config.AdzunaConfig{
		BaseURL: baseURL,
		Country: "in",
		Query:   "software engineer",
		Pages:   3,
		PerPage: 50,
		AppID:   "test-id",
		AppKey:  "test-key",
	}
}

func TestFetchJobs(t *testing.T) {
	srv := feedServer(t)
	defer srv.Close()

	c := NewClient(testCfg(srv.URL), discardLogger())
	postings, err := c.FetchJobs(context.Background())
	require.NoError(t, err)
	require.Len(t, postings, 3, "broken result skipped, duplicate deduped")

	byID := make(map[string]int)
	for i, p := range postings {
		byID[p.ID] = i
	}
	require.Contains(t, byID, "100")
	require.Contains(t, byID, "101")
	require.Contains(t, byID, "102")
	assert.Less(t, byID["100"], byID["102"], "page order preserved")

	first := postings[byID["100"]]
	assert.Equal(t, "Golang Developer", first.Title)
	assert.Equal(t, "Acme", first.Company)
	assert.Equal(t, "Bangalore, India", first.Location)
	assert.Equal(t, "2-4 years", first.Experience)
	assert.Contains(t, first.Skills, "Go")
	assert.Contains(t, first.Skills, "Docker")
	assert.Equal(t, 1500000.0, first.SalaryMin)
	assert.Equal(t, time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC), first.PostedAt)
}

func TestFetchJobs_MissingCredentials(t *testing.T) {
	cfg := testCfg("http://unused.invalid")
	cfg.AppKey = ""

	c := NewClient(cfg, discardLogger())
	_, err := c.FetchJobs(context.Background())
	require.ErrorIs(t, err, ErrMissingCredentials)
}

func TestFetchJobs_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "exceeded rate limit", http.StatusForbidden)
	}))
	defer srv.Close()

	c := NewClient(testCfg(srv.URL), discardLogger())
	_, err := c.FetchJobs(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status=403")
}

func TestSortByPostedDesc(t *testing.T) {
	srv := feedServer(t)
	defer srv.Close()

	c := NewClient(testCfg(srv.URL), discardLogger())
	postings, err := c.FetchJobs(context.Background())
	require.NoError(t, err)

	SortByPostedDesc(postings)
	require.Len(t, postings, 3)
	assert.Equal(t, "102", postings[0].ID)
	assert.Equal(t, "100", postings[1].ID)
	assert.Equal(t, "101", postings[2].ID)
}
