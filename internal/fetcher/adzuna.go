package fetcher

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"jobpulse/internal/config"
	"jobpulse/internal/domain/job"
)

// concurrent page requests against the feed
const maxInflightPages = 4

var ErrMissingCredentials = errors.New("adzuna credentials not configured")

// Client fetches job postings from the Adzuna search API.
type Client struct {
	cfg    config.AdzunaConfig
	client *http.Client
	logger *slog.Logger
}

func NewClient(cfg config.AdzunaConfig, logger *slog.Logger) *Client {
	return &Client{
		cfg:    cfg,
		client: &http.Client{Timeout: 15 * time.Second},
		logger: logger,
	}
}

type searchResponse struct {
	Results []adzunaJob `json:"results"`
	Count   int         `json:"count"`
}

type adzunaJob struct {
	ID      string  `json:"id"`
	Title   string  `json:"title"`
	Created string  `json:"created"`
	Company struct {
		DisplayName string `json:"display_name"`
	} `json:"company"`
	Location struct {
		DisplayName string `json:"display_name"`
	} `json:"location"`
	Description string  `json:"description"`
	SalaryMin   float64 `json:"salary_min"`
	SalaryMax   float64 `json:"salary_max"`
	RedirectURL string  `json:"redirect_url"`
}

// FetchJobs pulls the configured number of result pages with bounded
// concurrency and maps them to postings in page order. Pages past the
// end of the result set come back empty and are simply skipped.
func (c *Client) FetchJobs(ctx context.Context) ([]job.Posting, error) {
	if c == nil || c.client == nil {
		return nil, errors.New("nil fetcher client")
	}
	if strings.TrimSpace(c.cfg.AppID) == "" || strings.TrimSpace(c.cfg.AppKey) == "" {
		return nil, ErrMissingCredentials
	}

	pages := c.cfg.Pages
	if pages < 1 {
		pages = 1
	}

	byPage := make([][]job.Posting, pages)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxInflightPages)
	for page := 1; page <= pages; page++ {
		g.Go(func() error {
			postings, err := c.fetchPage(gctx, page)
			if err != nil {
				return err
			}
			byPage[page-1] = postings
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]job.Posting, 0, pages*c.cfg.PerPage)
	seen := make(map[string]struct{})
	for _, postings := range byPage {
		for _, p := range postings {
			if _, dup := seen[p.ID]; dup {
				continue
			}
			seen[p.ID] = struct{}{}
			out = append(out, p)
		}
	}

	if c.logger != nil {
		c.logger.Info("fetched job feed", "jobs", len(out), "pages", pages, "query", c.cfg.Query)
	}
	return out, nil
}

func (c *Client) fetchPage(ctx context.Context, page int) ([]job.Posting, error) {
	endpoint := fmt.Sprintf("%s/jobs/%s/search/%d",
		strings.TrimRight(c.cfg.BaseURL, "/"), url.PathEscape(c.cfg.Country), page)

	q := url.Values{}
	q.Set("app_id", c.cfg.AppID)
	q.Set("app_key", c.cfg.AppKey)
	q.Set("results_per_page", strconv.Itoa(c.cfg.PerPage))
	q.Set("content-type", "application/json")
	if c.cfg.Query != "" {
		q.Set("what", c.cfg.Query)
	}
	if c.cfg.Location != "" {
		q.Set("where", c.cfg.Location)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch page %d: %w", page, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		rb, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("fetch page %d: status=%d body=%s", page, resp.StatusCode, strings.TrimSpace(string(rb)))
	}

	var sr searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return nil, fmt.Errorf("fetch page %d: decode: %w", page, err)
	}

	postings := make([]job.Posting, 0, len(sr.Results))
	for _, r := range sr.Results {
		p, ok := c.mapJob(r)
		if !ok {
			continue
		}
		postings = append(postings, p)
	}
	return postings, nil
}

func (c *Client) mapJob(r adzunaJob) (job.Posting, bool) {
	id := strings.TrimSpace(r.ID)
	title := strings.TrimSpace(r.Title)
	if id == "" || title == "" {
		if c.logger != nil {
			c.logger.Warn("skipping feed result without id or title")
		}
		return job.Posting{}, false
	}

	posted := time.Time{}
	if r.Created != "" {
		if t, err := time.Parse(time.RFC3339, r.Created); err == nil {
			posted = t.UTC()
		} else if t, err := time.Parse("2006-01-02T15:04:05Z", r.Created); err == nil {
			posted = t.UTC()
		}
	}

	skills := ExtractSkills(title + " " + r.Description)

	return job.Posting{
		ID:         id,
		Title:      title,
		Company:    strings.TrimSpace(r.Company.DisplayName),
		Skills:     skills,
		Location:   strings.TrimSpace(r.Location.DisplayName),
		Experience: extractExperience(r.Description),
		SalaryMin:  r.SalaryMin,
		SalaryMax:  r.SalaryMax,
		PostedAt:   posted,
		URL:        strings.TrimSpace(r.RedirectURL),
	}, true
}

// extractExperience pulls a "2-4 years" style requirement out of the
// description when present.
func extractExperience(description string) string {
	lower := strings.ToLower(description)
	idx := strings.Index(lower, "years")
	if idx < 0 {
		return ""
	}
	start := idx - 12
	if start < 0 {
		start = 0
	}
	window := strings.TrimSpace(lower[start : idx+len("years")])

	fields := strings.Fields(window)
	for i := len(fields) - 1; i >= 0; i-- {
		tok := strings.Trim(fields[i], "()")
		if band := job.ParseExperienceBand(tok); band.Known {
			if band.OpenEnded {
				return fmt.Sprintf("%d+ years", band.Min)
			}
			if band.Min == band.Max {
				return fmt.Sprintf("%d years", band.Min)
			}
			return fmt.Sprintf("%d-%d years", band.Min, band.Max)
		}
	}
	return ""
}

// SortByPostedDesc orders postings newest first, useful for stable CSV
// dumps.
func SortByPostedDesc(postings []job.Posting) {
	sort.SliceStable(postings, func(i, j int) bool {
		if !postings[i].PostedAt.Equal(postings[j].PostedAt) {
			return postings[i].PostedAt.After(postings[j].PostedAt)
		}
		return postings[i].ID < postings[j].ID
	})
}
