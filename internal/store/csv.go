package store

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"jobpulse/internal/domain/job"
)

var csvHeader = []string{
	"job_id", "title", "company", "skills", "location",
	"experience", "salary", "posted_date", "url",
}

// LoadCSV reads a dataset dump. Malformed rows are skipped with a
// logged warning; an empty file yields an empty slice, not an error.
func LoadCSV(path string, logger *slog.Logger) ([]job.Posting, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read dataset header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{"job_id", "title", "skills"} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("dataset missing column %q", required)
		}
	}

	postings := make([]job.Posting, 0, 256)
	line := 1
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			if logger != nil {
				logger.Warn("skipping unreadable dataset row", "line", line, "error", err)
			}
			continue
		}

		p, err := parseRow(record, cols)
		if err != nil {
			if logger != nil {
				logger.Warn("skipping malformed dataset row", "line", line, "error", err)
			}
			continue
		}
		postings = append(postings, p)
	}

	return postings, nil
}

func parseRow(record []string, cols map[string]int) (job.Posting, error) {
	field := func(name string) string {
		idx, ok := cols[name]
		if !ok || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	id := field("job_id")
	title := field("title")
	if id == "" || title == "" {
		return job.Posting{}, errors.New("empty job_id or title")
	}

	skills := splitSkills(field("skills"))
	salaryMin, salaryMax, err := parseSalary(field("salary"))
	if err != nil {
		return job.Posting{}, err
	}

	posted, err := parsePostedDate(field("posted_date"))
	if err != nil {
		return job.Posting{}, err
	}

	return job.Posting{
		ID:         id,
		Title:      title,
		Company:    field("company"),
		Skills:     skills,
		Location:   field("location"),
		Experience: field("experience"),
		SalaryMin:  salaryMin,
		SalaryMax:  salaryMax,
		PostedAt:   posted,
		URL:        field("url"),
	}, nil
}

func splitSkills(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// parseSalary accepts "50000-90000", a single number, or empty.
func parseSalary(raw string) (minV, maxV float64, err error) {
	if raw == "" {
		return 0, 0, nil
	}
	if lo, hi, ok := strings.Cut(raw, "-"); ok {
		minV, err = strconv.ParseFloat(strings.TrimSpace(lo), 64)
		if err != nil {
			return 0, 0, fmt.Errorf("bad salary %q", raw)
		}
		maxV, err = strconv.ParseFloat(strings.TrimSpace(hi), 64)
		if err != nil || maxV < minV || minV < 0 {
			return 0, 0, fmt.Errorf("bad salary %q", raw)
		}
		return minV, maxV, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 {
		return 0, 0, fmt.Errorf("bad salary %q", raw)
	}
	return v, v, nil
}

func parsePostedDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("bad posted_date %q", raw)
}

// WriteCSV dumps postings with the canonical column set to path,
// creating parent directories as needed.
func WriteCSV(path string, postings []job.Posting) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create dataset dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create dataset: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return err
	}
	for _, p := range postings {
		salary := ""
		if p.HasSalary() {
			salary = fmt.Sprintf("%.0f-%.0f", p.SalaryMin, p.SalaryMax)
		}
		posted := ""
		if !p.PostedAt.IsZero() {
			posted = p.PostedAt.UTC().Format(time.RFC3339)
		}
		row := []string{
			p.ID, p.Title, p.Company, strings.Join(p.Skills, ", "),
			p.Location, p.Experience, salary, posted, p.URL,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// LatestCSV finds the newest jobs_*.csv dump in dir, if any.
func LatestCSV(dir string) (string, bool) {
	matches, err := filepath.Glob(filepath.Join(dir, "jobs_*.csv"))
	if err != nil || len(matches) == 0 {
		return "", false
	}
	sort.Strings(matches)
	return matches[len(matches)-1], true
}

// PruneCSV removes older jobs_*.csv dumps, keeping the newest keep
// files. The refresh workflow replaces dumps wholesale, so stale files
// are just disk noise.
func PruneCSV(dir string, keep int, logger *slog.Logger) {
	if keep < 1 {
		keep = 1
	}
	matches, err := filepath.Glob(filepath.Join(dir, "jobs_*.csv"))
	if err != nil || len(matches) <= keep {
		return
	}
	sort.Strings(matches)
	for _, old := range matches[:len(matches)-keep] {
		if err := os.Remove(old); err != nil && logger != nil {
			logger.Warn("could not prune dataset dump", "path", old, "error", err)
		}
	}
}

// CSVName builds the timestamped dump filename used by the refresh
// workflow.
func CSVName(dir string, at time.Time) string {
	return filepath.Join(dir, "jobs_"+at.UTC().Format("20060102_150405")+".csv")
}
