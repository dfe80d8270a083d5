// Package analytics computes market-intelligence metrics over a dataset
// snapshot for the dashboard. Every function tolerates an empty dataset
// by returning empty results.
package analytics

import (
	"math"
	"sort"
	"strings"
	"time"

	"jobpulse/internal/domain/job"
)

type SummaryStats struct {
	TotalJobs      int     `json:"total_jobs"`
	TotalCompanies int     `json:"total_companies"`
	TotalLocations int     `json:"total_locations"`
	AvgSalary      float64 `json:"avg_salary"`
	JobsToday      int     `json:"jobs_today"`
	JobsThisWeek   int     `json:"jobs_this_week"`
}

func Summary(postings []job.Posting, now time.Time) SummaryStats {
	if len(postings) == 0 {
		return SummaryStats{}
	}

	companies := make(map[string]struct{})
	locations := make(map[string]struct{})
	var salarySum float64
	var salaryCount int

	today := now.UTC().Truncate(24 * time.Hour)
	weekAgo := today.AddDate(0, 0, -7)

	stats := SummaryStats{TotalJobs: len(postings)}
	for _, p := range postings {
		if p.Company != "" {
			companies[strings.ToLower(p.Company)] = struct{}{}
		}
		if loc := job.NormalizeLocation(p.Location); loc != "" {
			locations[loc] = struct{}{}
		}
		if p.HasSalary() {
			salarySum += p.AvgSalary()
			salaryCount++
		}
		if !p.PostedAt.IsZero() {
			day := p.PostedAt.UTC().Truncate(24 * time.Hour)
			if day.Equal(today) {
				stats.JobsToday++
			}
			if !day.Before(weekAgo) {
				stats.JobsThisWeek++
			}
		}
	}

	stats.TotalCompanies = len(companies)
	stats.TotalLocations = len(locations)
	if salaryCount > 0 {
		stats.AvgSalary = math.Round(salarySum / float64(salaryCount))
	}
	return stats
}

type SkillCount struct {
	Skill string `json:"skill"`
	Count int    `json:"count"`
}

// TopSkills counts skill occurrences across postings and returns the
// n most demanded, most frequent first.
func TopSkills(postings []job.Posting, n int) []SkillCount {
	counts := make(map[string]int)
	display := make(map[string]string)
	for _, p := range postings {
		for _, raw := range p.Skills {
			norm := job.NormalizeSkill(raw)
			if norm == "" {
				continue
			}
			counts[norm]++
			if _, ok := display[norm]; !ok {
				display[norm] = strings.TrimSpace(raw)
			}
		}
	}

	out := make([]SkillCount, 0, len(counts))
	for norm, c := range counts {
		out = append(out, SkillCount{Skill: display[norm], Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Skill < out[j].Skill
	})
	return truncate(out, n)
}

type CompanyCount struct {
	Company string `json:"company"`
	Count   int    `json:"job_count"`
}

func TopCompanies(postings []job.Posting, n int) []CompanyCount {
	counts := make(map[string]int)
	display := make(map[string]string)
	for _, p := range postings {
		key := strings.ToLower(strings.TrimSpace(p.Company))
		if key == "" {
			continue
		}
		counts[key]++
		if _, ok := display[key]; !ok {
			display[key] = strings.TrimSpace(p.Company)
		}
	}

	out := make([]CompanyCount, 0, len(counts))
	for key, c := range counts {
		out = append(out, CompanyCount{Company: display[key], Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Company < out[j].Company
	})
	return truncate(out, n)
}

// GroupBy selects the salary-trend grouping column.
type GroupBy string

const (
	GroupByLocation GroupBy = "location"
	GroupByTitle    GroupBy = "title"
)

type SalaryTrend struct {
	Group   string  `json:"group"`
	Average float64 `json:"average_salary"`
	Median  float64 `json:"typical_salary"`
	Lowest  float64 `json:"lowest_salary"`
	Highest float64 `json:"highest_salary"`
	Jobs    int     `json:"job_count"`
}

// SalaryTrends aggregates (salary_min+salary_max)/2 over postings with
// both ends set, grouped by location or title, highest average first.
func SalaryTrends(postings []job.Posting, groupBy GroupBy) []SalaryTrend {
	groups := make(map[string][]float64)
	for _, p := range postings {
		if !p.HasSalary() {
			continue
		}
		var key string
		switch groupBy {
		case GroupByTitle:
			key = strings.TrimSpace(p.Title)
		default:
			key = job.NormalizeLocation(p.Location)
		}
		if key == "" {
			continue
		}
		groups[key] = append(groups[key], p.AvgSalary())
	}

	out := make([]SalaryTrend, 0, len(groups))
	for key, salaries := range groups {
		sort.Float64s(salaries)
		var sum float64
		for _, s := range salaries {
			sum += s
		}
		out = append(out, SalaryTrend{
			Group:   key,
			Average: math.Round(sum / float64(len(salaries))),
			Median:  math.Round(median(salaries)),
			Lowest:  math.Round(salaries[0]),
			Highest: math.Round(salaries[len(salaries)-1]),
			Jobs:    len(salaries),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Average != out[j].Average {
			return out[i].Average > out[j].Average
		}
		return out[i].Group < out[j].Group
	})
	return out
}

type LocationStat struct {
	Location  string  `json:"location"`
	Jobs      int     `json:"job_count"`
	AvgSalary float64 `json:"avg_salary"`
}

func LocationStats(postings []job.Posting) []LocationStat {
	type agg struct {
		jobs      int
		salarySum float64
		salaryN   int
	}
	groups := make(map[string]*agg)
	for _, p := range postings {
		key := job.NormalizeLocation(p.Location)
		if key == "" {
			continue
		}
		a := groups[key]
		if a == nil {
			a = &agg{}
			groups[key] = a
		}
		a.jobs++
		if p.HasSalary() {
			a.salarySum += p.AvgSalary()
			a.salaryN++
		}
	}

	out := make([]LocationStat, 0, len(groups))
	for key, a := range groups {
		stat := LocationStat{Location: key, Jobs: a.jobs}
		if a.salaryN > 0 {
			stat.AvgSalary = math.Round(a.salarySum / float64(a.salaryN))
		}
		out = append(out, stat)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Jobs != out[j].Jobs {
			return out[i].Jobs > out[j].Jobs
		}
		return out[i].Location < out[j].Location
	})
	return out
}

type DailyCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// PostingTrends counts postings per day over the trailing window,
// zero-filling days with no activity so charts stay continuous.
func PostingTrends(postings []job.Posting, days int, now time.Time) []DailyCount {
	if days < 1 {
		days = 30
	}
	end := now.UTC().Truncate(24 * time.Hour)
	start := end.AddDate(0, 0, -days)

	counts := make(map[string]int)
	for _, p := range postings {
		if p.PostedAt.IsZero() {
			continue
		}
		day := p.PostedAt.UTC().Truncate(24 * time.Hour)
		if day.Before(start) || day.After(end) {
			continue
		}
		counts[day.Format("2006-01-02")]++
	}

	out := make([]DailyCount, 0, days+1)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		key := d.Format("2006-01-02")
		out = append(out, DailyCount{Date: key, Count: counts[key]})
	}
	return out
}

type ExperienceCount struct {
	Level string `json:"experience_level"`
	Count int    `json:"count"`
}

func ExperienceDistribution(postings []job.Posting) []ExperienceCount {
	counts := make(map[string]int)
	for _, p := range postings {
		level := strings.TrimSpace(p.Experience)
		if level == "" {
			continue
		}
		counts[level]++
	}
	out := make([]ExperienceCount, 0, len(counts))
	for level, c := range counts {
		out = append(out, ExperienceCount{Level: level, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Level < out[j].Level
	})
	return out
}

type RoleCount struct {
	Role  string `json:"role"`
	Count int    `json:"count"`
}

var roleKeywords = []struct {
	role     string
	keywords []string
}{
	{"Data Scientist", []string{"data scientist"}},
	{"Data Engineer", []string{"data engineer"}},
	{"Data Analyst", []string{"data analyst"}},
	{"Full Stack Developer", []string{"full stack"}},
	{"Frontend Developer", []string{"frontend", "front end"}},
	{"Backend Developer", []string{"backend", "back end"}},
	{"DevOps Engineer", []string{"devops"}},
	{"ML Engineer", []string{"machine learning", "ml engineer"}},
	{"Software Engineer", []string{"software engineer", "software developer"}},
	{"QA Engineer", []string{"qa", "test"}},
}

// RoleDistribution buckets titles into canonical roles by keyword,
// everything unmatched counting as "Other".
func RoleDistribution(postings []job.Posting, n int) []RoleCount {
	counts := make(map[string]int)
	for _, p := range postings {
		counts[ExtractRole(p.Title)]++
	}
	out := make([]RoleCount, 0, len(counts))
	for role, c := range counts {
		out = append(out, RoleCount{Role: role, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Role < out[j].Role
	})
	return truncate(out, n)
}

func ExtractRole(title string) string {
	lower := strings.ToLower(title)
	for _, rk := range roleKeywords {
		for _, kw := range rk.keywords {
			if strings.Contains(lower, kw) {
				return rk.role
			}
		}
	}
	return "Other"
}

func median(sorted []float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

func truncate[T any](s []T, n int) []T {
	if n > 0 && len(s) > n {
		return s[:n]
	}
	return s
}
