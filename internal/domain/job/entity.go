package job

import (
	"strconv"
	"strings"
	"time"
)

// Posting is one job record from the dataset. Postings are immutable
// once loaded; the store only ever replaces whole snapshots.
type Posting struct {
	ID         string
	Title      string
	Company    string
	Skills     []string
	Location   string
	Experience string
	SalaryMin  float64
	SalaryMax  float64
	PostedAt   time.Time
	URL        string
}

// Profile is the transient per-request user side of a match.
type Profile struct {
	Skills            []string
	ExperienceYears   int
	PreferredLocation string
}

func (p Posting) HasSalary() bool {
	return p.SalaryMin > 0 && p.SalaryMax > 0
}

func (p Posting) AvgSalary() float64 {
	if !p.HasSalary() {
		return 0
	}
	return (p.SalaryMin + p.SalaryMax) / 2
}

// NormalizeSkill lowercases and collapses whitespace so that "Machine  Learning"
// and "machine learning" are the same token.
func NormalizeSkill(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(s))), " ")
}

// NormalizeSkills normalizes and de-duplicates, preserving first-seen order.
func NormalizeSkills(skills []string) []string {
	out := make([]string, 0, len(skills))
	seen := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		n := NormalizeSkill(s)
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}

var locationAliases = map[string]string{
	"bengaluru": "bangalore",
	"bombay":    "mumbai",
	"new delhi": "delhi",
	"ncr":       "delhi",
	"gurugram":  "gurgaon",
	"wfh":       "remote",
	"work from home": "remote",
}

// NormalizeLocation reduces a raw location string to a comparable city
// name: lowercase, first segment before a comma, known aliases folded.
func NormalizeLocation(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ""
	}
	if i := strings.Index(s, ","); i >= 0 {
		s = s[:i]
	}
	s = strings.Join(strings.Fields(s), " ")
	if alias, ok := locationAliases[s]; ok {
		return alias
	}
	if strings.Contains(s, "remote") {
		return "remote"
	}
	return s
}

// ExperienceBand is a parsed experience requirement such as "2-4 years"
// or "7+ years". Max is math-free: for open-ended bands it mirrors Min.
type ExperienceBand struct {
	Min       int
	Max       int
	OpenEnded bool
	Known     bool
}

// ParseExperienceBand understands "2-4 years", "2 - 4", "7+", "5 years"
// and returns Known=false for anything else.
func ParseExperienceBand(raw string) ExperienceBand {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.TrimSuffix(s, "years")
	s = strings.TrimSuffix(s, "year")
	s = strings.TrimSuffix(s, "yrs")
	s = strings.TrimSpace(s)
	if s == "" {
		return ExperienceBand{}
	}

	if strings.HasSuffix(s, "+") {
		v, err := strconv.Atoi(strings.TrimSpace(strings.TrimSuffix(s, "+")))
		if err != nil || v < 0 {
			return ExperienceBand{}
		}
		return ExperienceBand{Min: v, Max: v, OpenEnded: true, Known: true}
	}

	if lo, hi, ok := strings.Cut(s, "-"); ok {
		minV, err1 := strconv.Atoi(strings.TrimSpace(lo))
		maxV, err2 := strconv.Atoi(strings.TrimSpace(hi))
		if err1 != nil || err2 != nil || minV < 0 || maxV < minV {
			return ExperienceBand{}
		}
		return ExperienceBand{Min: minV, Max: maxV, Known: true}
	}

	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return ExperienceBand{}
	}
	return ExperienceBand{Min: v, Max: v, Known: true}
}

// Distance is the whole-year gap between years of experience and the
// band; zero when years fall inside it.
func (b ExperienceBand) Distance(years int) int {
	if !b.Known {
		return 0
	}
	if years < b.Min {
		return b.Min - years
	}
	if b.OpenEnded || years <= b.Max {
		return 0
	}
	return years - b.Max
}
