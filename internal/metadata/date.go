package metadata

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// dateStrategy is one pattern in the fixed priority order. The first strategy
// whose regex matches consumes the attempt: a semantic parse failure yields no
// date at all rather than falling through to a later strategy.
type dateStrategy struct {
	name  string
	re    *regexp.Regexp
	parse func(match []string) (time.Time, error)
}

// DateDetector tries the numeric day.month.year pattern, then ISO
// year-month-day, then the long-form "day MonthName year" pattern.
type DateDetector struct {
	strategies []dateStrategy
}

const (
	dayPattern   = `(0?[1-9]|[12][0-9]|3[01])`
	monthPattern = `(0?[1-9]|1[0-2])`
	yearPattern  = `((?:19|20)\d\d)`
)

func NewDateDetector(p *Profile) *DateDetector {
	months := make([]string, len(p.MonthNames))
	for i, m := range p.MonthNames {
		months[i] = regexp.QuoteMeta(m)
	}
	monthNames := make(map[string]time.Month, len(p.MonthNames))
	for i, m := range p.MonthNames {
		monthNames[strings.ToLower(m)] = time.Month(i + 1)
	}

	return &DateDetector{strategies: []dateStrategy{
		{
			name:  "numeric",
			re:    regexp.MustCompile(`\b` + dayPattern + `\.` + monthPattern + `\.` + yearPattern + `\b`),
			parse: func(match []string) (time.Time, error) { return time.Parse("2.1.2006", match[0]) },
		},
		{
			name: "iso",
			re:   regexp.MustCompile(`\b` + yearPattern + `-` + monthPattern + `-` + dayPattern + `\b`),
			parse: func(match []string) (time.Time, error) {
				// strict format: an unpadded match fails the semantic parse
				return time.Parse("2006-01-02", match[0])
			},
		},
		{
			name: "longform",
			re:   regexp.MustCompile(`\b` + dayPattern + `\s+((?i:` + strings.Join(months, "|") + `))\s+` + yearPattern + `\b`),
			parse: func(match []string) (time.Time, error) {
				day, err := strconv.Atoi(match[1])
				if err != nil {
					return time.Time{}, err
				}
				month, ok := monthNames[strings.ToLower(match[2])]
				if !ok {
					return time.Time{}, fmt.Errorf("unknown month name %q", match[2])
				}
				year, err := strconv.Atoi(match[3])
				if err != nil {
					return time.Time{}, err
				}
				return calendarDate(year, month, day)
			},
		},
	}}
}

// Find returns the date of the first strategy that matches syntactically and
// parses semantically. No match at all, or a match that fails to parse, both
// yield no date.
func (d *DateDetector) Find(text string) (time.Time, bool) {
	for _, s := range d.strategies {
		match := s.re.FindStringSubmatch(text)
		if match == nil {
			continue
		}
		t, err := s.parse(match)
		if err != nil {
			return time.Time{}, false
		}
		return t, true
	}
	return time.Time{}, false
}

// calendarDate builds a date and rejects overflow (time.Date normalizes
// day 31 of a 30-day month into the next month).
func calendarDate(year int, month time.Month, day int) (time.Time, error) {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return time.Time{}, fmt.Errorf("invalid calendar date %d-%d-%d", year, month, day)
	}
	return t, nil
}
