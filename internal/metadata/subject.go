package metadata

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// SubjectDetector locates a document's topic line. Marker lines win over the
// header heuristic; the first marker line decides even when it sanitizes to
// nothing.
type SubjectDetector struct {
	profile *Profile
	strip   []*regexp.Regexp // one per marker, case-insensitive
}

func NewSubjectDetector(p *Profile) *SubjectDetector {
	d := &SubjectDetector{profile: p}
	for _, m := range p.SubjectMarkers {
		d.strip = append(d.strip, regexp.MustCompile(`(?i)`+regexp.QuoteMeta(m)))
	}
	return d
}

// Find scans lines top to bottom for a subject-marker line; failing that it
// accepts the first plausible header line within the scan window.
func (d *SubjectDetector) Find(lines []string) (string, bool) {
	for _, line := range lines {
		lower := strings.ToLower(line)
		for i, m := range d.profile.SubjectMarkers {
			if strings.Contains(lower, m) {
				s := sanitizeSubject(d.strip[i].ReplaceAllString(line, ""))
				return s, s != ""
			}
		}
	}

	scan := lines
	if len(scan) > d.profile.HeaderScanLines {
		scan = scan[:d.profile.HeaderScanLines]
	}
	for _, line := range scan {
		trimmed := strings.TrimSpace(line)
		n := utf8.RuneCountInString(trimmed)
		if n < d.profile.MinHeaderLen || n > d.profile.MaxHeaderLen {
			continue
		}
		if d.isAddressLine(trimmed) {
			continue
		}
		if s := sanitizeSubject(trimmed); s != "" {
			return s, true
		}
	}

	return "", false
}

func (d *SubjectDetector) isAddressLine(line string) bool {
	lower := strings.ToLower(line)
	for _, hint := range d.profile.AddressHints {
		if strings.Contains(lower, hint) {
			return true
		}
	}
	return false
}

// sanitizeSubject trims surrounding whitespace and punctuation and collapses
// internal whitespace to single spaces.
func sanitizeSubject(s string) string {
	s = strings.TrimFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || unicode.IsPunct(r)
	})
	return strings.Join(strings.Fields(s), " ")
}
