package metadata

import (
	"log/slog"
	"strings"
	"time"

	"github.com/abcmartin/scansorter/internal/common"
)

// Metadata is the structured record inferred for one document. Absent subject
// or date is represented, never raised as an error.
type Metadata struct {
	Subject    string
	HasSubject bool
	Date       time.Time
	HasDate    bool
	RawText    string // retained for diagnostics
}

// Engine combines the subject and date heuristics over acquired text, with
// the file's creation timestamp as the last-resort date source.
type Engine struct {
	subjects *SubjectDetector
	dates    *DateDetector
	creation common.TimeSource
	log      *slog.Logger
}

func NewEngine(p *Profile, creation common.TimeSource, log *slog.Logger) *Engine {
	if log == nil {
		log = slog.Default()
	}
	if creation == nil {
		creation = common.CreationTime
	}
	return &Engine{
		subjects: NewSubjectDetector(p),
		dates:    NewDateDetector(p),
		creation: creation,
		log:      log,
	}
}

// Infer never fails.
func (e *Engine) Infer(rawText, path string) Metadata {
	normalized := strings.ReplaceAll(rawText, "\r", "")
	lines := splitLines(normalized)

	m := Metadata{RawText: normalized}
	m.Subject, m.HasSubject = e.subjects.Find(lines)
	m.Date, m.HasDate = e.dates.Find(normalized)
	if !m.HasDate {
		m.Date, m.HasDate = e.creation(path)
	}

	e.log.Debug("metadata.infer.done",
		"path", path,
		"has_subject", m.HasSubject,
		"has_date", m.HasDate,
	)
	return m
}

// splitLines drops empty segments, matching split-and-keep-nonempty semantics.
func splitLines(text string) []string {
	var lines []string
	for _, l := range strings.Split(text, "\n") {
		if l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}
