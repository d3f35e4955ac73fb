package journal

import (
	"context"
	"log/slog"
	"time"

	"github.com/abcmartin/scansorter/constants"
	"github.com/abcmartin/scansorter/internal/pipeline"
)

// Sink records completed outcomes into the journal. Other transitions pass
// through untouched; a failed write is logged, never surfaced, because the
// journal must not disturb the pipeline.
type Sink struct {
	Journal *Journal
	Log     *slog.Logger
	Timeout time.Duration
}

func NewSink(j *Journal, log *slog.Logger) *Sink {
	if log == nil {
		log = slog.Default()
	}
	return &Sink{Journal: j, Log: log, Timeout: 5 * time.Second}
}

func (s *Sink) Notify(st pipeline.Status) {
	if st.Kind != constants.StatusCompleted {
		return
	}
	e := Entry{
		SourcePath: st.Path,
		Outcome:    string(st.Outcome.Kind),
		TargetPath: st.Outcome.Path,
		Subject:    st.Outcome.Subject,
		DocDate:    st.Outcome.Date,
		Reliable:   st.Outcome.Reliable,
	}
	if st.Outcome.Err != nil {
		e.Error = st.Outcome.Err.Error()
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.Timeout)
	defer cancel()
	if err := s.Journal.Record(ctx, e); err != nil {
		s.Log.Error("journal.record.failed", "path", st.Path, "error", err)
	}
}
