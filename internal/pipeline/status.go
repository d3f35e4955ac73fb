package pipeline

import (
	"log/slog"

	"github.com/abcmartin/scansorter/constants"
)

// Outcome is the terminal result of one processing attempt. Exactly one
// variant holds: Renamed and Reviewed carry Path, Failed carries Err.
type Outcome struct {
	Kind constants.OutcomeKind
	Path string // destination for RENAMED / REVIEWED
	Err  error  // set for FAILED

	// diagnostics for the status sink
	Subject  string
	Date     string // yyyy-mm-dd when a date was used
	Reliable bool   // text came from the embedded layer
}

// Status is one lifecycle transition for a path. For a given path the sink
// observes Queued → Processing → Completed; Queued is skipped when the dedup
// queue drops a duplicate trigger.
type Status struct {
	Kind    constants.StatusKind
	Path    string
	Outcome Outcome // valid when Kind == StatusCompleted
}

// StatusSink receives status transitions. Display only; the core never reads
// anything back from it.
type StatusSink interface {
	Notify(Status)
}

// LogSink writes every transition to the structured log.
type LogSink struct {
	Log *slog.Logger
}

func (s LogSink) Notify(st Status) {
	switch st.Kind {
	case constants.StatusCompleted:
		if st.Outcome.Kind == constants.OutcomeFailed {
			s.Log.Error("pipeline.completed", "path", st.Path, "outcome", string(st.Outcome.Kind), "error", st.Outcome.Err)
			return
		}
		s.Log.Info("pipeline.completed", "path", st.Path, "outcome", string(st.Outcome.Kind), "dest", st.Outcome.Path)
	default:
		s.Log.Info("pipeline.status", "path", st.Path, "status", string(st.Kind))
	}
}

// MultiSink fans a transition out to several sinks in order.
type MultiSink []StatusSink

func (m MultiSink) Notify(st Status) {
	for _, s := range m {
		s.Notify(st)
	}
}
