package journal

import (
	"context"
	"errors"
	"testing"

	"github.com/abcmartin/scansorter/constants"
	"github.com/abcmartin/scansorter/internal/pipeline"
)

func TestSinkRecordsOnlyCompletedTransitions(t *testing.T) {
	j := openTestJournal(t)
	s := NewSink(j, nil)

	s.Notify(pipeline.Status{Kind: constants.StatusQueued, Path: "/scans/a.pdf"})
	s.Notify(pipeline.Status{Kind: constants.StatusProcessing, Path: "/scans/a.pdf"})
	s.Notify(pipeline.Status{
		Kind: constants.StatusCompleted,
		Path: "/scans/a.pdf",
		Outcome: pipeline.Outcome{
			Kind:     constants.OutcomeRenamed,
			Path:     "/scans/2023-04-03_Jahresabrechnung.pdf",
			Subject:  "Jahresabrechnung",
			Date:     "2023-04-03",
			Reliable: true,
		},
	})

	got, err := j.List(context.Background(), nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d entries, want 1", len(got))
	}
	e := got[0]
	if e.Outcome != "RENAMED" || e.TargetPath != "/scans/2023-04-03_Jahresabrechnung.pdf" {
		t.Fatalf("entry = %+v", e)
	}
	if e.Subject != "Jahresabrechnung" || e.DocDate != "2023-04-03" || !e.Reliable {
		t.Fatalf("entry = %+v", e)
	}
}

func TestSinkRecordsFailureError(t *testing.T) {
	j := openTestJournal(t)
	s := NewSink(j, nil)

	s.Notify(pipeline.Status{
		Kind: constants.StatusCompleted,
		Path: "/scans/bad.pdf",
		Outcome: pipeline.Outcome{
			Kind: constants.OutcomeFailed,
			Err:  errors.New("recognition failed"),
		},
	})

	got, err := j.List(context.Background(), nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Outcome != "FAILED" || got[0].Error != "recognition failed" {
		t.Fatalf("entries = %+v", got)
	}
}
