package journal

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func openTestJournal(t *testing.T) *Journal {
	t.Helper()
	j, err := Open(context.Background(), filepath.Join(t.TempDir(), "history.db"), nil)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = j.Close() })
	return j
}

func TestRecordAndListRoundtrip(t *testing.T) {
	j := openTestJournal(t)
	ctx := context.Background()

	at := time.Date(2026, 8, 30, 12, 0, 0, 123456789, time.UTC)
	e := Entry{
		SourcePath:  "/scans/scan.pdf",
		Outcome:     "RENAMED",
		TargetPath:  "/scans/2023-04-03_Jahresabrechnung.pdf",
		Subject:     "Jahresabrechnung",
		DocDate:     "2023-04-03",
		Reliable:    true,
		ProcessedAt: at,
	}
	if err := j.Record(ctx, e); err != nil {
		t.Fatal(err)
	}

	got, err := j.List(ctx, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d entries, want 1", len(got))
	}
	r := got[0]
	if r.ID == "" {
		t.Fatal("missing generated id")
	}
	if r.SourcePath != e.SourcePath || r.Outcome != e.Outcome || r.TargetPath != e.TargetPath {
		t.Fatalf("got %+v", r)
	}
	if r.Subject != e.Subject || r.DocDate != e.DocDate || !r.Reliable {
		t.Fatalf("got %+v", r)
	}
	if !r.ProcessedAt.Equal(at) {
		t.Fatalf("ProcessedAt = %v, want %v", r.ProcessedAt, at)
	}
}

func TestListOrdersAndWindows(t *testing.T) {
	j := openTestJournal(t)
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	for i, src := range []string{"/scans/c.pdf", "/scans/a.pdf", "/scans/b.pdf"} {
		// insertion order is deliberately not time order
		at := base.AddDate(0, 0, []int{2, 0, 1}[i])
		if err := j.Record(ctx, Entry{SourcePath: src, Outcome: "REVIEWED", ProcessedAt: at}); err != nil {
			t.Fatal(err)
		}
	}

	all, err := j.List(ctx, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 3 {
		t.Fatalf("got %d entries", len(all))
	}
	for i, want := range []string{"/scans/a.pdf", "/scans/b.pdf", "/scans/c.pdf"} {
		if all[i].SourcePath != want {
			t.Fatalf("entry %d = %s, want %s", i, all[i].SourcePath, want)
		}
	}

	from := base.AddDate(0, 0, 1)
	to := base.AddDate(0, 0, 1)
	windowed, err := j.List(ctx, &from, &to)
	if err != nil {
		t.Fatal(err)
	}
	if len(windowed) != 1 || windowed[0].SourcePath != "/scans/b.pdf" {
		t.Fatalf("windowed = %+v", windowed)
	}

	onlyFrom, err := j.List(ctx, &from, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(onlyFrom) != 2 {
		t.Fatalf("got %d entries from open-ended window", len(onlyFrom))
	}
}

func TestRecordDefaultsTimestamp(t *testing.T) {
	j := openTestJournal(t)
	ctx := context.Background()

	before := time.Now().UTC().Add(-time.Second)
	if err := j.Record(ctx, Entry{SourcePath: "/scans/x.pdf", Outcome: "FAILED", Error: "corrupt xref"}); err != nil {
		t.Fatal(err)
	}
	got, err := j.List(ctx, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].ProcessedAt.Before(before) {
		t.Fatalf("got %+v", got)
	}
	if got[0].Error != "corrupt xref" {
		t.Fatalf("error column = %q", got[0].Error)
	}
}
