package export

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/abcmartin/scansorter/internal/journal"
)

func seededJournal(t *testing.T) *journal.Journal {
	t.Helper()
	j, err := journal.Open(context.Background(), filepath.Join(t.TempDir(), "history.db"), nil)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = j.Close() })

	entries := []journal.Entry{
		{
			SourcePath:  "/scans/scan1.pdf",
			Outcome:     "RENAMED",
			TargetPath:  "/scans/2023-04-03_Jahresabrechnung.pdf",
			Subject:     "Jahresabrechnung",
			DocDate:     "2023-04-03",
			Reliable:    true,
			ProcessedAt: time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
		},
		{
			SourcePath:  "/scans/scan2.pdf",
			Outcome:     "REVIEWED",
			TargetPath:  "/scans/Review/0000-00-00_Review_scan2.pdf",
			ProcessedAt: time.Date(2026, 8, 2, 10, 0, 0, 0, time.UTC),
		},
	}
	for _, e := range entries {
		if err := j.Record(context.Background(), e); err != nil {
			t.Fatal(err)
		}
	}
	return j
}

func TestExportHistoryXLSX(t *testing.T) {
	svc := NewService(seededJournal(t), nil)

	data, err := svc.ExportHistoryXLSX(context.Background(), nil, nil)
	if err != nil {
		t.Fatal(err)
	}

	wb, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	defer wb.Close()

	rows, err := wb.GetRows("History")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want header plus 2 entries", len(rows))
	}
	if rows[0][0] != "Processed At" || rows[0][2] != "Outcome" || rows[0][7] != "Error" {
		t.Fatalf("header = %v", rows[0])
	}
	if rows[1][1] != "/scans/scan1.pdf" || rows[1][2] != "RENAMED" || rows[1][4] != "Jahresabrechnung" {
		t.Fatalf("row 1 = %v", rows[1])
	}
	if rows[2][2] != "REVIEWED" || rows[2][3] != "/scans/Review/0000-00-00_Review_scan2.pdf" {
		t.Fatalf("row 2 = %v", rows[2])
	}
}

func TestExportHistoryXLSXWindow(t *testing.T) {
	svc := NewService(seededJournal(t), nil)

	from := time.Date(2026, 8, 2, 0, 0, 0, 0, time.UTC)
	data, err := svc.ExportHistoryXLSX(context.Background(), &from, nil)
	if err != nil {
		t.Fatal(err)
	}

	wb, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	defer wb.Close()

	rows, err := wb.GetRows("History")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want header plus 1 entry", len(rows))
	}
	if rows[1][1] != "/scans/scan2.pdf" {
		t.Fatalf("row 1 = %v", rows[1])
	}
}
