package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/abcmartin/scansorter/internal/journal"
)

// Service produces XLSX bytes from the processing journal.
type Service struct {
	journal *journal.Journal
	log     *slog.Logger
}

func NewService(j *journal.Journal, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{journal: j, log: log}
}

// ExportHistoryXLSX returns a workbook for the given date window.
// If only from is provided -> from..now (inclusive).
// If neither is provided   -> the full history.
func (s *Service) ExportHistoryXLSX(ctx context.Context, from, to *time.Time) ([]byte, error) {
	start := time.Now()

	if from != nil && to == nil {
		now := time.Now().UTC()
		to = &now
	}

	entries, err := s.journal.List(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "History"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Processed At",
		"Source File",
		"Outcome",
		"Destination",
		"Subject",
		"Document Date",
		"Reliable Text",
		"Error",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, e := range entries {
		values := []any{
			e.ProcessedAt.UTC().Format(time.RFC3339),
			e.SourcePath,
			e.Outcome,
			e.TargetPath,
			e.Subject,
			e.DocDate,
			e.Reliable,
			e.Error,
		}
		for i, v := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
		row++
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serialize workbook: %w", err)
	}

	s.log.Info("export.history.ok", "rows", len(entries), "duration_ms", time.Since(start).Milliseconds())
	return buf.Bytes(), nil
}
