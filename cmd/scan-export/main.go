package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/abcmartin/scansorter/internal/common"
	"github.com/abcmartin/scansorter/internal/export"
	"github.com/abcmartin/scansorter/internal/journal"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		journalPath = flag.String("journal", "", "path to the processing journal (required)")
		out         = flag.String("out", "history.xlsx", "output XLSX file path")
		fromStr     = flag.String("from", "", "from date YYYY-MM-DD")
		toStr       = flag.String("to", "", "to date YYYY-MM-DD")
	)
	flag.Parse()

	if *journalPath == "" {
		printError("Error: --journal is required\n")
		os.Exit(1)
	}

	var from, to *time.Time
	if *fromStr != "" {
		parsed, err := time.Parse("2006-01-02", *fromStr)
		if err != nil {
			printError("Error: invalid --from date format, use YYYY-MM-DD: %v\n", err)
			os.Exit(1)
		}
		from = &parsed
	}
	if *toStr != "" {
		parsed, err := time.Parse("2006-01-02", *toStr)
		if err != nil {
			printError("Error: invalid --to date format, use YYYY-MM-DD: %v\n", err)
			os.Exit(1)
		}
		// inclusive end of day
		end := parsed.Add(24*time.Hour - time.Nanosecond)
		to = &end
	}

	cfg := common.LoadConfig()
	logger := common.NewLogger(cfg.Log.Level)
	slog.SetDefault(logger)

	ctx := context.Background()
	j, err := journal.Open(ctx, *journalPath, logger)
	if err != nil {
		printError("Error: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if cerr := j.Close(); cerr != nil {
			logger.Warn("failed to close journal", "error", cerr)
		}
	}()

	data, err := export.NewService(j, logger).ExportHistoryXLSX(ctx, from, to)
	if err != nil {
		printError("Error: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		printError("Error: writing %s: %v\n", *out, err)
		os.Exit(1)
	}
	fmt.Printf("wrote %s (%d bytes)\n", *out, len(data))
}
