package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/abcmartin/scansorter/constants"
	"github.com/abcmartin/scansorter/internal/acquire"
	"github.com/abcmartin/scansorter/internal/common"
	"github.com/abcmartin/scansorter/internal/metadata"
	"github.com/abcmartin/scansorter/internal/pipeline"
	"github.com/abcmartin/scansorter/internal/rename"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

var normalizedName = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}_`)

func main() {
	var (
		dir     = flag.String("dir", "", "directory of unsorted documents (required)")
		profile = flag.String("profile", "", "optional heuristics profile JSON")
	)
	flag.Parse()

	if *dir == "" {
		printError("Error: --dir is required\n")
		os.Exit(1)
	}

	cfg := common.LoadConfig()
	logger := common.NewLogger(cfg.Log.Level)
	slog.SetDefault(logger)

	prof := metadata.DefaultProfile()
	if *profile != "" {
		p, err := metadata.LoadProfile(*profile)
		if err != nil {
			printError("Error: %v\n", err)
			os.Exit(1)
		}
		prof = p
	}

	root, err := filepath.Abs(*dir)
	if err != nil {
		printError("Error: %v\n", err)
		os.Exit(1)
	}

	acquirer := acquire.NewAcquirer(
		acquire.PDFReader{},
		acquire.NewTesseractRecognizer(cfg.OCR, logger),
		logger,
	)
	inferrer := metadata.NewEngine(prof, common.CreationTime, logger)
	renamer := rename.NewEngine(common.CreationTime, logger)
	proc := pipeline.NewProcessor(root, acquirer, inferrer, renamer, logger)

	entries, err := os.ReadDir(root)
	if err != nil {
		printError("Error: reading %s: %v\n", root, err)
		os.Exit(1)
	}

	ctx := context.Background()
	var renamed, reviewed, failed, skipped int
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !constants.HasDocumentExt(name) ||
			strings.HasPrefix(name, ".") || normalizedName.MatchString(name) {
			skipped++
			continue
		}
		out := proc.Process(ctx, filepath.Join(root, name))
		switch out.Kind {
		case constants.OutcomeRenamed:
			renamed++
		case constants.OutcomeReviewed:
			reviewed++
		default:
			failed++
		}
	}

	fmt.Printf("renamed=%d reviewed=%d failed=%d skipped=%d\n", renamed, reviewed, failed, skipped)
	if failed > 0 {
		os.Exit(1)
	}
}
