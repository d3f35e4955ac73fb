package acquire

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/abcmartin/scansorter/internal/common"
)

// TesseractRecognizer rasterizes a page with pdftoppm and transcribes it with
// tesseract. The language list carries the primary and secondary hints, e.g.
// "deu+eng". Recognition can block for tens of seconds on large pages.
type TesseractRecognizer struct {
	cfg    common.OCRConfig
	runner Runner
	log    *slog.Logger
}

func NewTesseractRecognizer(cfg common.OCRConfig, log *slog.Logger) *TesseractRecognizer {
	if cfg.Pdftoppm == "" {
		cfg.Pdftoppm = "pdftoppm"
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.Lang == "" {
		cfg.Lang = "deu+eng"
	}
	if cfg.DPI <= 0 {
		cfg.DPI = 300
	}
	if log == nil {
		log = slog.Default()
	}
	return &TesseractRecognizer{cfg: cfg, runner: execRunner{}, log: log}
}

func (t *TesseractRecognizer) RecognizePage(ctx context.Context, path string, page int) (string, error) {
	tmpDir, err := os.MkdirTemp("", "scansorter-pp-*")
	if err != nil {
		return "", err
	}
	defer func() {
		if rerr := os.RemoveAll(tmpDir); rerr != nil {
			t.log.Warn("ocr.tmpdir.cleanup.failed", "dir", tmpDir, "error", rerr)
		}
	}()

	prefix := filepath.Join(tmpDir, "page")
	// pdftoppm -f N -l N -r <dpi> -png <in.pdf> <tmp/page>
	_, errb, err := t.runner.Run(ctx, t.cfg.Pdftoppm,
		"-f", strconv.Itoa(page), "-l", strconv.Itoa(page),
		"-r", strconv.Itoa(t.cfg.DPI), "-png", path, prefix)
	if err != nil {
		return "", fmt.Errorf("pdftoppm: %w: %s", err, truncate(string(errb), 512))
	}

	// pdftoppm names output page-1.png or page-01.png depending on page count
	matches, _ := filepath.Glob(prefix + "-*.png")
	sort.Strings(matches)
	if len(matches) == 0 {
		return "", fmt.Errorf("pdftoppm produced no image for page %d", page)
	}

	args := []string{matches[0], "stdout", "-l", t.cfg.Lang}
	if t.cfg.TessdataDir != "" {
		args = append(args, "--tessdata-dir", t.cfg.TessdataDir)
	}
	out, errb, err := t.runner.Run(ctx, t.cfg.Tesseract, args...)
	if err != nil {
		return "", fmt.Errorf("tesseract: %w: %s", err, truncate(string(errb), 512))
	}
	return string(out), nil
}
