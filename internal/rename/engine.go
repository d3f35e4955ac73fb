package rename

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/abcmartin/scansorter/constants"
	"github.com/abcmartin/scansorter/internal/common"
	"github.com/abcmartin/scansorter/internal/metadata"
)

// Result is the filesystem mutation the engine performed: either a rename into
// the root folder or a move into the review subfolder.
type Result struct {
	Kind constants.OutcomeKind // OutcomeRenamed or OutcomeReviewed
	Path string                // destination path
}

// Engine turns inferred metadata plus the original location into a rename or
// a quarantine move. The only shared resource it touches is the filesystem,
// protected by the collision-resolution retry loop rather than a lock.
type Engine struct {
	creation common.TimeSource
	log      *slog.Logger
}

func NewEngine(creation common.TimeSource, log *slog.Logger) *Engine {
	if creation == nil {
		creation = common.CreationTime
	}
	if log == nil {
		log = slog.Default()
	}
	return &Engine{creation: creation, log: log}
}

// Decide applies the quarantine rules and moves the file. A non-nil error is
// always a filesystem failure; the file sits wherever the failed operation
// left it.
func (e *Engine) Decide(meta metadata.Metadata, filePath, rootFolder string) (Result, error) {
	subject := ""
	if meta.HasSubject {
		subject = NormalizeComponent(meta.Subject)
	}
	if subject == "" {
		e.log.Info("rename.review", "path", filePath, "reason", "no usable subject")
		return e.moveToReview(filePath, rootFolder)
	}

	date, ok := meta.Date, meta.HasDate
	if !ok {
		date, ok = e.creation(filePath)
	}
	if !ok {
		e.log.Info("rename.review", "path", filePath, "reason", "no usable date")
		return e.moveToReview(filePath, rootFolder)
	}

	base := truncateRunes(date.Format("2006-01-02")+"_"+subject, constants.MaxFilenameLength)
	dest := uniquePath(rootFolder, base, constants.DocumentExtension)
	if err := os.Rename(filePath, dest); err != nil {
		return Result{}, common.FilesystemError(fmt.Sprintf("rename %s", filePath), err)
	}

	e.log.Info("rename.ok", "path", filePath, "dest", dest)
	return Result{Kind: constants.OutcomeRenamed, Path: dest}, nil
}

func (e *Engine) moveToReview(filePath, rootFolder string) (Result, error) {
	reviewDir := filepath.Join(rootFolder, constants.ReviewFolderName)
	if err := os.MkdirAll(reviewDir, 0o755); err != nil {
		return Result{}, common.FilesystemError(fmt.Sprintf("create review folder %s", reviewDir), err)
	}

	name := filepath.Base(filePath)
	name = strings.TrimSuffix(name, filepath.Ext(name))
	base := constants.ReviewBasePrefix + NormalizeComponent(name)
	dest := uniquePath(reviewDir, base, constants.DocumentExtension)
	if err := os.Rename(filePath, dest); err != nil {
		return Result{}, common.FilesystemError(fmt.Sprintf("move %s to review", filePath), err)
	}

	e.log.Info("rename.reviewed", "path", filePath, "dest", dest)
	return Result{Kind: constants.OutcomeReviewed, Path: dest}, nil
}

// uniquePath appends _1, _2, ... before the extension until no file of that
// name exists. Terminates because the suffix strictly increases.
func uniquePath(dir, base, ext string) string {
	candidate := filepath.Join(dir, base+"."+ext)
	for i := 1; fileExists(candidate); i++ {
		candidate = filepath.Join(dir, fmt.Sprintf("%s_%d.%s", base, i, ext))
	}
	return candidate
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
