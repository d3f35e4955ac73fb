package acquire

import (
	"context"
	"log/slog"
	"strings"

	"github.com/abcmartin/scansorter/internal/common"
)

// AcquiredText is one attempt's raw text. Reliable text came from the
// document's embedded text layer; recognized text is best-effort.
type AcquiredText struct {
	RawText  string
	Reliable bool
}

// TextAcquirer turns a document file into a raw text blob.
type TextAcquirer interface {
	Extract(ctx context.Context, path string) (AcquiredText, error)
}

// Document exposes a page-oriented document's embedded text.
type Document interface {
	PageCount() int
	PageText(index int) (string, error)
	Close() error
}

// DocumentReader opens a file as a page-oriented document.
type DocumentReader interface {
	Open(path string) (Document, error)
}

// Recognizer renders one page (1-based) and runs optical recognition on it.
type Recognizer interface {
	RecognizePage(ctx context.Context, path string, page int) (string, error)
}

const pageSeparator = "\n\f\n"

// Acquirer is the strict two-tier strategy: embedded text whenever any page
// has non-blank text, recognition of the first page otherwise.
type Acquirer struct {
	reader DocumentReader
	recog  Recognizer
	log    *slog.Logger
}

func NewAcquirer(reader DocumentReader, recog Recognizer, log *slog.Logger) *Acquirer {
	if log == nil {
		log = slog.Default()
	}
	return &Acquirer{reader: reader, recog: recog, log: log}
}

func (a *Acquirer) Extract(ctx context.Context, path string) (AcquiredText, error) {
	doc, err := a.reader.Open(path)
	if err != nil {
		return AcquiredText{}, common.AcquisitionError("unable to open document", err)
	}
	defer func() {
		if cerr := doc.Close(); cerr != nil {
			a.log.Warn("acquire.close.failed", "path", path, "error", cerr)
		}
	}()

	pages := doc.PageCount()
	if pages == 0 {
		return AcquiredText{}, common.AcquisitionError("document has no pages", nil)
	}

	var b strings.Builder
	for i := 0; i < pages; i++ {
		text, perr := doc.PageText(i)
		if perr != nil {
			a.log.Warn("acquire.page.failed", "path", path, "page", i, "error", perr)
			continue
		}
		if strings.TrimSpace(text) == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteString(pageSeparator)
		}
		b.WriteString(text)
	}
	if strings.TrimSpace(b.String()) != "" {
		a.log.Debug("acquire.embedded.ok", "path", path, "pages", pages, "bytes", b.Len())
		return AcquiredText{RawText: b.String(), Reliable: true}, nil
	}

	// Recognition tier. A blank transcription is still a success: absence of
	// text is not the same as inability to read the file.
	recognized, err := a.recog.RecognizePage(ctx, path, 1)
	if err != nil {
		return AcquiredText{}, common.AcquisitionError("recognition failed", err)
	}
	a.log.Debug("acquire.recognized.ok", "path", path, "bytes", len(recognized))
	return AcquiredText{RawText: recognized, Reliable: false}, nil
}
