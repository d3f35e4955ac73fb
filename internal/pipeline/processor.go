package pipeline

import (
	"context"
	"log/slog"

	"github.com/abcmartin/scansorter/constants"
	"github.com/abcmartin/scansorter/internal/acquire"
	"github.com/abcmartin/scansorter/internal/metadata"
	"github.com/abcmartin/scansorter/internal/rename"
)

// Renamer is the decision engine the processor drives.
type Renamer interface {
	Decide(meta metadata.Metadata, filePath, rootFolder string) (rename.Result, error)
}

// Inferrer combines heuristics over acquired text into a metadata record.
type Inferrer interface {
	Infer(rawText, path string) metadata.Metadata
}

// Processor runs acquisition, inference, and the rename decision for one file.
// Failures never escape: they become a Failed outcome for that file only.
type Processor struct {
	Root    string
	Acquire acquire.TextAcquirer
	Infer   Inferrer
	Rename  Renamer
	Log     *slog.Logger
}

func NewProcessor(root string, acq acquire.TextAcquirer, inf Inferrer, ren Renamer, log *slog.Logger) *Processor {
	if log == nil {
		log = slog.Default()
	}
	return &Processor{Root: root, Acquire: acq, Infer: inf, Rename: ren, Log: log}
}

func (p *Processor) Process(ctx context.Context, path string) Outcome {
	text, err := p.Acquire.Extract(ctx, path)
	if err != nil {
		p.Log.Error("processor.acquire.failed", "path", path, "error", err)
		return Outcome{Kind: constants.OutcomeFailed, Err: err}
	}
	p.Log.Info("processor.acquire.ok", "path", path, "reliable", text.Reliable, "bytes", len(text.RawText))

	meta := p.Infer.Infer(text.RawText, path)

	res, err := p.Rename.Decide(meta, path, p.Root)
	if err != nil {
		p.Log.Error("processor.rename.failed", "path", path, "error", err)
		return Outcome{Kind: constants.OutcomeFailed, Err: err, Reliable: text.Reliable}
	}

	out := Outcome{
		Kind:     res.Kind,
		Path:     res.Path,
		Subject:  meta.Subject,
		Reliable: text.Reliable,
	}
	if meta.HasDate {
		out.Date = meta.Date.Format("2006-01-02")
	}
	p.Log.Info("processor.rename.ok", "path", path, "outcome", string(res.Kind), "dest", res.Path)
	return out
}
