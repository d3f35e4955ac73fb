package pipeline

import (
	"context"
	"log/slog"

	"github.com/abcmartin/scansorter/constants"
	"github.com/abcmartin/scansorter/internal/queue"
)

// Coordinator wires the filtered trigger stream to the dedup queue and the
// per-file processor, reporting status transitions outward.
type Coordinator struct {
	Queue *queue.Queue
	Proc  *Processor
	Sink  StatusSink
	Log   *slog.Logger
}

func NewCoordinator(q *queue.Queue, proc *Processor, sink StatusSink, log *slog.Logger) *Coordinator {
	if log == nil {
		log = slog.Default()
	}
	if sink == nil {
		sink = LogSink{Log: log}
	}
	return &Coordinator{Queue: q, Proc: proc, Sink: sink, Log: log}
}

// Run consumes accepted paths until the channel closes or ctx is done.
func (c *Coordinator) Run(ctx context.Context, events <-chan string) {
	for {
		select {
		case <-ctx.Done():
			return
		case path, ok := <-events:
			if !ok {
				return
			}
			c.dispatch(path)
		}
	}
}

func (c *Coordinator) dispatch(path string) {
	c.Queue.Enqueue(path, func(taskCtx context.Context) {
		c.Sink.Notify(Status{Kind: constants.StatusProcessing, Path: path})
		out := c.Proc.Process(taskCtx, path)
		c.Sink.Notify(Status{Kind: constants.StatusCompleted, Path: path, Outcome: out})
	}, func() {
		c.Sink.Notify(Status{Kind: constants.StatusQueued, Path: path})
	})
}
