package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/abcmartin/scansorter/internal/acquire"
	"github.com/abcmartin/scansorter/internal/common"
	"github.com/abcmartin/scansorter/internal/journal"
	"github.com/abcmartin/scansorter/internal/metadata"
	"github.com/abcmartin/scansorter/internal/pipeline"
	"github.com/abcmartin/scansorter/internal/queue"
	"github.com/abcmartin/scansorter/internal/rename"
	"github.com/abcmartin/scansorter/internal/watch"
)

func main() {
	cfg := common.LoadConfig()

	logger := common.NewLogger(cfg.Log.Level)
	slog.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	profile := metadata.DefaultProfile()
	if cfg.Infer.ProfilePath != "" {
		p, err := metadata.LoadProfile(cfg.Infer.ProfilePath)
		if err != nil {
			logger.Error("failed to load heuristics profile", "path", cfg.Infer.ProfilePath, "error", err)
			os.Exit(1)
		}
		profile = p
	}

	acquirer := acquire.NewAcquirer(
		acquire.PDFReader{},
		acquire.NewTesseractRecognizer(cfg.OCR, logger),
		logger,
	)
	inferrer := metadata.NewEngine(profile, common.CreationTime, logger)
	renamer := rename.NewEngine(common.CreationTime, logger)
	proc := pipeline.NewProcessor(cfg.Watch.Root, acquirer, inferrer, renamer, logger)

	sinks := pipeline.MultiSink{pipeline.LogSink{Log: logger}}
	if cfg.Journal.Path != "" {
		j, err := journal.Open(ctx, cfg.Journal.Path, logger)
		if err != nil {
			logger.Error("failed to open journal", "path", cfg.Journal.Path, "error", err)
			os.Exit(1)
		}
		defer func() {
			if cerr := j.Close(); cerr != nil {
				logger.Warn("failed to close journal", "error", cerr)
			}
		}()
		sinks = append(sinks, journal.NewSink(j, logger))
	}

	filter, err := watch.NewFilter(cfg.Watch.Root)
	if err != nil {
		logger.Error("failed to resolve watch root", "root", cfg.Watch.Root, "error", err)
		os.Exit(1)
	}
	events, watchErrs, err := watch.Start(ctx, watch.Config{
		Root:     cfg.Watch.Root,
		Debounce: cfg.Watch.Debounce,
		Accept:   filter.Accept,
	}, logger)
	if err != nil {
		logger.Error("failed to start watcher", "root", cfg.Watch.Root, "error", err)
		os.Exit(1)
	}
	go func() {
		for werr := range watchErrs {
			logger.Error("watcher reported error", "error", werr)
		}
	}()

	q := queue.New(logger,
		queue.WithWorkers(cfg.Queue.Workers),
		queue.WithSize(cfg.Queue.Size),
	)

	logger.Info("scansorterd started", "root", cfg.Watch.Root, "workers", cfg.Queue.Workers)

	coord := pipeline.NewCoordinator(q, proc, sinks, logger)
	coord.Run(ctx, events)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()
	q.Shutdown(shutdownCtx)

	logger.Info("scansorterd stopped")
}
