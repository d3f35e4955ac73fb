package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
)

func TestStartRejectsIncompleteConfig(t *testing.T) {
	ctx := context.Background()
	accept := func(fsnotify.Event) bool { return true }

	if _, _, err := Start(ctx, Config{Accept: accept}, nil); err == nil {
		t.Fatal("expected error for missing root")
	}
	if _, _, err := Start(ctx, Config{Root: t.TempDir()}, nil); err == nil {
		t.Fatal("expected error for missing accept filter")
	}
}

func TestStartEmitsAcceptedPaths(t *testing.T) {
	root := t.TempDir()
	f, err := NewFilter(root)
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	evCh, _, err := Start(ctx, Config{
		Root:     root,
		Debounce: 50 * time.Millisecond,
		Accept:   f.Accept,
	}, nil)
	if err != nil {
		t.Fatal(err)
	}

	target := filepath.Join(root, "scan.pdf")
	if err := os.WriteFile(target, []byte("%PDF-1.4"), 0o644); err != nil {
		t.Fatal(err)
	}
	// ignored by the filter, must never surface
	if err := os.WriteFile(filepath.Join(root, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-evCh:
		if got != target {
			t.Fatalf("got %s, want %s", got, target)
		}
	case <-time.After(10 * time.Second):
		t.Fatal("no event within deadline")
	}

	// the write burst for the same path is coalesced, nothing else arrives
	select {
	case got, ok := <-evCh:
		if ok {
			t.Fatalf("unexpected extra event %s", got)
		}
	case <-time.After(300 * time.Millisecond):
	}
}

func TestStartClosesChannelsOnCancel(t *testing.T) {
	root := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())

	evCh, errCh, err := Start(ctx, Config{
		Root:   root,
		Accept: func(fsnotify.Event) bool { return true },
	}, nil)
	if err != nil {
		t.Fatal(err)
	}
	cancel()

	deadline := time.After(10 * time.Second)
	for evCh != nil || errCh != nil {
		select {
		case _, ok := <-evCh:
			if !ok {
				evCh = nil
			}
		case _, ok := <-errCh:
			if !ok {
				errCh = nil
			}
		case <-deadline:
			t.Fatal("channels not closed after cancel")
		}
	}
}
