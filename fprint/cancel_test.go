package fprint

import (
	"context"
	"testing"
)

func TestWithCancellableBackgroundContext(t *testing.T) {
	canc, release := withCancellable(context.Background())
	if canc != nil {
		t.Error("a context without a Done channel should not allocate a cancellable")
	}
	release() // must be callable
}

func TestWithCancellableNilContext(t *testing.T) {
	canc, release := withCancellable(nil)
	if canc != nil {
		t.Error("nil context should not allocate a cancellable")
	}
	release()
}

func TestReleaseAfterCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	canc, release := withCancellable(ctx)
	if canc == nil {
		t.Fatal("expected a cancellable for a cancellable context")
	}

	cancel()
	release()
}

// release must not drop the native reference while the watcher can
// still fire a cancel, even when the context fires at the same instant
// the native call returns. Run under -race to catch regressions.
func TestReleaseRacingCancel(t *testing.T) {
	for i := 0; i < 2000; i++ {
		ctx, cancel := context.WithCancel(context.Background())
		canc, release := withCancellable(ctx)
		if canc == nil {
			t.Fatal("expected a cancellable")
		}
		go cancel()
		release()
		cancel()
	}
}
