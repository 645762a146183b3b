package fprint

/*
#include "shim.h"
*/
import "C"

import (
	"context"
	"unsafe"
)

// withCancellable bridges a context.Context to a GCancellable. The
// returned release func must be called once the native call returns; it
// stops the watcher goroutine, waits for it to exit, and only then
// drops the GCancellable reference, so no cancel can land on an
// unreffed object.
//
// Cancellation is best-effort: if the native call completes before the
// cancel lands, the result stands and the cancel is a no-op.
func withCancellable(ctx context.Context) (*C.GCancellable, func()) {
	if ctx == nil || ctx.Done() == nil {
		return nil, func() {}
	}

	canc := C.g_cancellable_new()
	done := make(chan struct{})
	stopped := make(chan struct{})

	go func() {
		defer close(stopped)
		select {
		case <-ctx.Done():
			C.g_cancellable_cancel(canc)
		case <-done:
		}
	}()

	return canc, func() {
		close(done)
		<-stopped
		C.shim_object_unref(C.gpointer(unsafe.Pointer(canc)))
	}
}
