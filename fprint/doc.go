// Package fprint provides Go bindings for libfprint, the freedesktop
// fingerprint sensor management library.
//
// # Overview
//
// The package is a safety layer over the native C API: device
// discovery, enrollment, verification, identification and print
// storage. All biometric logic (matching, sensor drivers, image
// processing) stays inside libfprint; this package converts native
// handles, callbacks and error codes into ownership-tracked Go values
// and typed errors.
//
// # Basic Usage
//
// Discover a sensor and enroll a finger:
//
//	ctx, err := fprint.NewContext()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer ctx.Destroy()
//
//	devices := ctx.Devices()
//	if len(devices) == 0 {
//	    log.Fatal("no fingerprint devices found")
//	}
//	dev := devices[0]
//	defer dev.Destroy()
//
//	if err := dev.Open(context.Background()); err != nil {
//	    log.Fatal(err)
//	}
//	defer dev.Close(context.Background())
//
//	template := fprint.NewPrint(dev)
//	template.SetUsername("bruce.banner")
//	template.SetFinger(fprint.FingerRightIndex)
//
//	print, err := dev.Enroll(context.Background(), template)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer print.Destroy()
//
// # Verifying
//
// Compare a live capture against a stored print:
//
//	enrolled, err := fprint.Deserialize(storedBytes)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer enrolled.Destroy()
//
//	result, err := dev.Verify(context.Background(), enrolled)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("match:", result.Match)
//
// # Progress Tracking
//
// Enrollment runs the native multi-stage capture loop; observe it with
// a callback:
//
//	print, err := dev.Enroll(ctx, template,
//	    fprint.WithEnrollProgress(func(dev *fprint.Device, stage int, _ *fprint.Print, err error) {
//	        if fprint.IsRetry(err) {
//	            fmt.Println("scan again:", err)
//	            return
//	        }
//	        fmt.Printf("stage %d of %d\n", stage, dev.NrEnrollStages())
//	    }),
//	)
//
// # Error Handling
//
// Every native failure surfaces as a typed *Error carrying the original
// GError domain and code. Match on kinds with errors.Is:
//
//	if errors.Is(err, fprint.ErrBusy) {
//	    // another operation is in flight
//	}
//
// # Ownership and Concurrency
//
// Every wrapper (Context, Device, Print, Image) owns one native
// reference, released exactly once by Destroy; double-destroy is a
// guarded no-op. Operations block the calling goroutine, which also
// receives the callbacks. A Device accepts one operation at a time;
// reentrant and concurrent calls fail with ErrBusy. Cancellation goes
// through the context.Context on each call and is best-effort,
// delegated to the native GCancellable.
//
// # Requirements
//
// Building needs cgo and the libfprint-2 development headers
// (pkg-config: libfprint-2, glib-2.0, gobject-2.0, gio-2.0).
package fprint
