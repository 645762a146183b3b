package fprint

/*
#include "shim.h"
*/
import "C"

import (
	"context"
	"runtime/cgo"
	"sync/atomic"
	"unsafe"
)

// Device wraps a native FpDevice, one physical or virtual fingerprint
// sensor. Devices are discovered through Context.Devices and must be
// opened before any capture operation.
//
// A Device is owned by a single goroutine: all blocking operations run
// on the calling goroutine, which also receives the progress and match
// callbacks. One operation may be in flight at a time; a reentrant or
// concurrent call fails with ErrBusy before reaching the native
// library.
type Device struct {
	ptr      *C.FpDevice
	ctx      *Context // keeps the registry alive while the device is used
	name     string   // captured at discovery; guard errors must not touch native memory
	open     bool
	released bool
	engaged  atomic.Bool
}

// VerifyResult is the outcome of a one-to-one comparison.
type VerifyResult struct {
	// Match reports whether the scanned finger matched the enrolled print.
	Match bool

	// Print is the freshly scanned print, when the driver reports one.
	// May be nil. The caller owns it and must call Destroy.
	Print *Print
}

// IdentifyResult is the outcome of a one-to-many comparison.
type IdentifyResult struct {
	// Match is the gallery print that matched, nil when no print matched.
	// The caller owns it and must call Destroy.
	Match *Print

	// Print is the freshly scanned print, when the driver reports one.
	// May be nil. The caller owns it and must call Destroy.
	Print *Print
}

// Name returns the human-readable device name, captured when the
// device was discovered.
func (d *Device) Name() string {
	if d == nil {
		return ""
	}
	return d.name
}

// Driver returns the name of the native driver backing the device.
func (d *Device) Driver() string {
	if d == nil || d.ptr == nil || d.released {
		return ""
	}
	return goString(C.fp_device_get_driver(d.ptr))
}

// DeviceID returns the driver-specific device identifier.
func (d *Device) DeviceID() string {
	if d == nil || d.ptr == nil || d.released {
		return ""
	}
	return goString(C.fp_device_get_device_id(d.ptr))
}

// ScanType reports whether the sensor is a swipe or press reader.
func (d *Device) ScanType() ScanType {
	if d == nil || d.ptr == nil || d.released {
		return ScanTypeSwipe
	}
	return ScanType(C.fp_device_get_scan_type(d.ptr))
}

// Features returns the capability bitmask advertised by the driver.
func (d *Device) Features() DeviceFeature {
	if d == nil || d.ptr == nil || d.released {
		return FeatureNone
	}
	return DeviceFeature(C.fp_device_get_features(d.ptr))
}

// HasFeature reports whether the device advertises the given feature.
func (d *Device) HasFeature(feature DeviceFeature) bool {
	if d == nil || d.ptr == nil || d.released {
		return false
	}
	return C.fp_device_has_feature(d.ptr, C.FpDeviceFeature(feature)) != 0
}

// NrEnrollStages returns how many capture stages an enrollment on this
// device takes. Only meaningful while the device is open.
func (d *Device) NrEnrollStages() int {
	if d == nil || d.ptr == nil || d.released {
		return 0
	}
	return int(C.fp_device_get_nr_enroll_stages(d.ptr))
}

// FingerStatus reports the sensor's current finger state.
func (d *Device) FingerStatus() FingerStatusFlags {
	if d == nil || d.ptr == nil || d.released {
		return FingerStatusNone
	}
	return FingerStatusFlags(C.fp_device_get_finger_status(d.ptr))
}

// IsOpen reports whether the wrapper holds an open sensor session.
func (d *Device) IsOpen() bool {
	return d != nil && d.open && !d.released
}

// Open acquires the sensor connection. Opening an already-open device
// fails with ErrAlreadyOpen, mirroring the native
// FP_DEVICE_ERROR_ALREADY_OPEN semantics. The context cancels the
// native call best-effort.
func (d *Device) Open(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if d == nil {
		return kindError(KindNotOpen, "device handle has been destroyed")
	}
	// Open-state guards come before the pointer guard: they must not
	// touch native memory. Destroy clears open, so open implies live.
	if d.open {
		return kindError(KindAlreadyOpen, "device %q is already open", d.name)
	}
	if err := d.guard(); err != nil {
		return err
	}
	if !d.engaged.CompareAndSwap(false, true) {
		return kindError(KindBusy, "device %q has an operation in flight", d.name)
	}
	defer d.engaged.Store(false)

	if err := ctx.Err(); err != nil {
		return kindError(KindCancelled, "%v", err)
	}

	canc, release := withCancellable(ctx)
	defer release()

	var gerr *C.GError
	if C.fp_device_open_sync(d.ptr, canc, &gerr) == 0 {
		return takeGError(gerr)
	}
	d.open = true
	return nil
}

// Close releases the sensor connection. Closing a device that is not
// open fails with ErrNotOpen, mirroring the native
// FP_DEVICE_ERROR_NOT_OPEN semantics.
func (d *Device) Close(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if d == nil {
		return kindError(KindNotOpen, "device handle has been destroyed")
	}
	if !d.open {
		return kindError(KindNotOpen, "device %q is not open", d.name)
	}
	if err := d.guard(); err != nil {
		return err
	}
	if !d.engaged.CompareAndSwap(false, true) {
		return kindError(KindBusy, "device %q has an operation in flight", d.name)
	}
	defer d.engaged.Store(false)

	canc, release := withCancellable(ctx)
	defer release()

	var gerr *C.GError
	if C.fp_device_close_sync(d.ptr, canc, &gerr) == 0 {
		return takeGError(gerr)
	}
	d.open = false
	return nil
}

// Enroll drives the native enrollment state machine and returns the
// newly enrolled print. The native library manages its own multi-stage
// capture loop; supply WithEnrollProgress to observe each stage,
// including retry hints when a capture must be repeated.
//
// The template carries the metadata (username, finger) to attach to the
// new print and is consumed by the call regardless of outcome.
//
// Example:
//
//	template := fprint.NewPrint(dev)
//	template.SetUsername("bruce.banner")
//	print, err := dev.Enroll(ctx, template,
//	    fprint.WithEnrollProgress(func(dev *fprint.Device, stage int, partial *fprint.Print, err error) {
//	        fmt.Printf("stage %d of %d\n", stage, dev.NrEnrollStages())
//	    }),
//	)
func (d *Device) Enroll(ctx context.Context, template *Print, opts ...EnrollOption) (*Print, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := d.engage(); err != nil {
		return nil, err
	}
	defer d.engaged.Store(false)

	if template == nil || template.ptr == nil {
		return nil, kindError(KindDataInvalid, "enroll template is nil or already consumed")
	}
	if err := ctx.Err(); err != nil {
		return nil, kindError(KindCancelled, "%v", err)
	}

	var cfg enrollConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	var handle cgo.Handle
	if cfg.progress != nil {
		handle = cgo.NewHandle(&enrollState{dev: d, progress: cfg.progress})
		defer handle.Delete()
	}

	canc, release := withCancellable(ctx)
	defer release()

	// fp_device_enroll_sync takes ownership of the template reference.
	tmpl := template.ptr
	template.ptr = nil
	template.consumed = true

	var gerr *C.GError
	ptr := C.shim_enroll_sync(d.ptr, tmpl, canc, C.uintptr_t(handle), &gerr)
	if ptr == nil {
		return nil, takeGError(gerr)
	}
	return &Print{ptr: ptr}, nil
}

// Verify drives a native one-to-one comparison of a live capture
// against the enrolled print. Supply WithMatchCallback to be notified
// of the comparison outcome as the native library reports it; the same
// outcome is returned as the VerifyResult.
func (d *Device) Verify(ctx context.Context, enrolled *Print, opts ...MatchOption) (*VerifyResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := d.engage(); err != nil {
		return nil, err
	}
	defer d.engaged.Store(false)

	if enrolled == nil || enrolled.ptr == nil {
		return nil, kindError(KindDataInvalid, "enrolled print is nil or released")
	}
	if err := ctx.Err(); err != nil {
		return nil, kindError(KindCancelled, "%v", err)
	}

	var cfg matchConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	var handle cgo.Handle
	if cfg.match != nil {
		handle = cgo.NewHandle(&matchState{dev: d, match: cfg.match})
		defer handle.Delete()
	}

	canc, release := withCancellable(ctx)
	defer release()

	var matched C.gboolean
	var scan *C.FpPrint
	var gerr *C.GError
	if C.shim_verify_sync(d.ptr, enrolled.ptr, canc, C.uintptr_t(handle), &matched, &scan, &gerr) == 0 {
		return nil, takeGError(gerr)
	}

	result := &VerifyResult{Match: matched != 0}
	if scan != nil {
		result.Print = &Print{ptr: scan}
	}
	return result, nil
}

// Identify drives a native one-to-many comparison of a live capture
// against the supplied gallery. The result's Match field carries the
// matching gallery print, nil when nothing matched. Whether a print is
// comparable is decided by the native layer; incompatible prints fail
// there, not here.
func (d *Device) Identify(ctx context.Context, gallery []*Print, opts ...MatchOption) (*IdentifyResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := d.engage(); err != nil {
		return nil, err
	}
	defer d.engaged.Store(false)

	if len(gallery) == 0 {
		return nil, kindError(KindDataInvalid, "identify gallery is empty")
	}
	for i, p := range gallery {
		if p == nil || p.ptr == nil {
			return nil, kindError(KindDataInvalid, "gallery print %d is nil or released", i)
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, kindError(KindCancelled, "%v", err)
	}

	var cfg matchConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	var handle cgo.Handle
	if cfg.match != nil {
		handle = cgo.NewHandle(&matchState{dev: d, match: cfg.match})
		defer handle.Delete()
	}

	arr := C.shim_print_array_new(C.guint(len(gallery)))
	defer C.g_ptr_array_unref(arr)
	for _, p := range gallery {
		C.shim_print_array_add(arr, p.ptr)
	}

	canc, release := withCancellable(ctx)
	defer release()

	var match, scan *C.FpPrint
	var gerr *C.GError
	if C.shim_identify_sync(d.ptr, arr, canc, C.uintptr_t(handle), &match, &scan, &gerr) == 0 {
		return nil, takeGError(gerr)
	}

	result := &IdentifyResult{}
	if match != nil {
		result.Match = &Print{ptr: match}
	}
	if scan != nil {
		result.Print = &Print{ptr: scan}
	}
	return result, nil
}

// Capture reads a raw image from the sensor, for devices with the
// capture feature. With waitForFinger the call blocks until a finger is
// on the sensor.
func (d *Device) Capture(ctx context.Context, waitForFinger bool) (*Image, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := d.engage(); err != nil {
		return nil, err
	}
	defer d.engaged.Store(false)

	if err := ctx.Err(); err != nil {
		return nil, kindError(KindCancelled, "%v", err)
	}

	canc, release := withCancellable(ctx)
	defer release()

	wait := C.gboolean(0)
	if waitForFinger {
		wait = 1
	}

	var gerr *C.GError
	ptr := C.fp_device_capture_sync(d.ptr, wait, canc, &gerr)
	if ptr == nil {
		return nil, takeGError(gerr)
	}
	return &Image{ptr: ptr}, nil
}

// ListPrints returns the prints held in the device's on-sensor storage,
// for devices with the storage-list feature.
func (d *Device) ListPrints(ctx context.Context) ([]*Print, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := d.engage(); err != nil {
		return nil, err
	}
	defer d.engaged.Store(false)

	canc, release := withCancellable(ctx)
	defer release()

	var gerr *C.GError
	arr := C.fp_device_list_prints_sync(d.ptr, canc, &gerr)
	if arr == nil {
		return nil, takeGError(gerr)
	}
	defer C.g_ptr_array_unref(arr)

	n := int(arr.len)
	prints := make([]*Print, 0, n)
	for i := 0; i < n; i++ {
		ptr := C.shim_print_at(arr, C.guint(i))
		C.shim_object_ref(C.gpointer(unsafe.Pointer(ptr)))
		prints = append(prints, &Print{ptr: ptr})
	}
	return prints, nil
}

// DeletePrint removes a print from the device's on-sensor storage, for
// devices with the storage-delete feature.
func (d *Device) DeletePrint(ctx context.Context, print *Print) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := d.engage(); err != nil {
		return err
	}
	defer d.engaged.Store(false)

	if print == nil || print.ptr == nil {
		return kindError(KindDataInvalid, "print is nil or released")
	}

	canc, release := withCancellable(ctx)
	defer release()

	var gerr *C.GError
	if C.fp_device_delete_print_sync(d.ptr, print.ptr, canc, &gerr) == 0 {
		return takeGError(gerr)
	}
	return nil
}

// ClearStorage wipes the device's on-sensor storage, for devices with
// the storage-clear feature.
func (d *Device) ClearStorage(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := d.engage(); err != nil {
		return err
	}
	defer d.engaged.Store(false)

	canc, release := withCancellable(ctx)
	defer release()

	var gerr *C.GError
	if C.fp_device_clear_storage_sync(d.ptr, canc, &gerr) == 0 {
		return takeGError(gerr)
	}
	return nil
}

// Destroy releases the wrapper's native device reference. Calling
// Destroy more than once is a no-op. Destroy must not be called while
// an operation is in flight.
func (d *Device) Destroy() {
	if d == nil || d.ptr == nil || d.released {
		return
	}
	d.released = true
	d.open = false
	C.shim_object_unref(C.gpointer(unsafe.Pointer(d.ptr)))
	d.ptr = nil
}

// guard rejects use of a destroyed wrapper before anything crosses the
// native boundary.
func (d *Device) guard() *Error {
	if d == nil || d.ptr == nil || d.released {
		return kindError(KindNotOpen, "device handle has been destroyed")
	}
	return nil
}

// engage claims the device for one blocking operation. Operations on a
// closed device and reentrant calls fail here, before the native call.
func (d *Device) engage() *Error {
	if err := d.guard(); err != nil {
		return err
	}
	if !d.open {
		return kindError(KindNotOpen, "device %q is not open", d.name)
	}
	if !d.engaged.CompareAndSwap(false, true) {
		return kindError(KindBusy, "device %q has an operation in flight", d.name)
	}
	return nil
}

func goString(s *C.gchar) string {
	if s == nil {
		return ""
	}
	return C.GoString((*C.char)(unsafe.Pointer(s)))
}
