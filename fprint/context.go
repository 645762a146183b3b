package fprint

/*
#include "shim.h"
*/
import "C"

import "unsafe"

// Context wraps the native FpContext, the top-level registry of
// fingerprint devices. A Context must be held for the lifetime of any
// Device obtained from it; there is no hidden global state.
//
// A Context is not safe for concurrent use without external
// synchronization.
type Context struct {
	ptr      *C.FpContext
	released bool
}

// NewContext initializes the native registry.
//
// Example:
//
//	ctx, err := fprint.NewContext()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer ctx.Destroy()
func NewContext() (*Context, error) {
	ptr := C.fp_context_new()
	if ptr == nil {
		return nil, kindError(KindInitFailed, "fp_context_new returned NULL")
	}
	return &Context{ptr: ptr}, nil
}

// Enumerate asks the registry to re-scan for devices. NewContext
// already triggers an initial enumeration; this forces another pass,
// e.g. after plugging in a sensor.
func (c *Context) Enumerate() {
	if c == nil || c.ptr == nil || c.released {
		return
	}
	C.fp_context_enumerate(c.ptr)
}

// Devices returns one wrapper per device the registry currently
// reports, in native-registry order. The slice may be empty; zero
// devices is not an error. Each wrapper holds its own native reference
// and must be released with Destroy. The order is not guaranteed to be
// stable across calls.
func (c *Context) Devices() []*Device {
	if c == nil || c.ptr == nil || c.released {
		return nil
	}

	arr := C.fp_context_get_devices(c.ptr)
	if arr == nil {
		return nil
	}

	n := int(arr.len)
	devices := make([]*Device, 0, n)
	for i := 0; i < n; i++ {
		ptr := C.shim_device_at(arr, C.guint(i))
		C.shim_object_ref(C.gpointer(unsafe.Pointer(ptr)))
		devices = append(devices, &Device{
			ptr:  ptr,
			ctx:  c,
			name: goString(C.fp_device_get_name(ptr)),
		})
	}
	return devices
}

// Destroy releases the native registry reference. Calling Destroy more
// than once is a no-op. Devices obtained from this Context keep their
// own references but can no longer be discovered through it.
func (c *Context) Destroy() {
	if c == nil || c.ptr == nil || c.released {
		return
	}
	c.released = true
	C.shim_object_unref(C.gpointer(unsafe.Pointer(c.ptr)))
	c.ptr = nil
}
