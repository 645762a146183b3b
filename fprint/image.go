package fprint

/*
#include "shim.h"
*/
import "C"

import "unsafe"

// Image wraps a native FpImage, a raw greyscale capture from an
// image-based sensor. Produced by Device.Capture and Print.Image.
type Image struct {
	ptr      *C.FpImage
	released bool
}

// Width returns the image width in pixels.
func (i *Image) Width() int {
	if i == nil || i.ptr == nil || i.released {
		return 0
	}
	return int(C.fp_image_get_width(i.ptr))
}

// Height returns the image height in pixels.
func (i *Image) Height() int {
	if i == nil || i.ptr == nil || i.released {
		return 0
	}
	return int(C.fp_image_get_height(i.ptr))
}

// PPMM returns the image resolution in pixels per millimetre.
func (i *Image) PPMM() float64 {
	if i == nil || i.ptr == nil || i.released {
		return 0
	}
	return float64(C.fp_image_get_ppmm(i.ptr))
}

// Data returns a copy of the greyscale pixel data, one byte per pixel,
// row-major.
func (i *Image) Data() []byte {
	if i == nil || i.ptr == nil || i.released {
		return nil
	}
	var length C.gsize
	data := C.fp_image_get_data(i.ptr, &length)
	if data == nil || length == 0 {
		return nil
	}
	return C.GoBytes(unsafe.Pointer(data), C.int(length))
}

// Destroy releases the native image reference. Calling Destroy more
// than once is a no-op.
func (i *Image) Destroy() {
	if i == nil || i.ptr == nil || i.released {
		return
	}
	i.released = true
	C.shim_object_unref(C.gpointer(unsafe.Pointer(i.ptr)))
	i.ptr = nil
}
