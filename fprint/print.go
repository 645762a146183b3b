package fprint

/*
#include "shim.h"
*/
import "C"

import (
	"time"
	"unsafe"
)

// Print wraps a native FpPrint, one fingerprint template. Prints come
// out of a successful enrollment, from Deserialize, or from a device's
// on-sensor storage. Comparison always goes through a Device operation;
// no matching logic lives here.
type Print struct {
	ptr      *C.FpPrint
	released bool
	consumed bool
}

// NewPrint creates an empty template for enrollment on the given
// device. Set the metadata (username, finger) before passing it to
// Enroll; the enroll call consumes the template.
func NewPrint(dev *Device) *Print {
	if dev == nil || dev.ptr == nil || dev.released {
		return nil
	}
	return &Print{ptr: C.fp_print_new(dev.ptr)}
}

// Deserialize reconstructs a print from bytes previously produced by
// Serialize. The byte form is libfprint's own template format; the
// wrapper does not reinterpret it.
func Deserialize(data []byte) (*Print, error) {
	if len(data) == 0 {
		return nil, kindError(KindDataInvalid, "empty print data")
	}

	var gerr *C.GError
	ptr := C.fp_print_deserialize((*C.guchar)(unsafe.Pointer(&data[0])), C.gsize(len(data)), &gerr)
	if ptr == nil {
		return nil, takeGError(gerr)
	}
	return &Print{ptr: ptr}, nil
}

// Serialize converts the print to its persisted byte form, exactly the
// bytes the native library emits. Round-tripping through Deserialize
// reproduces an identical byte form.
func (p *Print) Serialize() ([]byte, error) {
	if err := p.guard(); err != nil {
		return nil, err
	}

	var data *C.guchar
	var length C.gsize
	var gerr *C.GError
	if C.fp_print_serialize(p.ptr, &data, &length, &gerr) == 0 {
		return nil, takeGError(gerr)
	}
	defer C.g_free(C.gpointer(unsafe.Pointer(data)))

	return C.GoBytes(unsafe.Pointer(data), C.int(length)), nil
}

// Username returns the username attached to the print, empty when none
// is set.
func (p *Print) Username() string {
	if p.guard() != nil {
		return ""
	}
	return goString(C.fp_print_get_username(p.ptr))
}

// SetUsername attaches a username to the print.
func (p *Print) SetUsername(username string) {
	if p.guard() != nil {
		return
	}
	cs := C.CString(username)
	defer C.free(unsafe.Pointer(cs))
	C.fp_print_set_username(p.ptr, (*C.gchar)(cs))
}

// Description returns the free-form description attached to the print.
func (p *Print) Description() string {
	if p.guard() != nil {
		return ""
	}
	return goString(C.fp_print_get_description(p.ptr))
}

// SetDescription attaches a free-form description to the print.
func (p *Print) SetDescription(description string) {
	if p.guard() != nil {
		return
	}
	cs := C.CString(description)
	defer C.free(unsafe.Pointer(cs))
	C.fp_print_set_description(p.ptr, (*C.gchar)(cs))
}

// Finger returns which finger the print belongs to.
func (p *Print) Finger() Finger {
	if p.guard() != nil {
		return FingerUnknown
	}
	return Finger(C.fp_print_get_finger(p.ptr))
}

// SetFinger records which finger the print belongs to.
func (p *Print) SetFinger(finger Finger) {
	if p.guard() != nil {
		return
	}
	C.fp_print_set_finger(p.ptr, C.FpFinger(finger))
}

// EnrollDate returns the enrollment date attached to the print. The
// second return is false when no valid date is set.
func (p *Print) EnrollDate() (time.Time, bool) {
	if p.guard() != nil {
		return time.Time{}, false
	}
	d := C.fp_print_get_enroll_date(p.ptr)
	if d == nil || C.g_date_valid(d) == 0 {
		return time.Time{}, false
	}
	return time.Date(
		int(C.g_date_get_year(d)),
		time.Month(C.g_date_get_month(d)),
		int(C.g_date_get_day(d)),
		0, 0, 0, 0, time.UTC,
	), true
}

// SetEnrollDate records the enrollment date on the print. Only the
// calendar date is kept; libfprint stores no time of day.
func (p *Print) SetEnrollDate(t time.Time) {
	if p.guard() != nil {
		return
	}
	d := C.g_date_new_dmy(C.GDateDay(t.Day()), C.GDateMonth(int(t.Month())), C.GDateYear(t.Year()))
	C.fp_print_set_enroll_date(p.ptr, d)
	C.g_date_free(d)
}

// Driver returns the name of the driver that created the print.
func (p *Print) Driver() string {
	if p.guard() != nil {
		return ""
	}
	return goString(C.fp_print_get_driver(p.ptr))
}

// DeviceID returns the identifier of the device that created the print.
func (p *Print) DeviceID() string {
	if p.guard() != nil {
		return ""
	}
	return goString(C.fp_print_get_device_id(p.ptr))
}

// DeviceStored reports whether the print lives in on-sensor storage
// rather than in host memory.
func (p *Print) DeviceStored() bool {
	if p.guard() != nil {
		return false
	}
	return C.fp_print_get_device_stored(p.ptr) != 0
}

// Image returns the capture image underlying the print, for
// image-based drivers. May be nil. The caller owns the returned Image.
func (p *Print) Image() *Image {
	if p.guard() != nil {
		return nil
	}
	ptr := C.fp_print_get_image(p.ptr)
	if ptr == nil {
		return nil
	}
	C.shim_object_ref(C.gpointer(unsafe.Pointer(ptr)))
	return &Image{ptr: ptr}
}

// Compatible reports whether the print can be compared on the given
// device. The decision is the native library's, based on driver and
// device identity.
func (p *Print) Compatible(dev *Device) bool {
	if p.guard() != nil || dev == nil || dev.ptr == nil || dev.released {
		return false
	}
	return C.fp_print_compatible(p.ptr, dev.ptr) != 0
}

// Equal reports whether two prints contain the same template data,
// as decided by the native library.
func (p *Print) Equal(other *Print) bool {
	if p.guard() != nil || other == nil || other.guard() != nil {
		return false
	}
	return C.fp_print_equal(p.ptr, other.ptr) != 0
}

// Destroy releases the native print reference. Calling Destroy more
// than once, or on a template consumed by Enroll, is a no-op.
func (p *Print) Destroy() {
	if p == nil || p.ptr == nil || p.released || p.consumed {
		return
	}
	p.released = true
	C.shim_object_unref(C.gpointer(unsafe.Pointer(p.ptr)))
	p.ptr = nil
}

func (p *Print) guard() *Error {
	if p == nil || p.ptr == nil || p.released {
		return kindError(KindDataInvalid, "print handle has been released")
	}
	if p.consumed {
		return kindError(KindDataInvalid, "print template was consumed by enroll")
	}
	return nil
}
