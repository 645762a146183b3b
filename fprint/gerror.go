package fprint

/*
#cgo pkg-config: libfprint-2 glib-2.0 gobject-2.0 gio-2.0
#include "shim.h"
*/
import "C"

import "unsafe"

// gerrorToError converts a native GError to the wrapper's typed Error.
// The caller keeps ownership of gerr; borrowed errors (callback
// arguments) must not be freed here.
func gerrorToError(gerr *C.GError) *Error {
	domain := C.GoString((*C.char)(unsafe.Pointer(C.g_quark_to_string(gerr.domain))))
	code := int(gerr.code)
	return &Error{
		Kind:    classify(domain, code),
		Domain:  domain,
		Code:    code,
		Message: C.GoString((*C.char)(unsafe.Pointer(gerr.message))),
	}
}

// takeGError converts and frees an out-parameter GError. A nil gerr
// after a failed native call is reported as an unknown error rather
// than returning success.
func takeGError(gerr *C.GError) error {
	if gerr == nil {
		return &Error{Kind: KindUnknown, Message: "native call failed without reporting an error"}
	}
	err := gerrorToError(gerr)
	C.g_error_free(gerr)
	return err
}
