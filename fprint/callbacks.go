package fprint

/*
#include "shim.h"
*/
import "C"

import (
	"runtime/cgo"
	"unsafe"
)

// enrollState is what an enroll cgo.Handle points at for the duration
// of one enroll call.
type enrollState struct {
	dev      *Device
	progress EnrollProgressFunc
}

// matchState is what a verify/identify cgo.Handle points at for the
// duration of one call.
type matchState struct {
	dev   *Device
	match MatchFunc
}

// borrowPrint wraps a callback-borrowed FpPrint with a reference of its
// own, so the Go side may keep it past the callback.
func borrowPrint(ptr *C.FpPrint) *Print {
	if ptr == nil {
		return nil
	}
	C.shim_object_ref(C.gpointer(unsafe.Pointer(ptr)))
	return &Print{ptr: ptr}
}

//export goEnrollProgress
func goEnrollProgress(dev *C.FpDevice, completedStages C.gint, print *C.FpPrint, userData C.gpointer, gerr *C.GError) {
	state, ok := cgo.Handle(uintptr(userData)).Value().(*enrollState)
	if !ok || state.progress == nil {
		return
	}

	var err error
	if gerr != nil {
		// Borrowed: the native caller frees it after we return.
		err = gerrorToError(gerr)
	}
	state.progress(state.dev, int(completedStages), borrowPrint(print), err)
}

//export goMatchCallback
func goMatchCallback(dev *C.FpDevice, match *C.FpPrint, print *C.FpPrint, userData C.gpointer, gerr *C.GError) {
	state, ok := cgo.Handle(uintptr(userData)).Value().(*matchState)
	if !ok || state.match == nil {
		return
	}

	var err error
	if gerr != nil {
		err = gerrorToError(gerr)
	}
	state.match(state.dev, borrowPrint(match), borrowPrint(print), err)
}
