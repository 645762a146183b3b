package fprint

import "fmt"

// ErrorKind classifies a native failure into the wrapper's taxonomy.
// Every GError the native library can report maps to exactly one kind;
// codes outside the known domains fall through to KindUnknown with the
// original domain and code preserved for diagnostics.
type ErrorKind int

const (
	// KindUnknown covers native errors outside the known domains.
	KindUnknown ErrorKind = iota

	// KindInitFailed indicates the native registry could not be created.
	KindInitFailed

	// FP_DEVICE_ERROR domain.
	KindGeneral
	KindNotSupported
	KindNotOpen
	KindAlreadyOpen
	KindBusy
	KindProto
	KindDataInvalid
	KindDataNotFound
	KindDataFull
	KindDataDuplicate
	KindRemoved

	// G_IO_ERROR domain.
	KindPermissionDenied
	KindCancelled

	// FP_DEVICE_RETRY domain. Retry errors are delivered through the
	// enroll progress callback and mean the capture should be repeated,
	// not that the operation failed.
	KindRetryGeneral
	KindRetryTooShort
	KindRetryRemoveFinger
	KindRetryCenterFinger
)

// String returns a human-readable name for the kind.
func (k ErrorKind) String() string {
	switch k {
	case KindInitFailed:
		return "initialization failed"
	case KindGeneral:
		return "general device error"
	case KindNotSupported:
		return "operation not supported"
	case KindNotOpen:
		return "device not open"
	case KindAlreadyOpen:
		return "device already open"
	case KindBusy:
		return "device busy"
	case KindProto:
		return "protocol error"
	case KindDataInvalid:
		return "invalid data"
	case KindDataNotFound:
		return "data not found"
	case KindDataFull:
		return "storage full"
	case KindDataDuplicate:
		return "duplicate data"
	case KindRemoved:
		return "device removed"
	case KindPermissionDenied:
		return "permission denied"
	case KindCancelled:
		return "operation cancelled"
	case KindRetryGeneral:
		return "retry scan"
	case KindRetryTooShort:
		return "retry scan: swipe too short"
	case KindRetryRemoveFinger:
		return "retry scan: remove finger"
	case KindRetryCenterFinger:
		return "retry scan: center finger"
	default:
		return "unknown native error"
	}
}

// Error is the typed error returned by every operation in this package.
// Domain and Code carry the original native error verbatim so callers
// can recover exactly what the library reported.
type Error struct {
	Kind    ErrorKind
	Domain  string
	Code    int
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("fprint: %s: %s", e.Kind, e.Message)
	}
	return "fprint: " + e.Kind.String()
}

// Is reports kind equality, so errors.Is(err, ErrBusy) matches any
// Error carrying KindBusy regardless of message or native code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Sentinel errors for use with errors.Is.
var (
	ErrNotOpen          = &Error{Kind: KindNotOpen}
	ErrAlreadyOpen      = &Error{Kind: KindAlreadyOpen}
	ErrBusy             = &Error{Kind: KindBusy}
	ErrNotSupported     = &Error{Kind: KindNotSupported}
	ErrCancelled        = &Error{Kind: KindCancelled}
	ErrPermissionDenied = &Error{Kind: KindPermissionDenied}
)

// IsRetry returns true if the error is a capture retry hint rather than
// a terminal failure.
func IsRetry(err error) bool {
	e, ok := err.(*Error)
	if !ok {
		return false
	}
	switch e.Kind {
	case KindRetryGeneral, KindRetryTooShort, KindRetryRemoveFinger, KindRetryCenterFinger:
		return true
	}
	return false
}

// IsCancelled returns true if the error reports a cancelled operation.
func IsCancelled(err error) bool {
	e, ok := err.(*Error)
	return ok && e.Kind == KindCancelled
}

// GError domains reported by libfprint and GLib. The strings are the
// quark names fixed by the native headers.
const (
	domainDevice = "fp-device-error-quark"
	domainRetry  = "fp-device-retry-quark"
	domainGIO    = "g-io-error-quark"
)

// FP_DEVICE_ERROR codes, fixed by fp-device.h.
const (
	devErrGeneral = iota
	devErrNotSupported
	devErrNotOpen
	devErrAlreadyOpen
	devErrBusy
	devErrProto
	devErrDataInvalid
	devErrDataNotFound
	devErrDataFull
	devErrDataDuplicate
	devErrRemoved
)

// FP_DEVICE_RETRY codes, fixed by fp-device.h.
const (
	retryGeneral = iota
	retryTooShort
	retryRemoveFinger
	retryCenterFinger
)

// G_IO_ERROR codes of interest, fixed by gioenums.h.
const (
	gioErrPermissionDenied = 14
	gioErrNotSupported     = 15
	gioErrCancelled        = 19
	gioErrBusy             = 26
)

// classify maps a native error domain and code to an ErrorKind. It is a
// pure total function: every (domain, code) pair yields exactly one
// kind, with KindUnknown as the catch-all.
func classify(domain string, code int) ErrorKind {
	switch domain {
	case domainDevice:
		switch code {
		case devErrGeneral:
			return KindGeneral
		case devErrNotSupported:
			return KindNotSupported
		case devErrNotOpen:
			return KindNotOpen
		case devErrAlreadyOpen:
			return KindAlreadyOpen
		case devErrBusy:
			return KindBusy
		case devErrProto:
			return KindProto
		case devErrDataInvalid:
			return KindDataInvalid
		case devErrDataNotFound:
			return KindDataNotFound
		case devErrDataFull:
			return KindDataFull
		case devErrDataDuplicate:
			return KindDataDuplicate
		case devErrRemoved:
			return KindRemoved
		}
	case domainRetry:
		switch code {
		case retryGeneral:
			return KindRetryGeneral
		case retryTooShort:
			return KindRetryTooShort
		case retryRemoveFinger:
			return KindRetryRemoveFinger
		case retryCenterFinger:
			return KindRetryCenterFinger
		}
		return KindRetryGeneral
	case domainGIO:
		switch code {
		case gioErrCancelled:
			return KindCancelled
		case gioErrPermissionDenied:
			return KindPermissionDenied
		case gioErrNotSupported:
			return KindNotSupported
		case gioErrBusy:
			return KindBusy
		}
	}
	return KindUnknown
}

// kindError builds a wrapper-originated Error that never crossed the
// native boundary, e.g. the device-state guards.
func kindError(kind ErrorKind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}
