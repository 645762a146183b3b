package fprint

// EnrollProgressFunc is called once per native enrollment progress
// event, on the goroutine driving the enroll call. completedStages
// counts the capture stages finished so far; partial carries the
// print-in-progress when the driver reports one (may be nil, owned by
// the callee); err carries a retry hint (see IsRetry) when a capture
// must be repeated.
//
// The callback must not invoke another operation on the same Device and
// must not outlive the enroll call.
type EnrollProgressFunc func(dev *Device, completedStages int, partial *Print, err error)

// MatchFunc is called when a verify or identify operation has compared
// the live capture, on the goroutine driving the call. match is the
// print that matched (nil on no match), scan the freshly captured print
// (may be nil); both are owned by the callee. err carries a retry hint
// when the capture must be repeated.
type MatchFunc func(dev *Device, match *Print, scan *Print, err error)

type enrollConfig struct {
	progress EnrollProgressFunc
}

// EnrollOption configures an Enroll call.
type EnrollOption func(*enrollConfig)

// WithEnrollProgress sets a callback fired once per native enrollment
// progress event.
//
// Example:
//
//	print, err := dev.Enroll(ctx, template,
//	    fprint.WithEnrollProgress(func(dev *fprint.Device, stage int, _ *fprint.Print, err error) {
//	        if fprint.IsRetry(err) {
//	            fmt.Println("please scan again:", err)
//	            return
//	        }
//	        fmt.Printf("stage %d/%d\n", stage, dev.NrEnrollStages())
//	    }),
//	)
func WithEnrollProgress(fn EnrollProgressFunc) EnrollOption {
	return func(c *enrollConfig) {
		c.progress = fn
	}
}

type matchConfig struct {
	match MatchFunc
}

// MatchOption configures a Verify or Identify call.
type MatchOption func(*matchConfig)

// WithMatchCallback sets a callback fired when the native comparison
// reports its outcome, before the blocking call returns.
func WithMatchCallback(fn MatchFunc) MatchOption {
	return func(c *matchConfig) {
		c.match = fn
	}
}
