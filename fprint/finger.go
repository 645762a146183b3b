package fprint

// Finger identifies which finger a print belongs to. Values match the
// FpFinger enumeration in fp-print.h.
type Finger int

const (
	FingerUnknown Finger = iota
	FingerLeftThumb
	FingerLeftIndex
	FingerLeftMiddle
	FingerLeftRing
	FingerLeftLittle
	FingerRightThumb
	FingerRightIndex
	FingerRightMiddle
	FingerRightRing
	FingerRightLittle
)

// FingerFirst and FingerLast bound the known finger values.
const (
	FingerFirst = FingerLeftThumb
	FingerLast  = FingerRightLittle
)

var fingerNames = map[Finger]string{
	FingerUnknown:     "unknown",
	FingerLeftThumb:   "left thumb",
	FingerLeftIndex:   "left index",
	FingerLeftMiddle:  "left middle",
	FingerLeftRing:    "left ring",
	FingerLeftLittle:  "left little",
	FingerRightThumb:  "right thumb",
	FingerRightIndex:  "right index",
	FingerRightMiddle: "right middle",
	FingerRightRing:   "right ring",
	FingerRightLittle: "right little",
}

func (f Finger) String() string {
	if name, ok := fingerNames[f]; ok {
		return name
	}
	return "unknown"
}

// Valid reports whether f names an actual finger.
func (f Finger) Valid() bool {
	return f >= FingerFirst && f <= FingerLast
}

// ScanType describes how the sensor captures a finger. Values match
// FpScanType in fp-device.h.
type ScanType int

const (
	// ScanTypeSwipe sensors read the finger as it slides across.
	ScanTypeSwipe ScanType = iota
	// ScanTypePress sensors read the finger resting on the surface.
	ScanTypePress
)

func (s ScanType) String() string {
	switch s {
	case ScanTypeSwipe:
		return "swipe"
	case ScanTypePress:
		return "press"
	default:
		return "unknown"
	}
}

// FingerStatusFlags reports the sensor's current finger state. Values
// match FpFingerStatusFlags in fp-device.h.
type FingerStatusFlags int

const (
	FingerStatusNone    FingerStatusFlags = 0
	FingerStatusNeeded  FingerStatusFlags = 1 << 0
	FingerStatusPresent FingerStatusFlags = 1 << 1
)

func (f FingerStatusFlags) String() string {
	switch {
	case f&FingerStatusPresent != 0 && f&FingerStatusNeeded != 0:
		return "needed|present"
	case f&FingerStatusPresent != 0:
		return "present"
	case f&FingerStatusNeeded != 0:
		return "needed"
	default:
		return "none"
	}
}
