package fprint

import "testing"

func TestFingerString(t *testing.T) {
	tests := []struct {
		finger Finger
		want   string
	}{
		{FingerUnknown, "unknown"},
		{FingerLeftThumb, "left thumb"},
		{FingerLeftLittle, "left little"},
		{FingerRightThumb, "right thumb"},
		{FingerRightLittle, "right little"},
		{Finger(99), "unknown"},
		{Finger(-1), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.finger.String(); got != tt.want {
			t.Errorf("Finger(%d).String() = %q, want %q", tt.finger, got, tt.want)
		}
	}
}

func TestFingerValid(t *testing.T) {
	if FingerUnknown.Valid() {
		t.Error("FingerUnknown should not be a valid finger")
	}
	for f := FingerFirst; f <= FingerLast; f++ {
		if !f.Valid() {
			t.Errorf("Finger(%d) should be valid", f)
		}
	}
	if Finger(int(FingerLast) + 1).Valid() {
		t.Error("value past FingerLast should not be valid")
	}
}

func TestScanTypeString(t *testing.T) {
	if ScanTypeSwipe.String() != "swipe" {
		t.Errorf("ScanTypeSwipe = %q", ScanTypeSwipe.String())
	}
	if ScanTypePress.String() != "press" {
		t.Errorf("ScanTypePress = %q", ScanTypePress.String())
	}
	if ScanType(7).String() != "unknown" {
		t.Errorf("out-of-range scan type = %q", ScanType(7).String())
	}
}

func TestFingerStatusString(t *testing.T) {
	tests := []struct {
		flags FingerStatusFlags
		want  string
	}{
		{FingerStatusNone, "none"},
		{FingerStatusNeeded, "needed"},
		{FingerStatusPresent, "present"},
		{FingerStatusNeeded | FingerStatusPresent, "needed|present"},
	}

	for _, tt := range tests {
		if got := tt.flags.String(); got != tt.want {
			t.Errorf("FingerStatusFlags(%d).String() = %q, want %q", tt.flags, got, tt.want)
		}
	}
}
