package fprint

import (
	"errors"
	"testing"
)

func TestDeserializeEmptyData(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"nil", nil},
		{"empty", []byte{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Deserialize(tt.data)
			if err == nil {
				t.Fatal("expected error for empty data")
			}
			if p != nil {
				t.Error("expected nil print on error")
			}

			var fperr *Error
			if !errors.As(err, &fperr) {
				t.Fatalf("expected *Error, got %T", err)
			}
			if fperr.Kind != KindDataInvalid {
				t.Errorf("expected KindDataInvalid, got %v", fperr.Kind)
			}
		})
	}
}

func TestReleasedPrintIsSafe(t *testing.T) {
	p := &Print{}

	if _, err := p.Serialize(); err == nil {
		t.Error("Serialize on released print should fail")
	}
	if p.Username() != "" {
		t.Error("Username on released print should be empty")
	}
	if p.Finger() != FingerUnknown {
		t.Error("Finger on released print should be unknown")
	}
	if p.DeviceStored() {
		t.Error("DeviceStored on released print should be false")
	}
	if _, ok := p.EnrollDate(); ok {
		t.Error("EnrollDate on released print should report no date")
	}
	if p.Compatible(&Device{}) {
		t.Error("Compatible on released print should be false")
	}
	if p.Equal(&Print{}) {
		t.Error("Equal on released print should be false")
	}

	// Setters must be no-ops, not crashes.
	p.SetUsername("nobody")
	p.SetFinger(FingerLeftThumb)
}

func TestPrintDoubleDestroyIsNoop(t *testing.T) {
	p := &Print{}
	p.Destroy()
	p.Destroy()

	var nilPrint *Print
	nilPrint.Destroy() // must not panic
}

func TestConsumedTemplateIsRejected(t *testing.T) {
	p := &Print{consumed: true}

	_, err := p.Serialize()
	if err == nil {
		t.Fatal("Serialize on consumed template should fail")
	}

	var fperr *Error
	if !errors.As(err, &fperr) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if fperr.Kind != KindDataInvalid {
		t.Errorf("expected KindDataInvalid, got %v", fperr.Kind)
	}
}

func TestReleasedImageIsSafe(t *testing.T) {
	i := &Image{}

	if i.Width() != 0 || i.Height() != 0 {
		t.Error("dimensions of released image should be zero")
	}
	if i.PPMM() != 0 {
		t.Error("PPMM of released image should be zero")
	}
	if i.Data() != nil {
		t.Error("Data of released image should be nil")
	}
	i.Destroy()
	i.Destroy()
}
