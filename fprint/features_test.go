package fprint

import (
	"strings"
	"testing"
)

func TestFeatureHas(t *testing.T) {
	f := FeatureVerify | FeatureIdentify | FeatureStorage

	if !f.Has(FeatureVerify) {
		t.Error("should have verify")
	}
	if !f.Has(FeatureVerify | FeatureStorage) {
		t.Error("should have verify|storage")
	}
	if f.Has(FeatureCapture) {
		t.Error("should not have capture")
	}
	if f.Has(FeatureVerify | FeatureCapture) {
		t.Error("partial match should not count")
	}
}

func TestFeatureString(t *testing.T) {
	if FeatureNone.String() != "none" {
		t.Errorf("FeatureNone = %q", FeatureNone.String())
	}

	s := (FeatureCapture | FeatureStorageClear).String()
	if !strings.Contains(s, "capture") {
		t.Errorf("feature string should contain 'capture', got %q", s)
	}
	if !strings.Contains(s, "storage-clear") {
		t.Errorf("feature string should contain 'storage-clear', got %q", s)
	}

	if (FeatureVerify).String() != "verify" {
		t.Errorf("single feature = %q, want %q", FeatureVerify.String(), "verify")
	}
}

func TestFeatureValuesMatchNativeABI(t *testing.T) {
	// These values are fixed by fp-device.h and must never drift.
	tests := []struct {
		feature DeviceFeature
		want    int
	}{
		{FeatureCapture, 1 << 0},
		{FeatureIdentify, 1 << 1},
		{FeatureVerify, 1 << 2},
		{FeatureDuplicatesCheck, 1 << 3},
		{FeatureStorage, 1 << 4},
		{FeatureStorageList, 1 << 5},
		{FeatureStorageDelete, 1 << 6},
		{FeatureStorageClear, 1 << 7},
		{FeatureAlwaysOn, 1 << 8},
		{FeatureUpdatePrint, 1 << 9},
	}

	for _, tt := range tests {
		if int(tt.feature) != tt.want {
			t.Errorf("feature %s = %d, want %d", tt.feature, tt.feature, tt.want)
		}
	}
}
