package fprint

import "strings"

// DeviceFeature is a bitmask of optional capabilities a sensor may
// implement. Values match FpDeviceFeature in fp-device.h.
type DeviceFeature int

const (
	FeatureNone            DeviceFeature = 0
	FeatureCapture         DeviceFeature = 1 << 0
	FeatureIdentify        DeviceFeature = 1 << 1
	FeatureVerify          DeviceFeature = 1 << 2
	FeatureDuplicatesCheck DeviceFeature = 1 << 3
	FeatureStorage         DeviceFeature = 1 << 4
	FeatureStorageList     DeviceFeature = 1 << 5
	FeatureStorageDelete   DeviceFeature = 1 << 6
	FeatureStorageClear    DeviceFeature = 1 << 7
	FeatureAlwaysOn        DeviceFeature = 1 << 8
	FeatureUpdatePrint     DeviceFeature = 1 << 9
)

var featureNames = []struct {
	bit  DeviceFeature
	name string
}{
	{FeatureCapture, "capture"},
	{FeatureIdentify, "identify"},
	{FeatureVerify, "verify"},
	{FeatureDuplicatesCheck, "duplicates-check"},
	{FeatureStorage, "storage"},
	{FeatureStorageList, "storage-list"},
	{FeatureStorageDelete, "storage-delete"},
	{FeatureStorageClear, "storage-clear"},
	{FeatureAlwaysOn, "always-on"},
	{FeatureUpdatePrint, "update-print"},
}

// Has reports whether all bits of feature are set.
func (f DeviceFeature) Has(feature DeviceFeature) bool {
	return f&feature == feature
}

func (f DeviceFeature) String() string {
	if f == FeatureNone {
		return "none"
	}
	var names []string
	for _, fn := range featureNames {
		if f&fn.bit != 0 {
			names = append(names, fn.name)
		}
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, "|")
}
