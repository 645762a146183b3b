package commands

import (
	"fmt"
	"sort"
	"strings"

	"github.com/moffa90/go-libfprint/fprint"
)

var fingerByName = map[string]fprint.Finger{
	"left-thumb":   fprint.FingerLeftThumb,
	"left-index":   fprint.FingerLeftIndex,
	"left-middle":  fprint.FingerLeftMiddle,
	"left-ring":    fprint.FingerLeftRing,
	"left-little":  fprint.FingerLeftLittle,
	"right-thumb":  fprint.FingerRightThumb,
	"right-index":  fprint.FingerRightIndex,
	"right-middle": fprint.FingerRightMiddle,
	"right-ring":   fprint.FingerRightRing,
	"right-little": fprint.FingerRightLittle,
}

func parseFinger(name string) (fprint.Finger, error) {
	if name == "" {
		return fprint.FingerUnknown, nil
	}
	if f, ok := fingerByName[strings.ToLower(name)]; ok {
		return f, nil
	}

	names := make([]string, 0, len(fingerByName))
	for n := range fingerByName {
		names = append(names, n)
	}
	sort.Strings(names)
	return fprint.FingerUnknown, fmt.Errorf("unknown finger %q (one of: %s)", name, strings.Join(names, ", "))
}
