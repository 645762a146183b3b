package commands

import (
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func TestSelectedDeviceIndexFlagOverridesConfig(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	viper.SetConfigType("yaml")
	if err := viper.ReadConfig(strings.NewReader("device:\n  index: 1\n")); err != nil {
		t.Fatalf("ReadConfig failed: %v", err)
	}

	fs := pflag.NewFlagSet("fprintctl", pflag.ContinueOnError)
	var idx int
	fs.IntVarP(&idx, "device", "d", 0, "")
	if err := viper.BindPFlag("device.index", fs.Lookup("device")); err != nil {
		t.Fatalf("BindPFlag failed: %v", err)
	}

	if got := selectedDeviceIndex(); got != 1 {
		t.Errorf("config value should apply while the flag is unset, got %d", got)
	}

	// An explicit -d 0 must beat the config even though 0 is also the
	// flag default.
	if err := fs.Parse([]string{"-d", "0"}); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if got := selectedDeviceIndex(); got != 0 {
		t.Errorf("-d 0 should override the config value, got %d", got)
	}
}
