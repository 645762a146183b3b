package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	log "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/moffa90/go-libfprint/fprint"
	"github.com/moffa90/go-libfprint/gallery"
)

var (
	cfgFile     string
	galleryFile string
	deviceIndex int
	verbose     bool
)

// Execute builds the command tree and runs it.
func Execute() error {
	root := &cobra.Command{
		Use:           "fprintctl",
		Short:         "Manage fingerprint sensors and enrolled prints",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig()
		},
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ~/.config/fprintctl/config.yaml)")
	root.PersistentFlags().StringVar(&galleryFile, "gallery", "", "path to the print gallery database")
	root.PersistentFlags().IntVarP(&deviceIndex, "device", "d", 0, "index of the device to use (see 'fprintctl devices')")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	// Binding lets viper tell an explicit -d 0 apart from the default.
	_ = viper.BindPFlag("device.index", root.PersistentFlags().Lookup("device"))

	root.AddCommand(devicesCmd(), enrollCmd(), verifyCmd(), identifyCmd(), printsCmd())
	return root.Execute()
}

func initConfig() error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		if dir, err := os.UserConfigDir(); err == nil {
			viper.AddConfigPath(filepath.Join(dir, "fprintctl"))
		}
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("FPRINTCTL")
	viper.AutomaticEnv()
	viper.SetDefault("gallery.path", defaultGalleryPath())
	viper.SetDefault("device.index", 0)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return fmt.Errorf("read config: %w", err)
		}
	}

	if verbose {
		log.SetLevel(log.DebugLevel)
	}
	return nil
}

func defaultGalleryPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "fprintctl-gallery.db"
	}
	return filepath.Join(dir, "fprintctl", "gallery.db")
}

func galleryPath() string {
	if galleryFile != "" {
		return galleryFile
	}
	return viper.GetString("gallery.path")
}

// charmLogger adapts the CLI logger to the gallery.Logger interface.
type charmLogger struct{}

func (charmLogger) Debug(msg string, kv ...interface{}) { log.Debug(msg, kv...) }
func (charmLogger) Info(msg string, kv ...interface{})  { log.Info(msg, kv...) }
func (charmLogger) Error(msg string, kv ...interface{}) { log.Error(msg, kv...) }

func openGallery() (*gallery.Store, error) {
	path := galleryPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("create gallery directory: %w", err)
	}
	return gallery.Open(path, gallery.WithLogger(charmLogger{}))
}

func selectedDeviceIndex() int {
	return viper.GetInt("device.index")
}

// withOpenDevice discovers the selected sensor, opens it for the
// callback, and guarantees the session and all wrappers are released.
func withOpenDevice(ctx context.Context, fn func(dev *fprint.Device) error) error {
	fpctx, err := fprint.NewContext()
	if err != nil {
		return err
	}
	defer fpctx.Destroy()

	devices := fpctx.Devices()
	defer func() {
		for _, d := range devices {
			d.Destroy()
		}
	}()
	if len(devices) == 0 {
		return errors.New("no fingerprint devices found")
	}

	idx := selectedDeviceIndex()
	if idx < 0 || idx >= len(devices) {
		return fmt.Errorf("device index %d out of range: %d device(s) present", idx, len(devices))
	}

	dev := devices[idx]
	log.Debug("opening device", "name", dev.Name(), "driver", dev.Driver())
	if err := dev.Open(ctx); err != nil {
		return fmt.Errorf("open device %q: %w", dev.Name(), err)
	}
	defer func() {
		if cerr := dev.Close(context.Background()); cerr != nil {
			log.Error("close device", "err", cerr)
		}
	}()

	return fn(dev)
}
