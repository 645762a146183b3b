package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moffa90/go-libfprint/fprint"
)

func devicesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "devices",
		Short: "List available fingerprint devices",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := fprint.NewContext()
			if err != nil {
				return err
			}
			defer ctx.Destroy()

			devices := ctx.Devices()
			defer func() {
				for _, d := range devices {
					d.Destroy()
				}
			}()

			if len(devices) == 0 {
				fmt.Println("No fingerprint devices found.")
				return nil
			}

			for i, dev := range devices {
				fmt.Printf("[%d] %s\n", i, dev.Name())
				fmt.Printf("    driver:    %s\n", dev.Driver())
				fmt.Printf("    device id: %s\n", dev.DeviceID())
				fmt.Printf("    scan type: %s\n", dev.ScanType())
				fmt.Printf("    features:  %s\n", dev.Features())
			}
			return nil
		},
	}
}
