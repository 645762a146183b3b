package commands

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/moffa90/go-libfprint/fprint"
)

func printsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prints",
		Short: "Manage the stored print gallery",
	}
	cmd.AddCommand(printsListCmd(), printsDeleteCmd(), printsExportCmd(), printsImportCmd())
	return cmd
}

func printsListCmd() *cobra.Command {
	var username string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored prints",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openGallery()
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			recs, err := store.List(cmd.Context())
			if username != "" {
				recs, err = store.ByUsername(cmd.Context(), username)
			}
			if err != nil {
				return err
			}
			if len(recs) == 0 {
				fmt.Println("No prints stored.")
				return nil
			}

			for _, rec := range recs {
				fmt.Printf("%s  %-12s %-12s %s (%s)\n",
					rec.ID,
					rec.Username,
					fprint.Finger(rec.Finger),
					rec.EnrolledAt.Local().Format("2006-01-02 15:04"),
					rec.Driver,
				)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "only list this user's prints")
	return cmd
}

func printsDeleteCmd() *cobra.Command {
	var fromDevice bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a stored print",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openGallery()
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			rec, err := store.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if fromDevice {
				if err := deleteFromDevice(cmd, rec.Template); err != nil {
					return err
				}
			}

			if err := store.Delete(cmd.Context(), rec.ID); err != nil {
				return err
			}
			fmt.Printf("Deleted print %s (%s)\n", rec.ID, rec.Username)
			return nil
		},
	}

	cmd.Flags().BoolVar(&fromDevice, "from-device", false, "also remove the print from on-sensor storage")
	return cmd
}

// deleteFromDevice removes the template from the sensor's own storage,
// for devices that keep prints on the hardware.
func deleteFromDevice(cmd *cobra.Command, template []byte) error {
	p, err := fprint.Deserialize(template)
	if err != nil {
		return fmt.Errorf("deserialize stored print: %w", err)
	}
	defer p.Destroy()

	return withOpenDevice(cmd.Context(), func(dev *fprint.Device) error {
		if !dev.HasFeature(fprint.FeatureStorageDelete) {
			return fmt.Errorf("device %q has no deletable on-sensor storage", dev.Name())
		}
		if err := dev.DeletePrint(cmd.Context(), p); err != nil {
			return fmt.Errorf("delete from device: %w", err)
		}
		return nil
	})
}

func printsExportCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the gallery to a compressed archive",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openGallery()
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if output == "" {
				output = fmt.Sprintf("fprintctl-gallery-%s.json.zst", time.Now().Format("2006-01-02"))
			} else if !strings.HasSuffix(output, ".zst") {
				output += ".zst"
			}

			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("create archive: %w", err)
			}

			if err := store.Export(cmd.Context(), f); err != nil {
				_ = f.Close()
				_ = os.Remove(output)
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("write archive: %w", err)
			}

			fmt.Printf("Exported gallery to %s\n", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "archive file to write (default fprintctl-gallery-<date>.json.zst)")
	return cmd
}

func printsImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <archive>",
		Short: "Import prints from an exported archive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open archive: %w", err)
			}
			defer func() { _ = f.Close() }()

			store, err := openGallery()
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			n, err := store.Import(cmd.Context(), f)
			if err != nil {
				return err
			}
			fmt.Printf("Imported %d print(s)\n", n)
			return nil
		},
	}
}
