package commands

import (
	"fmt"
	"time"

	log "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/moffa90/go-libfprint/fprint"
	"github.com/moffa90/go-libfprint/gallery"
)

func enrollCmd() *cobra.Command {
	var (
		username    string
		fingerName  string
		description string
	)

	cmd := &cobra.Command{
		Use:   "enroll",
		Short: "Enroll a new fingerprint and store it in the gallery",
		RunE: func(cmd *cobra.Command, args []string) error {
			finger, err := parseFinger(fingerName)
			if err != nil {
				return err
			}

			store, err := openGallery()
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			return withOpenDevice(cmd.Context(), func(dev *fprint.Device) error {
				template := fprint.NewPrint(dev)
				template.SetUsername(username)
				template.SetFinger(finger)
				if description != "" {
					template.SetDescription(description)
				}
				template.SetEnrollDate(time.Now())

				fmt.Printf("Enrolling %s on %q, %d stage(s). Touch the sensor when prompted.\n",
					username, dev.Name(), dev.NrEnrollStages())

				print, err := dev.Enroll(cmd.Context(), template,
					fprint.WithEnrollProgress(func(dev *fprint.Device, stage int, partial *fprint.Print, err error) {
						if partial != nil {
							partial.Destroy()
						}
						if fprint.IsRetry(err) {
							fmt.Printf("  %s\n", err)
							return
						}
						if err != nil {
							log.Error("enroll progress", "err", err)
							return
						}
						fmt.Printf("  stage %d of %d\n", stage, dev.NrEnrollStages())
					}),
				)
				if err != nil {
					return fmt.Errorf("enroll: %w", err)
				}
				defer print.Destroy()

				data, err := print.Serialize()
				if err != nil {
					return fmt.Errorf("serialize print: %w", err)
				}

				rec := &gallery.Record{
					Username: username,
					Finger:   int(finger),
					Driver:   print.Driver(),
					DeviceID: print.DeviceID(),
					Template: data,
				}
				if err := store.Save(cmd.Context(), rec); err != nil {
					return err
				}

				fmt.Printf("Enrolled %s (%s) as print %s\n", username, finger, rec.ID)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "username to enroll the print for")
	cmd.Flags().StringVarP(&fingerName, "finger", "f", "right-index", "finger being enrolled (e.g. right-index)")
	cmd.Flags().StringVar(&description, "description", "", "free-form description for the print")
	_ = cmd.MarkFlagRequired("username")

	return cmd
}
