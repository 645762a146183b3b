package commands

import (
	"errors"
	"fmt"

	log "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/moffa90/go-libfprint/fprint"
	"github.com/moffa90/go-libfprint/gallery"
)

func identifyCmd() *cobra.Command {
	var username string

	cmd := &cobra.Command{
		Use:   "identify",
		Short: "Identify a live capture against the stored gallery",
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
				return errors.New("the gallery is empty; enroll a print first")
			}

			// kept runs parallel to prints so a match maps back to its record.
			prints := make([]*fprint.Print, 0, len(recs))
			kept := make([]*gallery.Record, 0, len(recs))
			defer func() {
				for _, p := range prints {
					p.Destroy()
				}
			}()
			for _, rec := range recs {
				p, err := fprint.Deserialize(rec.Template)
				if err != nil {
					// A single unreadable record should not block identification.
					log.Error("skipping unreadable print", "id", rec.ID, "err", err)
					continue
				}
				prints = append(prints, p)
				kept = append(kept, rec)
			}
			if len(prints) == 0 {
				return errors.New("no stored prints could be deserialized")
			}

			return withOpenDevice(cmd.Context(), func(dev *fprint.Device) error {
				if !dev.HasFeature(fprint.FeatureIdentify) {
					return fmt.Errorf("device %q does not support identification", dev.Name())
				}

				fmt.Printf("Identifying against %d print(s) on %q. Touch the sensor.\n",
					len(prints), dev.Name())

				result, err := dev.Identify(cmd.Context(), prints)
				if err != nil {
					return fmt.Errorf("identify: %w", err)
				}
				if result.Print != nil {
					result.Print.Destroy()
				}
				if result.Match == nil {
					fmt.Println("NO MATCH")
					return nil
				}
				defer result.Match.Destroy()

				for i, p := range prints {
					if p.Equal(result.Match) {
						rec := kept[i]
						fmt.Printf("MATCH: %s (%s), print %s\n",
							rec.Username, fprint.Finger(rec.Finger), rec.ID)
						return nil
					}
				}
				// Matched print reported by the driver but not mapped back;
				// still a successful identification.
				fmt.Printf("MATCH: %s\n", result.Match.Username())
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "restrict the gallery to this user's prints")

	return cmd
}
