package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moffa90/go-libfprint/fprint"
	"github.com/moffa90/go-libfprint/gallery"
)

func verifyCmd() *cobra.Command {
	var (
		printID  string
		username string
	)

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify a live capture against one stored print",
		RunE: func(cmd *cobra.Command, args []string) error {
			if printID == "" && username == "" {
				return errors.New("either --id or --username is required")
			}

			store, err := openGallery()
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			rec, err := loadOneRecord(cmd, store, printID, username)
			if err != nil {
				return err
			}

			enrolled, err := fprint.Deserialize(rec.Template)
			if err != nil {
				return fmt.Errorf("deserialize stored print %s: %w", rec.ID, err)
			}
			defer enrolled.Destroy()

			return withOpenDevice(cmd.Context(), func(dev *fprint.Device) error {
				fmt.Printf("Verifying against print %s on %q. Touch the sensor.\n", rec.ID, dev.Name())

				result, err := dev.Verify(cmd.Context(), enrolled)
				if err != nil {
					return fmt.Errorf("verify: %w", err)
				}
				if result.Print != nil {
					result.Print.Destroy()
				}

				if result.Match {
					fmt.Printf("MATCH for %s (%s)\n", rec.Username, fprint.Finger(rec.Finger))
				} else {
					fmt.Println("NO MATCH")
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&printID, "id", "", "ID of the stored print to verify against")
	cmd.Flags().StringVarP(&username, "username", "u", "", "verify against the newest print of this user")

	return cmd
}

// loadOneRecord resolves --id or --username to a single stored print,
// preferring the explicit ID.
func loadOneRecord(cmd *cobra.Command, store *gallery.Store, printID, username string) (*gallery.Record, error) {
	if printID != "" {
		rec, err := store.Get(cmd.Context(), printID)
		if err != nil {
			return nil, err
		}
		return rec, nil
	}

	recs, err := store.ByUsername(cmd.Context(), username)
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, fmt.Errorf("no prints stored for %q", username)
	}
	return recs[len(recs)-1], nil
}
