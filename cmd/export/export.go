// Package export contains the CSV export command.
package export

import (
	"fmt"
	"os"

	"ecakir/fintext/cmd/root"

	"github.com/gocarina/gocsv"
	"github.com/spf13/cobra"
)

var (
	userID string
	output string
)

// Cmd dumps a user's ledger entries to CSV.
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export a user's ledger entries to CSV.",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, closeStore, err := root.OpenStore(cmd.Context())
		if err != nil {
			return err
		}
		defer closeStore()

		entries, err := st.ListEntries(cmd.Context(), userID)
		if err != nil {
			return err
		}

		file, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("creating %s: %w", output, err)
		}
		defer func() {
			if err := file.Close(); err != nil {
				root.Log.WithError(err).Warn("Failed to close output file")
			}
		}()

		if err := gocsv.MarshalFile(&entries, file); err != nil {
			return fmt.Errorf("writing CSV: %w", err)
		}

		root.Log.WithField("count", len(entries)).WithField("output", output).Info("Exported entries")
		return nil
	},
}

func init() {
	Cmd.Flags().StringVarP(&userID, "user", "u", "", "User whose entries to export")
	Cmd.Flags().StringVarP(&output, "output", "o", "entries.csv", "Output CSV file")
	_ = Cmd.MarkFlagRequired("user")
}
