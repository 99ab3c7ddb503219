// Package parse contains the one-shot parse command.
package parse

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"ecakir/fintext/cmd/root"

	"github.com/spf13/cobra"
)

var userID string

// Cmd runs the full pipeline once for a single utterance and prints the
// outcome as JSON.
var Cmd = &cobra.Command{
	Use:   "parse [text]",
	Short: "Parse an utterance and create a ledger entry.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, closeStore, err := root.OpenStore(cmd.Context())
		if err != nil {
			return err
		}
		defer closeStore()

		result, err := root.BuildPipeline(st).ParseAndCreate(cmd.Context(), userID, strings.Join(args, " "))
		if err != nil {
			return err
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			return err
		}

		if result.NeedsConfirmation {
			fmt.Fprintln(os.Stderr, "Low confidence: nothing was persisted, confirm and resubmit with explicit values.")
		}
		return nil
	},
}

func init() {
	Cmd.Flags().StringVarP(&userID, "user", "u", "", "User the entry belongs to")
	_ = Cmd.MarkFlagRequired("user")
}
