// Package seed contains the account-bootstrap command.
package seed

import (
	"ecakir/fintext/cmd/root"

	"github.com/spf13/cobra"
)

var userID string

// Cmd materializes the default category set for a user.
var Cmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the default categories for a user.",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, closeStore, err := root.OpenStore(cmd.Context())
		if err != nil {
			return err
		}
		defer closeStore()

		return st.SeedDefaultCategories(cmd.Context(), userID)
	},
}

func init() {
	Cmd.Flags().StringVarP(&userID, "user", "u", "", "User to bootstrap")
	_ = Cmd.MarkFlagRequired("user")
}
