// Package serve contains the HTTP server command.
package serve

import (
	"net/http"
	"time"

	"ecakir/fintext/cmd/root"
	"ecakir/fintext/internal/server"

	"github.com/spf13/cobra"
)

// Cmd starts the HTTP API.
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the parsing API over HTTP.",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, closeStore, err := root.OpenStore(cmd.Context())
		if err != nil {
			return err
		}
		defer closeStore()

		srv := &http.Server{
			Addr:              root.Cfg.Server.Addr,
			Handler:           server.New(root.BuildPipeline(st), root.Logger()).Routes(),
			ReadHeaderTimeout: 5 * time.Second,
		}

		root.Log.WithField("addr", root.Cfg.Server.Addr).Info("Listening")
		return srv.ListenAndServe()
	},
}
