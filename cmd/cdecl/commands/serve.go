package commands

import (
	"errors"
	"log/slog"
	"net/http"
	"os"

	"github.com/panyam/cdecl/web"
	"github.com/spf13/cobra"
	"github.com/xyproto/env/v2"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the declaration parser over HTTP",
	Long: `Starts an HTTP server exposing the parser as a small JSON API:

  POST /api/v1/explain   {"declaration": "int *x;"}`,
	Run: func(cmd *cobra.Command, args []string) {
		server := web.NewServer(serveAddr)
		slog.Info("starting http server", "addr", serveAddr)
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server exited", "error", err)
			os.Exit(1)
		}
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", env.Str("CDECL_ADDR", ":8080"),
		"Address to listen on")
	AddCommand(serveCmd)
}
