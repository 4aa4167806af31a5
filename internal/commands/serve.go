package commands

import (
	"log"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formboard/pkg/server"
)

// ServeCmd runs the HTTP surface: HTML forms plus the JSON API.
func ServeCmd() *cobra.Command {
	var listen string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve forms over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			board, err := openBoard()
			if err != nil {
				return err
			}
			theme, err := themeConfig()
			if err != nil {
				return err
			}

			addr := listen
			if addr == "" {
				addr = loadConfig().Listen
			}

			srv, err := server.New(board.Controller, server.WithTheme(theme))
			if err != nil {
				return err
			}

			log.Printf("formboard listening on %s", addr)
			return http.ListenAndServe(addr, srv.Handler())
		},
	}

	cmd.Flags().StringVar(&listen, "listen", "", "address to listen on (default from config, :8080)")

	return cmd
}
