package cli

import (
	"net/http"

	"github.com/spf13/cobra"

	"img2pdf/server"
)

func newServeCmd() *cobra.Command {
	var (
		addr       string
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve image-to-PDF assembly over HTTP",
		Long: `Serve starts an HTTP endpoint for browser callers: POST /assemble with
multipart "images" parts in page order and a "filename" field, and the
response is the assembled PDF as an attachment.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			geom, err := loadGeometry(configPath)
			if err != nil {
				return err
			}

			srv := server.New(geom, logger)
			logger.Info("listening", "addr", addr)
			return http.ListenAndServe(addr, srv.Router())
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", ":8080", "listen address")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "TOML page geometry config")

	return cmd
}
