// serve.go — HTTP service entry point.
package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nene-dev/thumbtalk/internal/config"
	"github.com/nene-dev/thumbtalk/internal/server"
	"github.com/nene-dev/thumbtalk/pkg/message"
	"github.com/nene-dev/thumbtalk/pkg/thumbnail"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the thumbnail HTTP service",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		store, err := message.NewFileStore(cfg.DataDir)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}

		renderer, err := thumbnail.NewRenderer(thumbnail.Options{
			Assets:  os.DirFS(cfg.AssetsDir),
			FontDir: cfg.FontDir,
		})
		if err != nil {
			return fmt.Errorf("renderer: %w", err)
		}

		srv := server.New(store, renderer, cfg.RenderCacheTTL, logger)

		logger.Info("listening",
			zap.String("addr", cfg.Addr()),
			zap.String("dataDir", cfg.DataDir),
			zap.String("assetsDir", cfg.AssetsDir),
		)
		return http.ListenAndServe(cfg.Addr(), srv.Router())
	},
}
