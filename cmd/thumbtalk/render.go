// render.go — One-shot render to a PNG file, for local testing of
// layouts and assets without running the service.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nene-dev/thumbtalk/internal/config"
	"github.com/nene-dev/thumbtalk/pkg/thumbnail"
)

var renderOpts struct {
	output    string
	message   string
	imageType string
	subType   string
	zoom      bool
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a single thumbnail to a PNG file",
	RunE: func(cmd *cobra.Command, args []string) error {
		if renderOpts.output == "" {
			return fmt.Errorf("output file is required (-o)")
		}
		if renderOpts.message == "" {
			return fmt.Errorf("--message is required")
		}

		cfg, err := config.Load()
		if err != nil {
			return err
		}

		renderer, err := thumbnail.NewRenderer(thumbnail.Options{
			Assets:  os.DirFS(cfg.AssetsDir),
			FontDir: cfg.FontDir,
		})
		if err != nil {
			return fmt.Errorf("renderer: %w", err)
		}

		img, err := renderer.Render(thumbnail.Request{
			Message:   renderOpts.message,
			ImageType: renderOpts.imageType,
			SubType:   renderOpts.subType,
			Zoom:      renderOpts.zoom,
		})
		if err != nil {
			return err
		}

		if err := thumbnail.WritePNG(img, renderOpts.output); err != nil {
			return err
		}

		fmt.Printf("Done: %s\n", renderOpts.output)
		return nil
	},
}

func init() {
	renderCmd.Flags().StringVarP(&renderOpts.output, "output", "o", "", "Output PNG path")
	renderCmd.Flags().StringVarP(&renderOpts.message, "message", "m", "", "Message text (\\n for line breaks)")
	renderCmd.Flags().StringVarP(&renderOpts.imageType, "type", "t", thumbnail.DefaultType, "Character type")
	renderCmd.Flags().StringVar(&renderOpts.subType, "sub-type", "", "Expression index (overlay characters, e.g. 001)")
	renderCmd.Flags().BoolVar(&renderOpts.zoom, "zoom", false, "Enable the zoomed character crop")
}
