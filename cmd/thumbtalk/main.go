// thumbtalk — speech-bubble thumbnail service.
//
// Usage:
//
//	thumbtalk serve
//	thumbtalk render -o out.png --message "안녕" [--type sana_stare] [--sub-type 001] [--zoom]
//	thumbtalk migrate [--dry-run] [--keep]
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	verbose bool
	logger  *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "thumbtalk",
	Short: "Deterministic speech-bubble thumbnail generator",
	Long: `thumbtalk renders shareable 600×315 thumbnails that pair a character
illustration with a speech bubble containing a message, and persists the
inputs behind short content-derived ids so any thumbnail can be
regenerated from its link.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// .env is optional and never overrides the real environment.
		_ = godotenv.Load()

		cfg := zap.NewProductionConfig()
		if verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = cfg.Build()
		if err != nil {
			return fmt.Errorf("initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func main() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(serveCmd, renderCmd, migrateCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
