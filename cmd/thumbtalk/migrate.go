// migrate.go — One-time administrative cleanup of legacy storage keys.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nene-dev/thumbtalk/internal/config"
	"github.com/nene-dev/thumbtalk/pkg/message"
)

var migrateOpts struct {
	dryRun bool
	keep   bool
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Normalize legacy random-suffix document filenames",
	Long: `Renames documents stored under the historical naming scheme
(messages/<id>-<suffix>.json) to the canonical messages/<id>.json.
Content is never rewritten. Intended as an offline, one-time pass.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		res, err := message.Migrate(cfg.DataDir, message.MigrateOptions{
			DryRun: migrateOpts.dryRun,
			Keep:   migrateOpts.keep,
		})
		if err != nil {
			return err
		}

		mode := ""
		if migrateOpts.dryRun {
			mode = " (dry run)"
		}
		fmt.Printf("Migrated: %d, skipped: %d, deleted: %d%s\n",
			res.Migrated, res.Skipped, res.Deleted, mode)
		return nil
	},
}

func init() {
	migrateCmd.Flags().BoolVar(&migrateOpts.dryRun, "dry-run", false, "Report without touching the filesystem")
	migrateCmd.Flags().BoolVar(&migrateOpts.keep, "keep", false, "Keep legacy source files after copying")
}
