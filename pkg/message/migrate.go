// migrate.go — Offline administrative migration: normalize legacy
// document filenames left by the old random-suffix naming scheme
// (messages/<id>-<suffix>.json) to the canonical messages/<id>.json.
// Runs outside the Store contract; the store itself knows only the
// hash-derived scheme.
package message

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
)

var legacyName = regexp.MustCompile(`^([0-9a-f]{8})-([A-Za-z0-9]+)\.json$`)

// MigrateOptions controls a migration pass.
type MigrateOptions struct {
	DryRun bool // report without touching the filesystem
	Keep   bool // keep legacy sources after copying
}

// MigrateResult summarizes one pass.
type MigrateResult struct {
	Migrated int // legacy files renamed to canonical names
	Skipped  int // already-canonical or unrecognized files
	Deleted  int // legacy duplicates removed (destination existed)
}

// Migrate walks <root>/messages and renames legacy-suffixed documents to
// their canonical names. If the canonical file already exists the legacy
// duplicate is deleted (unless Keep is set). Content is never rewritten.
func Migrate(root string, opts MigrateOptions) (MigrateResult, error) {
	var res MigrateResult

	dir := filepath.Join(root, messagePath)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return res, &StorageError{Op: "migrate", Err: err}
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		m := legacyName.FindStringSubmatch(entry.Name())
		if m == nil {
			res.Skipped++
			continue
		}

		src := filepath.Join(dir, entry.Name())
		dst := filepath.Join(dir, m[1]+".json")

		if _, err := os.Stat(dst); err == nil {
			// Canonical document already present; the legacy copy is
			// redundant because content is a pure function of the id.
			if opts.DryRun || opts.Keep {
				res.Skipped++
				continue
			}
			if err := os.Remove(src); err != nil {
				return res, &StorageError{Op: "migrate", Err: err}
			}
			res.Deleted++
			continue
		}

		if opts.DryRun {
			res.Migrated++
			continue
		}

		if opts.Keep {
			if err := copyFile(src, dst); err != nil {
				return res, &StorageError{Op: "migrate", Err: err}
			}
		} else if err := os.Rename(src, dst); err != nil {
			return res, &StorageError{Op: "migrate", Err: err}
		}
		res.Migrated++
	}

	return res, nil
}

func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("read %s: %w", src, err)
	}
	return os.WriteFile(dst, data, 0o644)
}
