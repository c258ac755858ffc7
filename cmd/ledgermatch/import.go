package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/quillfin/ledgermatch/internal/model"
	"github.com/quillfin/ledgermatch/internal/ofx"
)

func importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import [files...]",
		Short: "Import bank entries from OFX/QFX statement files",
		Long: `Import bank-statement lines from OFX or QFX files exported from your bank.

Examples:
  # Import a single file
  ledgermatch import ~/Downloads/statement_jan.ofx

  # Import everything in a directory
  ledgermatch import ~/Downloads/*.qfx`,
		Args: cobra.MinimumNArgs(1),
		RunE: runImport,
	}

	cmd.Flags().BoolP("dry-run", "d", false, "Preview import without saving")
	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	ctx := cmd.Context()

	var files []string
	for _, pattern := range args {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return fmt.Errorf("invalid pattern %s: %w", pattern, err)
		}
		if len(matches) == 0 {
			if _, err := os.Stat(pattern); err == nil {
				files = append(files, pattern)
			} else {
				slog.Warn("No files found matching pattern", "pattern", pattern)
			}
			continue
		}
		files = append(files, matches...)
	}
	if len(files) == 0 {
		return fmt.Errorf("no statement files to import")
	}

	parser := ofx.NewParser()
	var entries []model.BankEntry
	for _, file := range files {
		f, err := os.Open(file)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", file, err)
		}
		parsed, err := parser.ParseFile(ctx, f)
		_ = f.Close()
		if err != nil {
			return fmt.Errorf("failed to parse %s: %w", file, err)
		}
		entries = append(entries, parsed...)
	}

	if dryRun {
		cmd.Printf("Would import %d entries from %d files\n", len(entries), len(files))
		return nil
	}

	store, err := openStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	if err := store.SaveEntries(ctx, entries); err != nil {
		return err
	}

	cmd.Printf("Imported %d entries from %d files\n", len(entries), len(files))
	return nil
}
