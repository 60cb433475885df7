package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Veraticus/jarwise/internal/cli"
	"github.com/Veraticus/jarwise/internal/common"
	"github.com/Veraticus/jarwise/internal/model"
	"github.com/Veraticus/jarwise/internal/ofx"
	"github.com/spf13/cobra"
)

var statementExtensions = map[string]bool{
	".ofx": true,
	".qfx": true,
}

func importCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "import [files or directories...]",
		Short: "Import transactions from OFX/QFX statements",
		Long: `Import transactions from OFX or QFX statements exported from your bank.
Directories are scanned for .ofx and .qfx files. New transactions are
auto-categorized; transactions already in the ledger are skipped.

Examples:
  # Import a single statement
  jarwise import ~/Downloads/hdfc_oct.qfx

  # Import every statement in a directory
  jarwise import ~/Downloads/statements

  # Preview without saving
  jarwise import --dry-run ~/Downloads/*.ofx`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := collectStatementFiles(args)
			if err != nil {
				return err
			}

			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			return runImport(cmd, a, files, dryRun)
		},
	}

	cmd.Flags().BoolVarP(&dryRun, "dry-run", "d", false, "Preview import without saving")

	return cmd
}

// collectStatementFiles expands globs and directories into a sorted list of
// statement files.
func collectStatementFiles(args []string) ([]string, error) {
	seen := make(map[string]bool)
	var files []string
	add := func(path string) {
		if !seen[path] {
			seen[path] = true
			files = append(files, path)
		}
	}

	for _, pattern := range args {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %s: %w", pattern, err)
		}
		if len(matches) == 0 {
			slog.Warn("No files found matching pattern", "pattern", pattern)
			continue
		}

		for _, match := range matches {
			info, err := os.Stat(match)
			if err != nil {
				return nil, fmt.Errorf("failed to stat %s: %w", match, err)
			}
			if !info.IsDir() {
				add(match)
				continue
			}

			entries, err := os.ReadDir(match)
			if err != nil {
				return nil, fmt.Errorf("failed to read directory %s: %w", match, err)
			}
			for _, entry := range entries {
				if entry.IsDir() || !statementExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
					continue
				}
				add(filepath.Join(match, entry.Name()))
			}
		}
	}

	if len(files) == 0 {
		return nil, common.NewUserError("No OFX/QFX files found to import", common.ErrNoTransactions)
	}

	sort.Strings(files)
	return files, nil
}

func runImport(cmd *cobra.Command, a *app, files []string, dryRun bool) error {
	out := cmd.OutOrStdout()
	interrupts := cli.NewInterruptHandler(out, "Import", "Statements imported before the interrupt are saved.")
	ctx := interrupts.HandleInterrupts(cmd.Context())

	slog.Info("Importing statements", "file_count", len(files), "dry_run", dryRun)

	parser := ofx.NewParser()
	progress := cli.NewProgress(cmd.ErrOrStderr(), len(files), "Importing")

	var parsed, saved int
	for _, path := range files {
		if ctx.Err() != nil {
			break
		}
		progress.Describe(filepath.Base(path))

		txns, accounts, err := parseStatement(ctx, parser, path)
		if err != nil {
			slog.Error("Failed to parse statement", "file", path, "error", err)
			progress.Step()
			continue
		}
		slog.Debug("Parsed statement",
			"file", filepath.Base(path),
			"accounts", strings.Join(accounts, ","),
			"transactions", len(txns))

		txns = a.classifier.AutoCategorize(txns)
		parsed += len(txns)

		if !dryRun && len(txns) > 0 {
			inserted, err := a.store.SaveTransactions(ctx, txns)
			if err != nil {
				if errors.Is(err, context.Canceled) {
					break
				}
				return fmt.Errorf("failed to save transactions from %s: %w", filepath.Base(path), err)
			}
			saved += inserted
			slog.Info("Imported statement",
				"file", filepath.Base(path),
				"transactions_found", len(txns),
				"added", inserted,
				"duplicates", len(txns)-inserted)
		}
		progress.Step()
	}
	progress.Finish()

	if interrupts.WasInterrupted() {
		return nil
	}

	if dryRun {
		writeLine(out, cli.FormatInfo(fmt.Sprintf("Dry run: %d transactions parsed, nothing saved", parsed)))
		return nil
	}
	writeLine(out, cli.FormatSuccess(fmt.Sprintf("Imported %d new transactions (%d parsed)", saved, parsed)))
	return nil
}

// parseStatement reads one statement file and returns its transactions along
// with the account IDs it covers.
func parseStatement(ctx context.Context, parser *ofx.Parser, path string) ([]model.Transaction, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read file: %w", err)
	}

	txns, err := parser.ParseFile(ctx, bytes.NewReader(data))
	if err != nil {
		return nil, nil, err
	}
	accounts, err := parser.GetAccounts(ctx, bytes.NewReader(data))
	if err != nil {
		return nil, nil, err
	}
	return txns, accounts, nil
}
