package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"ember/internal/diagfmt"
	"ember/internal/driver"
	"ember/internal/observ"
	"ember/internal/project"
	"ember/internal/source"
	"ember/internal/ui"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] path",
	Short: "Tokenize an ember source file or directory",
	Long: `Tokenize breaks an ember source file into its constituent tokens.
Given a directory, every *.em file under it is tokenized concurrently; a
directory inside an ember.toml project picks up the manifest's settings.`,
	Args: cobra.ExactArgs(1),
	RunE: runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	tokenizeCmd.Flags().Int("jobs", 0, "number of parallel workers (0 = GOMAXPROCS)")
	tokenizeCmd.Flags().Bool("progress", false, "show interactive progress for directories")
	tokenizeCmd.Flags().String("cache-dir", "", "reuse tokenization results cached under this directory")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	path := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}

	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return tokenizeDirectory(cmd, path, format, maxDiagnostics)
	}
	return tokenizeSingleFile(cmd, path, format, maxDiagnostics)
}

func tokenizeSingleFile(cmd *cobra.Command, path, format string, maxDiagnostics int) error {
	timings, _ := cmd.Root().PersistentFlags().GetBool("timings")
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")

	// The cache stores the pretty dump, so JSON output always lexes.
	var cache *driver.DiskCache
	if cacheDir, _ := cmd.Flags().GetString("cache-dir"); cacheDir != "" && format == "pretty" {
		var err error
		cache, err = driver.OpenDiskCacheAt(cacheDir)
		if err != nil {
			return fmt.Errorf("failed to open cache: %w", err)
		}
	}

	timer := observ.NewTimer()
	phase := timer.Begin("tokenize")
	result, cached, err := driver.TokenizeWithCache(path, cache, maxDiagnostics)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}
	note := ""
	if cached != nil {
		note = "cache hit"
	}
	timer.End(phase, note)

	if timings {
		driver.AppendTimingDiagnostic(result.Bag, path, timer.Report())
		if !quiet {
			fmt.Fprint(os.Stderr, timer.Summary())
		}
	}

	if result.Bag.Len() > 0 {
		diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, diagfmt.PrettyOpts{
			Color:     useColor(cmd, os.Stderr),
			ShowNotes: true,
		})
	}

	switch {
	case cached != nil:
		if _, err := os.Stdout.Write(cached.Dump); err != nil {
			return err
		}
	case format == "json":
		if err := diagfmt.TokensJSON(os.Stdout, result.Buffer); err != nil {
			return err
		}
	default:
		diagfmt.Tokens(os.Stdout, result.Buffer)
	}

	if result.Bag.HasErrors() {
		return fmt.Errorf("%s: tokenization produced errors", path)
	}
	return nil
}

func tokenizeDirectory(cmd *cobra.Command, dir, format string, maxDiagnostics int) error {
	jobs, _ := cmd.Flags().GetInt("jobs")
	showProgress, _ := cmd.Flags().GetBool("progress")
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")

	// A manifest above the directory overrides where sources come from and
	// how many diagnostics are kept.
	dirs := []string{dir}
	if manifestPath, ok, err := project.FindManifest(dir); err == nil && ok {
		manifest, err := project.LoadManifest(manifestPath)
		if err != nil {
			return err
		}
		root := filepath.Dir(manifestPath)
		dirs = dirs[:0]
		for _, src := range manifest.SourceDirs {
			dirs = append(dirs, filepath.Join(root, src))
		}
		if manifest.MaxDiagnostics > 0 {
			maxDiagnostics = manifest.MaxDiagnostics
		}
	}

	opts := driver.DirOptions{MaxDiagnostics: maxDiagnostics, Jobs: jobs}

	var hadErrors bool
	for _, srcDir := range dirs {
		errored, err := tokenizeOneDirectory(cmd, srcDir, format, opts, showProgress && !quiet && isTerminal(os.Stdout))
		if err != nil {
			return err
		}
		hadErrors = hadErrors || errored
	}

	if hadErrors {
		return fmt.Errorf("%s: tokenization produced errors", dir)
	}
	return nil
}

func tokenizeOneDirectory(cmd *cobra.Command, dir, format string, opts driver.DirOptions, interactive bool) (hadErrors bool, err error) {
	var (
		fileSet *source.FileSet
		results []driver.FileResult
	)

	if interactive {
		files, err := driver.ListSourceFiles(dir)
		if err != nil {
			return false, err
		}
		events := make(chan ui.Event, len(files))
		opts.Progress = func(done, total int, path string) {
			events <- ui.Event{Path: path, Status: ui.StatusDone}
		}

		program := tea.NewProgram(ui.NewProgressModel("tokenize "+dir, files, events))
		var dirErr error
		go func() {
			fileSet, results, dirErr = driver.TokenizeDir(context.Background(), dir, opts)
			close(events)
		}()
		if _, err := program.Run(); err != nil {
			return false, err
		}
		if dirErr != nil {
			return false, dirErr
		}
	} else {
		fileSet, results, err = driver.TokenizeDir(context.Background(), dir, opts)
		if err != nil {
			return false, err
		}
	}

	return emitDirResults(cmd, fileSet, results, format)
}

func emitDirResults(cmd *cobra.Command, fileSet *source.FileSet, results []driver.FileResult, format string) (hadErrors bool, err error) {
	color := useColor(cmd, os.Stderr)

	for _, res := range results {
		if res.Buffer == nil {
			// Load failure: no FileSet entry to resolve spans against.
			for _, d := range res.Bag.Items() {
				fmt.Fprintf(os.Stderr, "%s: %s %s: %s\n", res.Path, d.Severity, d.Code.ID(), d.Message)
			}
			hadErrors = true
			continue
		}

		if res.Bag.Len() > 0 {
			diagfmt.Pretty(os.Stderr, res.Bag, fileSet, diagfmt.PrettyOpts{Color: color, ShowNotes: true})
		}
		if res.Bag.HasErrors() {
			hadErrors = true
		}

		fmt.Fprintf(os.Stdout, "== %s\n", res.Path)
		if format == "json" {
			if err := diagfmt.TokensJSON(os.Stdout, res.Buffer); err != nil {
				return hadErrors, err
			}
		} else {
			diagfmt.Tokens(os.Stdout, res.Buffer)
		}
	}
	return hadErrors, nil
}
