package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"stubgen/internal/adapter/fs"
	"stubgen/internal/domain"
	"stubgen/internal/usecase"
)

var (
	scanJSON       bool
	scanNoProgress bool
)

var scanCmd = &cobra.Command{
	Use:   "scan [path]",
	Short: "List source files that are test classes",
	Long: `Walk a directory with the configured include/exclude globs and report
which files contain [TestClass] and are therefore eligible for stubs.

Examples:
  stubgen scan .
  stubgen scan ./tests --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)
	scanCmd.Flags().BoolVar(&scanJSON, "json", false, "output as JSON")
	scanCmd.Flags().BoolVar(&scanNoProgress, "no-progress", false, "hide the progress bar")
}

func runScan(cmd *cobra.Command, args []string) error {
	path := GetRootDir()
	if len(args) > 0 {
		var err error
		path, err = filepath.Abs(args[0])
		if err != nil {
			return fmt.Errorf("invalid path: %w", err)
		}
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("path does not exist: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("path is not a directory: %s", path)
	}

	cfg := GetConfig()
	log := GetLogger()

	walker := fs.NewWalker(cfg.Scan.Includes, cfg.Scan.Excludes)
	scanUC := usecase.NewScanUseCase(walker, fs.Reader{})

	var progress usecase.ProgressFunc
	if !scanNoProgress && !scanJSON {
		progress = newScanProgress(cmd)
	}

	report, err := scanUC.Scan(path, progress)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	for _, e := range report.Errors {
		log.Warn("skipped file", zap.String("error", e))
	}

	out := cmd.OutOrStdout()
	if scanJSON {
		eligible := make([]domain.ScanResult, 0, report.TestClasses)
		for _, f := range report.Files {
			if f.TestClass {
				eligible = append(eligible, f)
			}
		}
		data, err := json.MarshalIndent(eligible, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal output: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	fmt.Fprintf(out, "Test classes (%d of %d files):\n", report.TestClasses, len(report.Files))
	for _, f := range report.Files {
		if !f.TestClass {
			continue
		}
		rel, err := filepath.Rel(path, f.Path)
		if err != nil {
			rel = f.Path
		}
		fmt.Fprintf(out, "  %s (%d lines)\n", filepath.ToSlash(rel), f.Lines)
	}
	return nil
}

func newScanProgress(cmd *cobra.Command) usecase.ProgressFunc {
	var bar *progressbar.ProgressBar
	var barMu sync.Mutex

	return func(processed, total int, currentFile string) {
		barMu.Lock()
		defer barMu.Unlock()

		if bar == nil {
			bar = progressbar.NewOptions(total,
				progressbar.OptionSetWriter(cmd.ErrOrStderr()),
				progressbar.OptionEnableColorCodes(true),
				progressbar.OptionShowBytes(false),
				progressbar.OptionSetWidth(40),
				progressbar.OptionShowCount(),
				progressbar.OptionSetDescription("[cyan]Scanning[reset]"),
				progressbar.OptionSetTheme(progressbar.Theme{
					Saucer:        "[green]=[reset]",
					SaucerHead:    "[green]>[reset]",
					SaucerPadding: " ",
					BarStart:      "[",
					BarEnd:        "]",
				}),
				progressbar.OptionOnCompletion(func() {
					fmt.Fprintln(cmd.ErrOrStderr())
				}),
			)
		}

		_ = bar.Set(processed)
	}
}
