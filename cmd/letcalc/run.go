package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"letcalc/internal/driver"
	"letcalc/internal/eval"
)

var runCmd = &cobra.Command{
	Use:   "run [flags] [file.calc|dir]",
	Short: "Evaluate a program and print its variables",
	Long: `Run evaluates a letcalc program and prints every variable it assigned.
A directory runs each *.calc file in it concurrently. Without an argument the
target comes from [run].main in the nearest letcalc.toml.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runProgram,
}

func init() {
	runCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	runCmd.Flags().Int("max-depth", eval.DefaultMaxDepth, fmt.Sprintf("parenthesis nesting limit (0 means the hard cap of %d)", eval.HardMaxDepth))
	runCmd.Flags().Bool("cache", false, "reuse results of unchanged files from the result cache")
	runCmd.Flags().Int("jobs", 0, "max parallel files for directories (0=auto)")
	runCmd.Flags().String("ui", "auto", "progress UI for directories (auto|on|off)")
}

// runSettings — итоговые настройки после слияния флагов и манифеста.
type runSettings struct {
	target         string
	format         string
	maxDepth       int
	maxDiagnostics int
	useCache       bool
	jobs           int
	ui             uiMode
	quiet          bool
	timings        bool
}

func readRunSettings(cmd *cobra.Command, args []string) (runSettings, error) {
	var s runSettings

	manifest, _, err := loadProjectManifest(".")
	if err != nil {
		return s, err
	}
	if len(args) > 0 {
		s.target = args[0]
	} else if s.target, err = resolveManifestTarget(manifest); err != nil {
		return s, err
	}

	if s.format, err = cmd.Flags().GetString("format"); err != nil {
		return s, fmt.Errorf("failed to get format flag: %w", err)
	}
	if format, ok := manifest.outputFormat(); ok && !cmd.Flags().Changed("format") {
		s.format = format
	}
	if s.format != "pretty" && s.format != "json" {
		return s, fmt.Errorf("unknown format: %s", s.format)
	}

	if s.maxDepth, err = cmd.Flags().GetInt("max-depth"); err != nil {
		return s, fmt.Errorf("failed to get max-depth flag: %w", err)
	}
	if depth, ok := manifest.maxDepth(); ok && !cmd.Flags().Changed("max-depth") {
		s.maxDepth = depth
	}
	if s.maxDepth < 0 {
		return s, fmt.Errorf("--max-depth must be >= 0")
	}

	if s.useCache, err = cmd.Flags().GetBool("cache"); err != nil {
		return s, fmt.Errorf("failed to get cache flag: %w", err)
	}
	if s.jobs, err = cmd.Flags().GetInt("jobs"); err != nil {
		return s, fmt.Errorf("failed to get jobs flag: %w", err)
	}
	uiValue, err := cmd.Flags().GetString("ui")
	if err != nil {
		return s, fmt.Errorf("failed to get ui flag: %w", err)
	}
	if s.ui, err = readUIMode(uiValue); err != nil {
		return s, err
	}

	root := cmd.Root().PersistentFlags()
	if s.maxDiagnostics, err = root.GetInt("max-diagnostics"); err != nil {
		return s, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	if s.quiet, err = root.GetBool("quiet"); err != nil {
		return s, fmt.Errorf("failed to get quiet flag: %w", err)
	}
	if s.timings, err = root.GetBool("timings"); err != nil {
		return s, fmt.Errorf("failed to get timings flag: %w", err)
	}
	return s, nil
}

func runProgram(cmd *cobra.Command, args []string) error {
	settings, err := readRunSettings(cmd, args)
	if err != nil {
		return err
	}
	printer, err := newDiagPrinter(cmd)
	if err != nil {
		return err
	}
	useColor, err := readColor(cmd, os.Stdout)
	if err != nil {
		return err
	}

	opts := driver.RunOptions{
		MaxDepth:       settings.maxDepth,
		MaxDiagnostics: settings.maxDiagnostics,
	}
	if settings.useCache {
		cache, cacheErr := driver.OpenResultCache("letcalc")
		if cacheErr != nil {
			return fmt.Errorf("failed to open result cache: %w", cacheErr)
		}
		opts.Cache = cache
	}

	st, err := os.Stat(settings.target)
	if err != nil {
		return fmt.Errorf("failed to stat path: %w", err)
	}

	var results []*driver.RunResult
	if st.IsDir() {
		results, err = runDirectory(cmd, settings, opts)
	} else {
		var res *driver.RunResult
		res, err = driver.RunFile(cmd.Context(), settings.target, opts)
		if res != nil {
			results = []*driver.RunResult{res}
		}
	}
	if err != nil {
		return fmt.Errorf("run failed: %w", err)
	}

	failed := false
	for _, r := range results {
		if err := printer.print(os.Stderr, r.Bag, r.FileSet); err != nil {
			return fmt.Errorf("failed to format diagnostics: %w", err)
		}
		failed = failed || r.Failed()
	}
	if err := printResults(os.Stdout, results, settings.format, useColor, st.IsDir()); err != nil {
		return fmt.Errorf("failed to print results: %w", err)
	}
	if settings.timings {
		if err := printTimings(os.Stderr, results, settings.format == "json"); err != nil {
			return err
		}
	}
	if !settings.quiet && settings.format == "pretty" {
		printSummary(os.Stderr, results)
	}
	if failed {
		return silenceDiagnostics(cmd)
	}
	return nil
}

func runDirectory(cmd *cobra.Command, settings runSettings, opts driver.RunOptions) ([]*driver.RunResult, error) {
	dirOpts := driver.DirOptions{RunOptions: opts, Jobs: settings.jobs}
	if shouldUseTUI(settings.ui, settings.format) {
		files, err := driver.ListSourceFiles(settings.target)
		if err != nil {
			return nil, err
		}
		title := "letcalc run " + filepath.Base(filepath.Clean(settings.target))
		_, results, err := runDirWithUI(cmd.Context(), title, settings.target, files, dirOpts)
		return results, err
	}
	_, results, err := driver.RunDir(cmd.Context(), settings.target, dirOpts)
	return results, err
}
