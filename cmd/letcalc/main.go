package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"letcalc/internal/diagfmt"
	"letcalc/internal/version"
)

// errDiagnostics — тихая ошибка: диагностики уже напечатаны, нужен только exit 1.
var errDiagnostics = errors.New("diagnostics reported")

var rootCmd = &cobra.Command{
	Use:               "letcalc",
	Short:             "Evaluate let-statements over integer arithmetic",
	Long:              `letcalc runs programs made of "let name = expr;" statements and prints the resulting variables`,
	PersistentPreRunE: startSession,
}

// main registers subcommands and persistent flags, executes the root command
// and exits with status 1 if it failed.
func main() {
	// Устанавливаем версию для автоматического флага --version
	rootCmd.Version = version.Summary(false)
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Добавляем команды
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(cacheCmd)

	// Глобальные флаги
	pf := rootCmd.PersistentFlags()
	pf.String("color", "auto", "colorize output (auto|on|off)")
	pf.Bool("quiet", false, "suppress non-essential output")
	pf.Bool("timings", false, "show timing information")
	pf.Int("max-diagnostics", 100, "maximum number of diagnostics to show")
	pf.String("diag-format", "pretty", "diagnostics format (pretty|short|json)")
	pf.String("path-mode", "auto", "how file paths are shown (auto|absolute|relative|basename)")

	pf.String("trace", "", "write trace events to file (- for stderr)")
	pf.String("trace-level", "off", "trace level (off|error|phase|detail|debug)")
	pf.String("trace-mode", "stream", "trace storage (stream|ring|both)")
	pf.Int("trace-ring-size", 4096, "ring buffer capacity for --trace-mode=ring|both")

	pf.String("cpu-profile", "", "write CPU profile to file")
	pf.String("mem-profile", "", "write heap profile to file")
	pf.String("runtime-trace", "", "write Go runtime trace to file")

	err := rootCmd.Execute()
	finishSession(err != nil)
	if err != nil {
		os.Exit(1)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// readColor resolves --color for output going to f.
func readColor(cmd *cobra.Command, f *os.File) (bool, error) {
	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return false, fmt.Errorf("failed to get color flag: %w", err)
	}
	switch colorFlag {
	case "on":
		return true, nil
	case "off":
		return false, nil
	case "auto", "":
		return isTerminal(f), nil
	default:
		return false, fmt.Errorf("invalid --color value %q (expected auto|on|off)", colorFlag)
	}
}

// silenceDiagnostics turns off cobra's own error printing and returns
// errDiagnostics.
func silenceDiagnostics(cmd *cobra.Command) error {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	return errDiagnostics
}

// readPathMode parses --path-mode.
func readPathMode(cmd *cobra.Command) (diagfmt.PathMode, error) {
	s, err := cmd.Root().PersistentFlags().GetString("path-mode")
	if err != nil {
		return diagfmt.PathModeAuto, fmt.Errorf("failed to get path-mode flag: %w", err)
	}
	mode, ok := diagfmt.ParsePathMode(s)
	if !ok {
		return diagfmt.PathModeAuto, fmt.Errorf("invalid --path-mode value %q", s)
	}
	return mode, nil
}
