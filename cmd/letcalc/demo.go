package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"letcalc/internal/driver"
	"letcalc/internal/eval"
)

const demoProgram = "let x = 3 + 5 * (10 - 4); let y = x + 2;"

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the built-in sample program",
	Args:  cobra.NoArgs,
	RunE:  runDemo,
}

func runDemo(cmd *cobra.Command, _ []string) error {
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	printer, err := newDiagPrinter(cmd)
	if err != nil {
		return err
	}
	useColor, err := readColor(cmd, os.Stdout)
	if err != nil {
		return err
	}

	res := driver.RunSource(cmd.Context(), "demo.calc", []byte(demoProgram), driver.RunOptions{
		MaxDepth:       eval.DefaultMaxDepth,
		MaxDiagnostics: maxDiagnostics,
	})
	if !quiet {
		fmt.Fprintf(os.Stdout, "%s\n\n", demoProgram)
	}
	if err := printer.print(os.Stderr, res.Bag, res.FileSet); err != nil {
		return err
	}
	if err := printResults(os.Stdout, []*driver.RunResult{res}, "pretty", useColor, false); err != nil {
		return err
	}
	if res.Failed() {
		return silenceDiagnostics(cmd)
	}
	return nil
}
