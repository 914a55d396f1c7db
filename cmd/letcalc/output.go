package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"letcalc/internal/diag"
	"letcalc/internal/diagfmt"
	"letcalc/internal/driver"
	"letcalc/internal/source"
)

// diagPrinter renders diagnostics according to the persistent flags.
type diagPrinter struct {
	format   string // pretty|short|json
	color    bool
	pathMode diagfmt.PathMode
}

func newDiagPrinter(cmd *cobra.Command) (diagPrinter, error) {
	format, err := cmd.Root().PersistentFlags().GetString("diag-format")
	if err != nil {
		return diagPrinter{}, fmt.Errorf("failed to get diag-format flag: %w", err)
	}
	switch format {
	case "pretty", "short", "json":
	default:
		return diagPrinter{}, fmt.Errorf("unknown diagnostics format: %s", format)
	}
	useColor, err := readColor(cmd, os.Stderr)
	if err != nil {
		return diagPrinter{}, err
	}
	pathMode, err := readPathMode(cmd)
	if err != nil {
		return diagPrinter{}, err
	}
	return diagPrinter{format: format, color: useColor, pathMode: pathMode}, nil
}

func (p diagPrinter) print(w io.Writer, bag *diag.Bag, fs *source.FileSet) error {
	if bag == nil || bag.Len() == 0 {
		return nil
	}
	switch p.format {
	case "short":
		if out := diag.FormatShortDiagnostics(bag.Items(), fs, true); out != "" {
			_, err := fmt.Fprintln(w, out)
			return err
		}
		return nil
	case "json":
		return diagfmt.JSON(w, bag, fs, diagfmt.JSONOpts{
			IncludePositions: true,
			PathMode:         p.pathMode,
			IncludeNotes:     true,
		})
	default:
		diagfmt.Pretty(w, bag, fs, diagfmt.PrettyOpts{
			Color:     p.color,
			Context:   2,
			PathMode:  p.pathMode,
			ShowNotes: true,
		})
		return nil
	}
}

// displayPath is the path shown in run headers and JSON output.
func displayPath(r *driver.RunResult) string {
	if r.File == nil {
		return r.Path
	}
	return r.File.FormatPath("relative", r.FileSet.BaseDir())
}

func varsOutput(r *driver.RunResult) diagfmt.VarsOutput {
	out := diagfmt.VarsOutput{
		File:       displayPath(r),
		Vars:       r.Vars,
		Statements: r.Statements,
		Cached:     r.Cached,
	}
	if r.Err != nil {
		out.Error = r.Err.Error()
	}
	return out
}

// printResults writes the variable tables (pretty) or one JSON array (json).
func printResults(w io.Writer, results []*driver.RunResult, format string, useColor, headers bool) error {
	if format == "json" {
		runs := make([]diagfmt.VarsOutput, 0, len(results))
		for _, r := range results {
			runs = append(runs, varsOutput(r))
		}
		return diagfmt.FormatVarsJSON(w, runs)
	}
	for i, r := range results {
		if headers {
			if i > 0 {
				fmt.Fprintln(w)
			}
			fmt.Fprintf(w, "== %s ==\n", displayPath(r))
		}
		if err := diagfmt.FormatVarsPretty(w, r.Names, r.Vars, useColor); err != nil {
			return err
		}
	}
	return nil
}

// printSummary is the one-line footer hidden by --quiet.
func printSummary(w io.Writer, results []*driver.RunResult) {
	statements, failed, cached := 0, 0, 0
	all := diag.NewBag(0)
	for _, r := range results {
		all.Merge(r.Bag)
		statements += r.Statements
		if r.Failed() {
			failed++
		}
		if r.Cached {
			cached++
		}
	}
	fmt.Fprintf(w, "%d file(s), %d statement(s)", len(results), statements)
	if cached > 0 {
		fmt.Fprintf(w, ", %d cached", cached)
	}
	if failed > 0 {
		fmt.Fprintf(w, ", %d failed", failed)
	}
	errs := 0
	for _, d := range all.Items() {
		if d.Severity >= diag.SevError {
			errs++
		}
	}
	if errs > 0 {
		fmt.Fprintf(w, ", %d error(s)", errs)
	}
	fmt.Fprintln(w)
}

// encodeJSON — общий JSON-энкодер с отступами.
func encodeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
