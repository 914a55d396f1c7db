package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
)

// VarsOutput is the JSON form of a finished run.
type VarsOutput struct {
	File       string           `json:"file,omitempty"`
	Vars       map[string]int64 `json:"vars"`
	Statements int              `json:"statements"`
	Cached     bool             `json:"cached,omitempty"`
	Error      string           `json:"error,omitempty"`
}

// FormatVarsPretty prints one "name = value" row per variable, names in the
// given order, values right-aligned.
func FormatVarsPretty(w io.Writer, names []string, vars map[string]int64, useColor bool) error {
	if len(names) == 0 {
		_, err := fmt.Fprintln(w, "(no variables)")
		return err
	}
	nameStyle := color.New(color.FgCyan)
	valueStyle := color.New(color.Bold)
	if useColor {
		nameStyle.EnableColor()
		valueStyle.EnableColor()
	} else {
		nameStyle.DisableColor()
		valueStyle.DisableColor()
	}

	nameWidth, valueWidth := 0, 0
	for _, n := range names {
		nameWidth = max(nameWidth, runewidth.StringWidth(n))
		valueWidth = max(valueWidth, len(strconv.FormatInt(vars[n], 10)))
	}
	for _, n := range names {
		pad := strings.Repeat(" ", nameWidth-runewidth.StringWidth(n))
		val := strconv.FormatInt(vars[n], 10)
		if _, err := fmt.Fprintf(w, "%s%s = %s%s\n",
			nameStyle.Sprint(n), pad,
			strings.Repeat(" ", valueWidth-len(val)), valueStyle.Sprint(val)); err != nil {
			return err
		}
	}
	return nil
}

// FormatVarsJSON writes the runs as a JSON array.
func FormatVarsJSON(w io.Writer, runs []VarsOutput) error {
	for i := range runs {
		if runs[i].Vars == nil {
			runs[i].Vars = map[string]int64{}
		}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(runs)
}
