package main

import (
	"fmt"
	"io"

	"letcalc/internal/driver"
	"letcalc/internal/observ"
)

type timingsPayload struct {
	File string        `json:"file"`
	Time observ.Report `json:"timings"`
}

// printTimings writes per-file phase timings. In json mode it emits one
// array so that stdout stays parseable.
func printTimings(out io.Writer, results []*driver.RunResult, asJSON bool) error {
	if out == nil {
		return nil
	}
	if asJSON {
		payload := make([]timingsPayload, 0, len(results))
		for _, r := range results {
			payload = append(payload, timingsPayload{File: displayPath(r), Time: r.Timer.Report()})
		}
		return encodeJSON(out, payload)
	}
	for _, r := range results {
		if r.Timer == nil {
			continue
		}
		if len(results) > 1 {
			if _, err := fmt.Fprintf(out, "%s ", displayPath(r)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprint(out, r.Timer.Summary()); err != nil {
			return err
		}
	}
	return nil
}
