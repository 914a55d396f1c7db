package main

import (
	"github.com/spf13/cobra"
)

var sessionCleanups []func(failed bool)

// startSession sets up tracing and profiling before any subcommand runs.
func startSession(cmd *cobra.Command, _ []string) error {
	stopProfiling, err := setupProfiling(cmd)
	if err != nil {
		return err
	}
	sessionCleanups = append(sessionCleanups, func(bool) { stopProfiling() })

	stopTracing, err := setupTracing(cmd)
	if err != nil {
		finishSession(true)
		return err
	}
	sessionCleanups = append(sessionCleanups, stopTracing)
	return nil
}

// finishSession runs cleanups in reverse order. PersistentPostRun is not
// called when RunE fails, so main calls this after Execute.
func finishSession(failed bool) {
	for i := len(sessionCleanups) - 1; i >= 0; i-- {
		sessionCleanups[i](failed)
	}
	sessionCleanups = nil
}
