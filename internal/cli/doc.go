// Package cli provides the interactive job dispatcher terminal client.
//
// It wires configuration, the encrypted job store and a small REPL. On start
// the store is seeded and loaded; the user can then list jobs, show one job's
// details and toggle a job between open and closed.
//
// Failures are reported with the same generic alerts the mobile client shows;
// details go to the log.
//
// The REPL is started via App.Run(ctx, in), which blocks until the user exits
// or input ends.
package cli
