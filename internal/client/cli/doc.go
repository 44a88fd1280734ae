// Package cli provides the interactive carmarket command-line client.
//
// It wires the catalog, auth, profile and settings services into a REPL.
// Logged out, the user can register and log in; logged in, the user can sell
// a car, browse and inspect listings, make offers, manage the profile account
// list and toggle the settings flags.
//
// Every command error is turned into a short user-facing message by
// userMessage; the REPL itself never stops on a command failure.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits or
// input ends.
package cli
