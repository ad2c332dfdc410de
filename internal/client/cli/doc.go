// Package cli provides the interactive HR desk command-line host.
//
// It wires configuration, the SQLite-backed key-value store, the session
// service and the router, then runs a REPL that plays the part of the
// browser: "go <page>" changes the location, and every page entered is
// rendered as text. Mutating commands prompt for their fields, call the
// store, and the page re-renders from the store's change notification.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
