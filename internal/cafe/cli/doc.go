// Package cli provides the interactive café front desk.
//
// It wires configuration, the in-memory user registry, and the admin gate
// into a read–eval–print loop. Typical flow: register a customer, start a
// session for them, feed print/scan jobs into the activity loop, and end
// the session to produce the bill. Administrative operations sit behind an
// email allow-list and their own sub-menu.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// All state lives in memory and is lost when the process ends.
package cli
