// Package cli provides the interactive command-line client.
//
// It wires configuration, the local sqlite store, the remote auth client and
// an interactive REPL. Typical flow: restore a persisted session, then
// execute user commands.
//
// Key features:
//   - Login / Signup (remote-first with local fallback) / Logout
//   - Whoami: inspect the active session
//   - Save / List / Delete items in the per-user saved list
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
package cli
