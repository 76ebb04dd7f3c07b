// Package cli provides the interactive Co-Director command-line client.
//
// It wires configuration, local storage, the state store, the auth service
// and an interactive REPL. On start the persisted state is rehydrated, a
// background watcher tracks backend connectivity, and user commands are
// dispatched until the user exits.
//
// Commands:
//   - register / login / logout
//   - profile, refresh
//   - theme, lang, mock, dev
//   - status
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, StartOnlineStatusWatcher, and runREPL for details.
package cli
