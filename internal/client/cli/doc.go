// Package cli provides the interactive user catalogue client.
//
// It wires configuration, the users API client and a catalogue session into a
// read-eval-print loop. The table of users is printed after every command
// that changes what would be on screen.
//
// Commands:
//   - list                  print the table again
//   - search <text>         filter by text (empty clears); the fetch is debounced
//   - sort <name|email|role> sort by a column, repeating it flips direction
//   - refresh               reload from the server
//   - add                   create a user (form dialog)
//   - edit <id>             edit a user (form dialog)
//   - delete <id>           delete a user after confirmation
//   - exit | quit           leave the program
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
