// Package cli provides the interactive bankapp command-line front end.
//
// The REPL offers login and registration, shows the profile of the logged in
// customer and answers the informational menu items (menu, settings,
// security, support, remember) with fixed texts. Transfer is a stub with no
// ledger effect.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits or
// input ends.
package cli
