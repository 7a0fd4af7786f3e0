// Package cli implements the tokenregister command-line client.
//
// Every invocation runs one sub-command:
//
//	cli [global flags] <command> [command flags]
//
// Key management (keygen, pubkey) works offline against the encrypted
// keystore. Transaction commands (create-mint, init, update-manager,
// register, update-token) build, sign and submit one transaction and print
// its id. Query commands (show-manager, show-token, list-tokens, tx,
// snapshot, ping) print the node's answer as JSON.
//
// Keys are referred to by keystore name. Wherever a command takes a public
// key it also accepts a keystore name.
package cli
