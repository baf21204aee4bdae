// Package cli provides the interactive chainmarket command-line client.
//
// It wires configuration, local session storage, the marketplace API client,
// and an interactive REPL. Typical flow: restore a previously saved session
// from disk, then let the user sign in with a wallet and execute commands.
//
// Key features:
//   - Login / Logout (wallet address + signed nonce)
//   - Status (identity, role, shop profile)
//   - Open (route guard check for a navigation target)
//   - Shop management for merchants (view profile, apply)
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
