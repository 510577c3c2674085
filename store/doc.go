// Package store persists the bearer token across process restarts.
//
// A [TokenStore] holds at most one token under a fixed key. Three backends
// cover the product's deployment shapes: [Memory] for tests and ephemeral
// shells, [File] for desktop and CLI installs, and [Redis] for kiosk fleets
// where the shell is ephemeral but the seat is durable.
//
// # Architecture boundaries
//
// Stores read and write the token blob, nothing more. Attaching the token to
// outgoing requests, validating it, and deciding when to clear it belong to
// the session Manager; a store never inspects what it persists.
//
// # What this package must NOT do
//
//   - Decode, validate, or expire tokens.
//   - Touch the network beyond its own storage backend.
//   - Be written by anything other than the session Manager.
package store
