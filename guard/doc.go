// Package guard turns session snapshots into route access decisions.
//
// # Guards
//
//   - [Authenticated] — any signed-in user may pass.
//   - [Role] — signed-in user with a specific role may pass; a signed-in
//     user with the wrong role is forbidden in place, not redirected.
//
// Each guard is a pure function of the current [authclient.Snapshot] and
// the target path, producing a [Decision]. Callers re-evaluate on every
// snapshot change; guards hold no state of their own.
//
// # Architecture boundaries
//
// This package translates session state into navigation outcomes. It does
// NOT validate tokens, call the backend, or mutate the session; all of
// that belongs to the Manager.
//
// # What this package must NOT do
//
//   - Inspect or decode tokens (the snapshot phase is authoritative).
//   - Perform network I/O.
//   - Mutate the session in response to a decision.
package guard
