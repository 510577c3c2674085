// Package flows contains the orchestrators for every session Manager
// operation.
//
// Each flow function (RunLoadUser, RunLogin, ...) accepts a typed dependency
// struct and returns an outcome value without publishing anything: deciding
// whether an outcome may still be applied (generation check) and mutating
// the published snapshot stay with the Manager. This split keeps the
// validation algorithm exhaustively testable with mock dependencies.
//
// # Architecture boundaries
//
// Flow functions coordinate token persistence, local decoding, and profile
// fetches through dependency closures. They do NOT own any of these
// resources; ownership stays with the Manager.
//
// # What this package must NOT do
//
//   - Hold mutable state between calls.
//   - Import the root package (to avoid import cycles).
//   - Publish snapshots or write the token store directly.
package flows
