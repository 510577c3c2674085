// Package authclient owns the client-side session and authorization state for
// the mock-interview product. It manages the bearer-token lifecycle (persist,
// attach, validate, discard), hydrates the user profile from the remote auth
// API, and publishes an immutable session snapshot that route guards and UI
// callers read.
//
// The package is designed around a single-writer state container: only the
// [Manager] mutates the published [Snapshot] and the token store. Readers
// observe state through [Manager.Snapshot] or [Manager.Subscribe] and never
// write either resource directly. Every state-mutating operation claims a
// generation; results arriving for a superseded generation are discarded, so
// a slow profile fetch can never overwrite a later logout.
//
// # Architecture boundaries
//
// authclient is the public surface. It exposes [Manager], [Builder], [Config],
// and value types (Snapshot, Result, User). Token persistence lives in
// [github.com/mockview/authclient/store], local token decoding in
// [github.com/mockview/authclient/claims], the HTTP client in
// [github.com/mockview/authclient/api], and navigation decisions in
// [github.com/mockview/authclient/guard]. Flow orchestration and audit
// dispatch live under internal/ and are never exported.
//
// # What this package must NOT do
//
//   - Verify token signatures. The backend is the verifier; local decoding
//     exists only for expiry and subject display decisions.
//   - Render anything. Guards return decisions; the UI renders them.
//   - Let a remote-call failure escape as a fault. Failures degrade to an
//     Unauthenticated publish or a Result carrying a message.
package authclient
