// Package api is the HTTP client for the mock-interview auth backend.
//
// [Client] wraps the five auth endpoints the session subsystem depends on
// (sign-in, sign-up, current profile, forgot-password, reset-password) and
// owns the ambient bearer header: after [Client.SetToken] every outgoing
// request carries the token until [Client.ClearToken].
//
// # Architecture boundaries
//
// This package translates Go calls into HTTP exchanges and typed errors. It
// holds no session state beyond the ambient token and makes no authorization
// decisions; interpretation of responses belongs to the Manager.
//
// # What this package must NOT do
//
//   - Decode or validate JWTs.
//   - Read or write the token store.
//   - Retry or cache; callers decide what a failure means.
package api
