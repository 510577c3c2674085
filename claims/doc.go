// Package claims decodes bearer tokens locally, without a network round-trip
// and without signature verification.
//
// The client holds no verify key: the backend is the verifier and will reject
// a forged token on its own. Local decoding exists so the session layer can
// drop an expired or malformed token before spending a request on it, and so
// the UI can display the subject. Nothing decoded here is a grant.
//
// # What this package must NOT do
//
//   - Accept a decoded token as proof of anything.
//   - Call the network.
package claims
