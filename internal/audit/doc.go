// Package audit carries the session subsystem's audit event model and the
// asynchronous dispatcher that forwards events to a caller-supplied sink.
//
// Session operations emit one event per observable outcome (token rejected,
// login failure, stale result discarded, ...). Dispatch is buffered and never
// blocks the session path: when the buffer is full and DropIfFull is set,
// events are counted as dropped instead of queued.
//
// # What this package must NOT do
//
//   - Import the root package (no import cycles).
//   - Block a session mutation on a slow sink.
package audit
