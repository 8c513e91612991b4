// Package status provides a compact result-of-operation value.
//
// A Status represents either success or one of a fixed set of error codes,
// each carrying a human-readable message and an optional POSIX error code
// (errno). It is designed to be returned by value from nearly every
// fallible function in a codebase, so the success path costs nothing: an
// OK status is the zero value and allocates no memory.
//
// # Design Principles
//
//   - Success is free (zero value, no allocation, no cleanup)
//   - Immutability (a status never changes after construction)
//   - Value semantics (copies are independent; no shared ownership)
//   - Self-documenting construction (one factory per error code)
//   - Policy-free (no retry, logging, or transport rules in this package)
//
// # Quick Start
//
// Creating statuses:
//
//	st := status.OK()
//	st := status.NotFound("key", status.WithDetail("missing"))
//	st := status.IOError("disk full", status.WithPosixCode(28))
//	st := status.InvalidArgumentf("bad port %d", port)
//
// Branching on outcome:
//
//	if st.IsOK() {
//	    return
//	}
//	if st.IsTimedOut() {
//	    // back off and retry, if the caller's policy allows
//	}
//
// Adding context while propagating:
//
//	if st := store.Get(key); !st.IsOK() {
//	    return st.CloneAndPrepend("loading snapshot")
//	}
//
// Rendering for logs:
//
//	log.Println(st.String())
//	// IO error: disk full (error 28)
//
// # Error Interop
//
// Status is not an error: an OK status is a valid value, not an absent
// one. At boundaries that expect error-shaped APIs, Err converts a status
// to an error (nil for OK) and FromError converts back, recovering the
// original status from anywhere in the chain. FromError also classifies
// plain errors, mapping io/fs sentinels, context cancellation, and
// syscall.Errno values to the matching codes.
//
// # Concurrency
//
// A status is immutable after construction, so any number of goroutines
// may call accessors on the same variable concurrently. If any goroutine
// reassigns the variable, all access to it must be externally
// synchronized; the type does not lock.
//
// # Compatibility
//
// Code ordinals and the labels returned by Code.String are fixed. Any
// external serialization of the enumeration must preserve the ordinal
// mapping; new codes are only ever appended.
package status
