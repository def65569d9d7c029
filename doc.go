// Package ark provides a minimal thread-safe shared-ownership handle: an
// atomically reference-counted cell that owns a single value, disposes of it
// exactly once when the last handle is dropped, and grants exclusive mutable
// access whenever the count proves no other handle exists.
//
// The core idea is:
//   - Wrap a value with [New] (or [NewWithDispose]) to get the first [Handle].
//   - [Handle.Clone] hands out additional owners. Cloning is O(1) and never
//     touches the payload; every handle in the clone class sees the one value.
//   - [Handle.Drop] gives ownership back. The goroutine whose drop brings the
//     count to zero disposes of the value; no other goroutine ever does.
//   - [Handle.TryGetMut] grants mutable access to the payload, but only while
//     exactly one handle exists.
//
// Concurrency model (high level):
//   - Every operation is a bounded, non-blocking atomic operation on a single
//     counter; nothing in the package locks or suspends.
//   - Distinct handles to one cell may be used from distinct goroutines
//     freely. A single Handle value is not for concurrent use; clone it and
//     give each goroutine its own.
//   - The payload is shared read-only through [Handle.Value]. Mutating it
//     while siblings exist requires the payload's own synchronization (for
//     example a mutex inside T); the handle only synchronizes the count.
//
// Ownership model (high level):
//   - Drop consumes the handle. Using a handle after dropping it is a
//     contract violation and panics.
//   - The count of live handles is the single source of truth for both
//     reclamation and exclusivity; there are no other modes or states.

package ark
