// Package events implements the lifecycle event bus of the search framework.
//
// Every stage of a search run (the branch-and-bound loop, per-node relaxation
// solves, cut separation) reports its milestones as immutable Event values on
// a Bus. External observers subscribe per Kind and receive each event exactly
// once, in subscription order.
//
// Contracts:
//
//   - Events are value-type snapshots; they are never mutated after
//     construction and listeners must not assume otherwise exploitable state.
//   - Listeners are side-effect-only observers: an event never carries a
//     handle into engine-owned state (frontier, incumbent, generator set).
//   - A listener failure (panic) is isolated: it is recovered, logged via
//     log/slog, and dispatch continues with the next listener. Failures are
//     never propagated into the publishing engine.
//   - Dispatch is synchronous and single-threaded; the Bus performs no
//     locking. A Bus shared across goroutines needs an external owner
//     serializing calls.
//
// Complexity: Subscribe/Unsubscribe O(k) over the kind's subscriber list;
// Publish O(k) per event.
package events
