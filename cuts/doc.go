// Package cuts manages valid inequalities (cutting planes) for a
// column-generation master problem.
//
// A Manager owns a registration-ordered set of separation Generators. Each
// round, the manager forwards an opaque master-problem snapshot to every
// generator and asks it to separate violated inequalities; the aggregate is
// reported on the event bus and each generator keeps the cuts it separated.
//
// Contracts:
//
//   - MasterData is opaque: the manager forwards it unmodified and never
//     inspects its structure.
//   - A cut belongs to exactly one generator (Inequality.Owner). Externally
//     supplied cuts are accepted only while their owning generator is
//     registered; otherwise AddCuts fails with UnregisteredGeneratorError
//     and performs no partial mutation.
//   - Cuts returns the union of all generators' cuts in generator
//     registration order.
//   - Close is idempotent: the first call releases every generator's
//     resources, later calls return nil without touching the generators.
//   - Single-threaded: AddGenerator/RemoveGenerator are safe only between
//     search steps; the manager assumes one external owner calling serially.
//
// Complexity: Generate is O(g · s) for g generators with separation cost s;
// all bookkeeping is linear in the number of generators and cuts.
package cuts
