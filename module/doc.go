// Package module defines module identity, records, dependency sets, and the
// module graph for the bundler.
//
// # Identity
//
// ID is the single identifier type used across hooks. It tags a module as
// either a real source file or a runtime-scoped module, carrying the
// reserved ".farm-runtime" suffix in its string form. The tag is decided
// once, at resolution time, and consumed everywhere else; code never does
// its own suffix string surgery.
//
// # Records
//
// A Module is created by the load stage, enriched with parsed metadata by
// the transform stage, and sealed by finalization, which stamps its type
// and module system.
//
// # Graph
//
// Graph records modules and their dependency edges and answers ordering
// queries. Ordering is deterministic: dependency-first where the edges form
// a DAG, lexicographic as the tie-breaker and the cycle fallback. All Graph
// methods are safe for concurrent use.
package module
