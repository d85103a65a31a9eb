// Package wrap provides composable wrappers for plain functions: call
// counting, memoization, n-ary argument folding, and call tracing.
//
// Every wrapper operates on the Invokable capability: a variadic function
// together with the Meta of the function underneath. Wrapping is explicit
// composition over that interface rather than nested closures, so the order
// of counters, tracers and caches in a chain stays visible at the call site.
//
// Wrappers come in two kinds:
//   - Hooks (Counter, Tracer, ZapHook, Timing) observe calls through
//     Observe without touching arguments or results.
//   - Full wrappers (Memoized, NAry) change what a call means and implement
//     Invokable directly.
//
// Memoization assumes purity — not just determinism, but referential
// transparency: entries are never invalidated, and a cached result stands in
// for the call forever.
//
// The package is single-threaded by design. Counters, trace depth and the
// default Trie store are plain ints and maps; sharing a wrapper chain across
// goroutines is undefined behavior.
//
// WARNING: Do not memoize impure functions (e.g., those depending on time, I/O, etc).
package wrap
