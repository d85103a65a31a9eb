// Package wrapfn provides typed fronts over the wrap package for common
// arities.
//
// The wrap core is homogeneous: an Invokable takes and returns values of a
// single type, which is what n-ary folding needs. Memoization has no such
// constraint, so the MemoizeIxO1 family boxes typed arguments into an
// Invokable[any] and asserts the result back out, giving callers a plainly
// typed function with no visible wrapper machinery.
//
// These fronts assume purity the same way wrap.Memoize does: memoize only
// functions whose result is fully determined by their arguments.
package wrapfn
