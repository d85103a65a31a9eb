package wrapfn

import (
	"github.com/on-the-ground/wrap_ive_go/wrap"
)

// NAry2 generalizes a typed binary function to one or more arguments by
// right folding. Zero arguments yield an error naming the function.
func NAry2[T any](name string, fn func(T, T) T) func(...T) (T, error) {
	return wrap.NAryOf[T](wrap.Binary(name, "", fn)).Invoke
}

// Counted1 returns a counted front over a unary function together with the
// counter observing it.
func Counted1[I1, O1 any](name string, fn func(I1) O1) (func(I1) O1, *wrap.Counter[any]) {
	counter := wrap.NewCounter[any]()
	observed := wrap.Observe[any](
		wrap.Unary[any](name, "", func(v any) any { return fn(v.(I1)) }),
		counter,
	)
	return func(i1 I1) O1 {
		return mustInvoke[O1](observed, i1)
	}, counter
}
