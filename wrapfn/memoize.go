package wrapfn

import (
	"github.com/on-the-ground/wrap_ive_go/shared/helper"
	"github.com/on-the-ground/wrap_ive_go/wrap"
)

// ComparableOrStringer marks input type parameters that must either be valid
// map keys or implement fmt.Stringer. Violations panic at first call.
type ComparableOrStringer = any

func MemoizeI1O1[I1 ComparableOrStringer, O1 any](name string, fn func(I1) O1) func(I1) O1 {
	memoized := wrap.Memoize[any](wrap.NewFn[any](name, "", func(args ...any) (any, error) {
		return fn(args[0].(I1)), nil
	}))
	return func(i1 I1) O1 {
		return mustInvoke[O1](memoized, i1)
	}
}

func MemoizeI2O1[I1, I2 ComparableOrStringer, O1 any](name string, fn func(I1, I2) O1) func(I1, I2) O1 {
	memoized := wrap.Memoize[any](wrap.NewFn[any](name, "", func(args ...any) (any, error) {
		return fn(args[0].(I1), args[1].(I2)), nil
	}))
	return func(i1 I1, i2 I2) O1 {
		return mustInvoke[O1](memoized, i1, i2)
	}
}

func MemoizeI3O1[I1, I2, I3 ComparableOrStringer, O1 any](name string, fn func(I1, I2, I3) O1) func(I1, I2, I3) O1 {
	memoized := wrap.Memoize[any](wrap.NewFn[any](name, "", func(args ...any) (any, error) {
		return fn(args[0].(I1), args[1].(I2), args[2].(I3)), nil
	}))
	return func(i1 I1, i2 I2, i3 I3) O1 {
		return mustInvoke[O1](memoized, i1, i2, i3)
	}
}

func mustInvoke[O1 any](inv wrap.Invokable[any], args ...any) O1 {
	v, err := inv.Invoke(args...)
	if err != nil {
		panic(err)
	}
	return helper.MustTypedValue[O1](v)
}
