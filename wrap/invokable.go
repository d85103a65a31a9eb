package wrap

import (
	"errors"
	"fmt"
	"strings"
)

// Meta carries the identity of the function underneath a wrapper chain. Go
// functions expose neither their name nor their documentation at runtime, so
// wrappers forward Meta explicitly instead.
type Meta struct {
	Name string
	Doc  string
}

// Invokable is the unit every wrapper operates on. Wrappers take an
// Invokable and return another one, forwarding Meta from the innermost.
type Invokable[T any] interface {
	Meta() Meta
	Invoke(args ...T) (T, error)
}

var ErrArity = errors.New("wrong number of arguments")

// Fn is the base Invokable, built directly from a function value.
type Fn[T any] struct {
	meta Meta
	call func(args ...T) (T, error)
}

func NewFn[T any](name, doc string, call func(args ...T) (T, error)) Fn[T] {
	return Fn[T]{meta: Meta{Name: name, Doc: doc}, call: call}
}

func (f Fn[T]) Meta() Meta { return f.meta }

func (f Fn[T]) Invoke(args ...T) (T, error) { return f.call(args...) }

// Unary lifts a pure single-argument function.
func Unary[T any](name, doc string, fn func(T) T) Fn[T] {
	return NewFn(name, doc, func(args ...T) (T, error) {
		if len(args) != 1 {
			var zero T
			return zero, arityErr(name, 1, len(args))
		}
		return fn(args[0]), nil
	})
}

// Binary lifts a pure two-argument function.
func Binary[T any](name, doc string, fn func(T, T) T) Fn[T] {
	return BinaryE(name, doc, func(x, y T) (T, error) { return fn(x, y), nil })
}

// BinaryE lifts a two-argument function that can fail.
func BinaryE[T any](name, doc string, fn func(T, T) (T, error)) Fn[T] {
	return NewFn(name, doc, func(args ...T) (T, error) {
		if len(args) != 2 {
			var zero T
			return zero, arityErr(name, 2, len(args))
		}
		return fn(args[0], args[1])
	})
}

func arityErr(name string, want, got int) error {
	return fmt.Errorf("%w: %s() takes %d, got %d", ErrArity, name, want, got)
}

func callString[T any](m Meta, args []T) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = fmt.Sprintf("%v", a)
	}
	return fmt.Sprintf("%s(%s)", m.Name, strings.Join(parts, ", "))
}
