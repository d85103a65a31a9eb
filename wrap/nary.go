package wrap

import (
	"errors"
	"fmt"
)

var ErrEmptyArgs = errors.New("empty argument list")

// NAry generalizes a binary function to one or more arguments by right
// folding: Invoke(x) is x, Invoke(x, y) is f(x, y), and for longer lists
// Invoke(x1, x2, ...) is f(x1, Invoke(x2, ...)).
type NAry[T any] struct {
	binary Invokable[T]
}

func NAryOf[T any](binary Invokable[T]) *NAry[T] { return &NAry[T]{binary: binary} }

func (n *NAry[T]) Meta() Meta { return n.binary.Meta() }

func (n *NAry[T]) Invoke(args ...T) (T, error) {
	switch len(args) {
	case 0:
		var zero T
		return zero, fmt.Errorf("%w: %s()", ErrEmptyArgs, n.binary.Meta().Name)
	case 1:
		return args[0], nil
	default:
		rest, err := n.Invoke(args[1:]...)
		if err != nil {
			var zero T
			return zero, err
		}
		return n.binary.Invoke(args[0], rest)
	}
}
