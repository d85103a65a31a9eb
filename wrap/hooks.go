package wrap

// Hook observes calls flowing through an Observed wrapper. A hook must not
// modify args or result; wrappers that change call semantics (Memoized,
// NAry) implement Invokable directly instead.
type Hook[T any] interface {
	Before(m Meta, args []T)
	After(m Meta, args []T, result T, err error)
}

// Observed runs hooks around an inner Invokable: Before in registration
// order, After in reverse so nested hooks unwind like a call stack.
type Observed[T any] struct {
	inner Invokable[T]
	hooks []Hook[T]
}

func Observe[T any](inner Invokable[T], hooks ...Hook[T]) *Observed[T] {
	return &Observed[T]{inner: inner, hooks: hooks}
}

func (o *Observed[T]) Meta() Meta { return o.inner.Meta() }

func (o *Observed[T]) Invoke(args ...T) (T, error) {
	m := o.inner.Meta()
	for _, h := range o.hooks {
		h.Before(m, args)
	}
	result, err := o.inner.Invoke(args...)
	for i := len(o.hooks) - 1; i >= 0; i-- {
		o.hooks[i].After(m, args, result, err)
	}
	return result, err
}
