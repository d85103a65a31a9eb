package wrap

// Counter counts invocations of the wrapper chain it is attached to,
// including recursive re-entrant ones. The count advances after the inner
// call returns and is never reset. Single goroutine only.
type Counter[T any] struct {
	calls int
}

func NewCounter[T any]() *Counter[T] { return &Counter[T]{} }

func (c *Counter[T]) Calls() int { return c.calls }

func (c *Counter[T]) Before(Meta, []T) {}

func (c *Counter[T]) After(Meta, []T, T, error) { c.calls++ }
