package wrap_test

import (
	"testing"
	"time"

	"github.com/on-the-ground/wrap_ive_go/wrap"

	"github.com/stretchr/testify/assert"
)

func TestTiming_RecordsSpanPerCall(t *testing.T) {
	timing := wrap.NewTiming[int]()

	_, ok := timing.Last()
	assert.False(t, ok)

	slow := wrap.Observe[int](
		wrap.Unary("slow", "", func(n int) int {
			time.Sleep(time.Millisecond)
			return n
		}),
		timing,
	)

	_, err := slow.Invoke(1)
	assert.NoError(t, err)
	_, err = slow.Invoke(2)
	assert.NoError(t, err)

	last, ok := timing.Last()
	assert.True(t, ok)
	assert.GreaterOrEqual(t, last.Duration(), time.Millisecond)
	assert.GreaterOrEqual(t, timing.Total(), 2*time.Millisecond)
}

func TestTiming_UnwindsNestedCalls(t *testing.T) {
	timing := wrap.NewTiming[int]()

	var fact wrap.Invokable[int]
	base := wrap.NewFn[int]("fact", "", func(args ...int) (int, error) {
		n := args[0]
		if n <= 1 {
			return 1, nil
		}
		rest, err := fact.Invoke(n - 1)
		if err != nil {
			return 0, err
		}
		return n * rest, nil
	})
	fact = wrap.Observe[int](base, timing)

	v, err := fact.Invoke(4)
	assert.NoError(t, err)
	assert.Equal(t, 24, v)

	// one span per invocation, outermost recorded last
	last, ok := timing.Last()
	assert.True(t, ok)
	assert.GreaterOrEqual(t, last.Duration(), time.Duration(0))
}
