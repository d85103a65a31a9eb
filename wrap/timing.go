package wrap

import (
	"time"

	"github.com/rickb777/date/v2/timespan"
)

// Timing records a TimeSpan per completed call. Recursive calls produce
// nested, overlapping spans, so Total over a recursive chain exceeds wall
// time.
type Timing[T any] struct {
	starts []time.Time
	spans  []timespan.TimeSpan
}

func NewTiming[T any]() *Timing[T] { return &Timing[T]{} }

func (tm *Timing[T]) Before(Meta, []T) {
	tm.starts = append(tm.starts, time.Now())
}

func (tm *Timing[T]) After(Meta, []T, T, error) {
	last := len(tm.starts) - 1
	start := tm.starts[last]
	tm.starts = tm.starts[:last]
	tm.spans = append(tm.spans, timespan.BetweenTimes(start, time.Now()))
}

// Last returns the span of the most recently completed call.
func (tm *Timing[T]) Last() (timespan.TimeSpan, bool) {
	if len(tm.spans) == 0 {
		var zero timespan.TimeSpan
		return zero, false
	}
	return tm.spans[len(tm.spans)-1], true
}

// Total sums the durations of all recorded spans.
func (tm *Timing[T]) Total() time.Duration {
	var total time.Duration
	for _, s := range tm.spans {
		total += s.Duration()
	}
	return total
}
