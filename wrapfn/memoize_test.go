package wrapfn_test

import (
	"fmt"
	"testing"

	"github.com/on-the-ground/wrap_ive_go/wrapfn"

	"github.com/stretchr/testify/assert"
)

func TestMemoizeI1O1(t *testing.T) {
	count := 0
	fn := wrapfn.MemoizeI1O1("double", func(i int) int {
		count++
		return i * 2
	})

	assert.Equal(t, 4, fn(2))
	assert.Equal(t, 4, fn(2)) // cached
	assert.Equal(t, 1, count)
}

func TestMemoizeI2O1(t *testing.T) {
	count := 0
	fn := wrapfn.MemoizeI2O1("add", func(a, b int) int {
		count++
		return a + b
	})

	assert.Equal(t, 5, fn(2, 3))
	assert.Equal(t, 5, fn(2, 3))
	assert.Equal(t, 1, count)
}

func TestMemoizeI3O1(t *testing.T) {
	count := 0
	fn := wrapfn.MemoizeI3O1("mul", func(a, b, c int) int {
		count++
		return a * b * c
	})

	assert.Equal(t, 24, fn(2, 3, 4))
	assert.Equal(t, 24, fn(2, 3, 4))
	assert.Equal(t, 1, count)
}

type NonComparable struct {
	Field []int // slices are not comparable
}

func (n NonComparable) String() string {
	return fmt.Sprintf("NonComparable%v", n.Field)
}

func TestMemoizeWithStringerFallback(t *testing.T) {
	count := 0
	fn := wrapfn.MemoizeI1O1("len", func(n NonComparable) int {
		count++
		return len(n.Field)
	})

	val := fn(NonComparable{Field: []int{1, 2, 3}})
	val2 := fn(NonComparable{Field: []int{1, 2, 3}})

	assert.Equal(t, 3, val)
	assert.Equal(t, 3, val2)
	assert.Equal(t, 1, count)
}

type TotallyInvalid struct {
	Field []int
}

func TestMemoizeWithPanicIfNoComparableOrStringer(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected panic due to missing Stringer and non-comparable type")
		}
	}()
	fn := wrapfn.MemoizeI1O1("len", func(t TotallyInvalid) int {
		return len(t.Field)
	})

	_ = fn(TotallyInvalid{Field: []int{1}})
}
