package wrap_test

import (
	"testing"

	"github.com/on-the-ground/wrap_ive_go/wrap"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapHook_LogsEntryAndExit(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	hook := wrap.NewZapHook[int](zap.New(core))

	add := wrap.Observe[int](
		wrap.Binary("add", "", func(a, b int) int { return a + b }),
		hook,
	)
	v, err := add.Invoke(4, 3)
	assert.NoError(t, err)
	assert.Equal(t, 7, v)

	entries := logs.All()
	assert.Len(t, entries, 2)
	assert.Equal(t, "entering", entries[0].Message)
	assert.Equal(t, "exiting", entries[1].Message)

	for _, e := range entries {
		fields := e.ContextMap()
		assert.Equal(t, "add", fields["fn"])
		assert.Equal(t, hook.ID(), fields["wrapper_id"])
	}
}

func TestZapHook_WarnsOnError(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	hook := wrap.NewZapHook[int](zap.New(core))

	nary := wrap.Observe[int](
		wrap.NAryOf[int](wrap.Binary("add", "", func(a, b int) int { return a + b })),
		hook,
	)
	_, err := nary.Invoke()
	assert.ErrorIs(t, err, wrap.ErrEmptyArgs)

	entries := logs.All()
	assert.Len(t, entries, 2)
	assert.Equal(t, zap.WarnLevel, entries[1].Level)
}

func TestZapHook_DistinctIDs(t *testing.T) {
	logger := zap.NewNop()
	a := wrap.NewZapHook[int](logger)
	b := wrap.NewZapHook[int](logger)
	assert.NotEqual(t, a.ID(), b.ID())
}
