package wrap

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ZapHook emits a structured log line on entry and exit of every call. Each
// hook instance carries its own wrapper id so interleaved chains can be told
// apart in the output.
type ZapHook[T any] struct {
	id     string
	logger *zap.Logger
}

func NewZapHook[T any](logger *zap.Logger) *ZapHook[T] {
	return &ZapHook[T]{id: uuid.New().String(), logger: logger}
}

func (zh *ZapHook[T]) ID() string { return zh.id }

func (zh *ZapHook[T]) Before(m Meta, args []T) {
	zh.logger.Debug("entering",
		zap.String("wrapper_id", zh.id),
		zap.String("fn", m.Name),
		zap.Any("args", args),
	)
}

func (zh *ZapHook[T]) After(m Meta, args []T, result T, err error) {
	if err != nil {
		zh.logger.Warn("exiting",
			zap.String("wrapper_id", zh.id),
			zap.String("fn", m.Name),
			zap.Error(err),
		)
		return
	}
	zh.logger.Debug("exiting",
		zap.String("wrapper_id", zh.id),
		zap.String("fn", m.Name),
		zap.Any("result", result),
	)
}
