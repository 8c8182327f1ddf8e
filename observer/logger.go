package observer

import (
	"go.uber.org/zap"

	"github.com/cryptonstudio/crypton-avl/types/avl"
)

var _ avl.Handler = &Logger{}

// Logger writes a debug entry for every tree modification.
type Logger struct {
	log *zap.SugaredLogger
}

// NewLogger creates Logger handler writing to given logger.
func NewLogger(log *zap.SugaredLogger) *Logger {
	return &Logger{log: log.With("source", "avl_tree")}
}

func (l *Logger) OnInsert(key any) {
	l.log.Debugw("node inserted", "key", key)
}

func (l *Logger) OnUpdate(key any) {
	l.log.Debugw("node updated", "key", key)
}

func (l *Logger) OnRemove(key any) {
	l.log.Debugw("node removed", "key", key)
}

func (l *Logger) OnRotate(rotation avl.Rotation, pivot any) {
	l.log.Debugw("rotated", "direction", rotation.String(), "pivot", pivot)
}
