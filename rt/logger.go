package rt

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var (
	logger atomic.Pointer[zap.Logger]
	nop    = zap.NewNop()
)

// Logger returns the runtime logger. It is a no-op logger by default.
func Logger() *zap.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	return nop
}

// SetLogger replaces the runtime logger. nil restores the no-op logger.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = nop
	}
	logger.Store(l)
}
