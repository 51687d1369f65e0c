package staticcell

import (
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

type loggerBox struct {
	l logrus.FieldLogger
}

var logger atomic.Pointer[loggerBox]

// SetLogger sets the destination of the diagnostics emitted right before a
// fatal panic. A nil logger restores logrus.StandardLogger().
//
// Successful operations never log.
func SetLogger(l logrus.FieldLogger) {
	if l == nil {
		logger.Store(nil)
		return
	}
	logger.Store(&loggerBox{l: l})
}

// Logger returns the current diagnostics logger.
func Logger() logrus.FieldLogger {
	if b := logger.Load(); b != nil {
		return b.l
	}
	return logrus.StandardLogger()
}
