package common

import (
	"github.com/inconshreveable/log15"
)

// Logger carries a log15 logger with bound context pairs; types embed
// *Logger and call Log().
type Logger struct {
	root log15.Logger
	log  log15.Logger
}

func NewLogger(root log15.Logger, args ...interface{}) *Logger {
	l := &Logger{root: root}
	if len(args) > 0 {
		l.log = root.New(args...)
	}

	return l
}

func (l *Logger) Log() log15.Logger {
	if l.log == nil {
		return l.root
	}

	return l.log
}

func (l *Logger) SetLogContext(ctx log15.Ctx, args ...interface{}) *Logger {
	base := l.log
	if base == nil {
		base = l.root
	}

	if ctx != nil {
		base = base.New(ctx)
	}
	if len(args) > 0 {
		base = base.New(args...)
	}

	l.log = base

	return l
}
