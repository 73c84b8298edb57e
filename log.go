package lasterr

import (
	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
)

// CategoryError is the log category newly set messages are echoed to.
const CategoryError = "error"

// debugLevel is the logr verbosity used for debug output. zapr maps it to
// zap's DebugLevel.
const debugLevel = 1

// LogSink receives debug echoes of newly set messages. Calls are fire and
// forget; implementations handle their own synchronization.
type LogSink interface {
	DebugEnabled(category string) bool
	Debug(category, msg string)
}

type logrSink struct {
	logger logr.Logger
}

// NewLogrSink returns a LogSink that writes to logger. Each category becomes a
// named logger and debug output is logged at V(1).
func NewLogrSink(logger logr.Logger) LogSink {
	return logrSink{logger: logger}
}

func (s logrSink) DebugEnabled(category string) bool {
	return s.logger.WithName(category).V(debugLevel).Enabled()
}

func (s logrSink) Debug(category, msg string) {
	s.logger.WithName(category).V(debugLevel).Info(msg)
}

// NewZapLogger builds a logr.Logger backed by zap. Development loggers log at
// debug level, so messages set with SetErrorf are echoed; production loggers
// start at info level and stay quiet.
func NewZapLogger(development bool) (logr.Logger, error) {
	var cfg zap.Config
	if development {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}

	zapLog, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return logr.Discard(), err
	}
	return zapr.NewLogger(zapLog), nil
}
