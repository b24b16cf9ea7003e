package timinglog

import (
	"github.com/xmidt-org/sallust"
	"go.uber.org/zap"

	"github.com/xmidt-org/stopwatch/timing"
)

// NewZap produces a timing.Sink which dispatches each notification to a zap
// Logger at debug level.  A nil logger falls back to sallust.Default().
func NewZap(logger *zap.Logger) timing.Sink {
	if logger == nil {
		logger = sallust.Default()
	}

	return timing.SinkFunc(func(operation, message string) {
		logger.Debug(message, zap.String("operation", operation))
	})
}
