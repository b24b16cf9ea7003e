package timinglog

import (
	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"

	"github.com/xmidt-org/stopwatch/timing"
)

var (
	operationKey interface{} = "operation"
	messageKey   interface{} = "msg"
)

// OperationKey returns the logging key under which the operation name is emitted.
func OperationKey() interface{} {
	return operationKey
}

// MessageKey returns the logging key under which the notification message is emitted.
func MessageKey() interface{} {
	return messageKey
}

// New produces a timing.Sink which dispatches each notification to a go-kit Logger
// at debug level.  A nil logger results in a sink that discards notifications.
func New(logger log.Logger) timing.Sink {
	if logger == nil {
		logger = log.NewNopLogger()
	}

	return timing.SinkFunc(func(operation, message string) {
		level.Debug(logger).Log(operationKey, operation, messageKey, message)
	})
}
