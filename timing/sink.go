package timing

import "fmt"

// Sink receives start and stop notifications when logging is enabled on a StopWatch.
// Implementations must be safe for concurrent use, since any goroutine using the
// StopWatch may emit notifications.
type Sink interface {
	// Log accepts the name of an operation together with a human-readable message.
	Log(operation, message string)
}

// SinkFunc is a function type that implements Sink.
type SinkFunc func(operation, message string)

func (f SinkFunc) Log(operation, message string) {
	f(operation, message)
}

// NopSink returns a Sink that discards all notifications.
func NopSink() Sink {
	return SinkFunc(func(string, string) {})
}

// DefaultSink returns the initial Sink of a StopWatch, which writes each
// notification to stdout.
func DefaultSink() Sink {
	return SinkFunc(func(operation, message string) {
		fmt.Printf("[StopWatch] %s: %s\n", operation, message)
	})
}
