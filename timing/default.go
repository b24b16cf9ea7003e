package timing

// defaultStopWatch is the shared, ambient StopWatch used by the package-level functions.
var defaultStopWatch = New(nil)

// Default returns a global singleton StopWatch.  It is intended for use as ambient
// infrastructure, where passing a StopWatch through every call path is impractical.
// The returned instance is safe for concurrent access.
func Default() *StopWatch {
	return defaultStopWatch
}

// Start begins timing an operation on the default StopWatch.
func Start(name string) error {
	return defaultStopWatch.Start(name)
}

// Stop ends the current operation on the default StopWatch.
func Stop() int64 {
	return defaultStopWatch.Stop()
}

// ElapsedTime returns the running elapsed time of the current operation on the
// default StopWatch.
func ElapsedTime() int64 {
	return defaultStopWatch.ElapsedTime()
}

// Reset discards the calling goroutine's timing stack on the default StopWatch.
func Reset() {
	defaultStopWatch.Reset()
}

// Stats returns a copy of the default StopWatch's accumulated statistics.
func Stats() map[string]int64 {
	return defaultStopWatch.Stats()
}

// EnableLogging turns on start/stop notifications on the default StopWatch.
func EnableLogging() {
	defaultStopWatch.EnableLogging()
}

// DisableLogging turns off start/stop notifications on the default StopWatch.
func DisableLogging() {
	defaultStopWatch.DisableLogging()
}

// LoggingEnabled reports whether the default StopWatch emits notifications.
func LoggingEnabled() bool {
	return defaultStopWatch.LoggingEnabled()
}

// SetSink replaces the default StopWatch's notification sink.  A nil sink is ignored.
func SetSink(sink Sink) {
	defaultStopWatch.SetSink(sink)
}
