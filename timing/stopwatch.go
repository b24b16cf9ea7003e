package timing

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/petermattis/goid"
)

// ErrBlankName is returned by Start when given a name that is empty or consists
// only of whitespace.
var ErrBlankName = errors.New("timing: operation name must not be blank")

// sinkHolder allows sinks of differing concrete types to be stored in an atomic.Value.
type sinkHolder struct {
	sink Sink
}

// StopWatch measures the execution time of named operations.  Operations nest:
// starting an operation while another is active on the same goroutine makes the
// new operation a child of the active one.  Each goroutine gets its own isolated
// timing stack, while accumulated totals and the notification configuration are
// shared across all goroutines.
//
// All methods are safe for concurrent use.  The zero value is not usable;
// construct instances with New.
type StopWatch struct {
	now   func() time.Time
	since func(time.Time) time.Duration

	contexts sync.Map // int64 (goroutine id) -> *timingContext
	stats    stats

	loggingEnabled uint32
	sink           atomic.Value // sinkHolder
}

// New constructs a StopWatch from a set of options.  The options object can be
// nil, in which case defaults are applied: the system clock, logging disabled,
// and a stdout sink.
func New(o *Options) *StopWatch {
	sw := &StopWatch{
		now:   o.nowFunc(),
		since: o.sinceFunc(),
	}

	sw.sink.Store(sinkHolder{sink: o.sink()})
	if o.logging() {
		sw.EnableLogging()
	}

	return sw
}

// context returns the calling goroutine's timing context, creating it lazily.
// A context is only ever mutated by its owning goroutine.
func (sw *StopWatch) context() *timingContext {
	id := goid.Get()
	if v, ok := sw.contexts.Load(id); ok {
		return v.(*timingContext)
	}

	v, _ := sw.contexts.LoadOrStore(id, newTimingContext(sw.now, sw.since))
	return v.(*timingContext)
}

// Start begins timing an operation with the given name.  If another operation is
// already active on this goroutine, the new operation becomes its child.  Start
// returns ErrBlankName, without any state change or notification, if the name is
// empty or whitespace-only.
func (sw *StopWatch) Start(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrBlankName
	}

	sw.context().push(name)

	if sw.LoggingEnabled() {
		sw.loadSink().Log(name, "Started")
	}

	return nil
}

// Stop ends the current operation on this goroutine, folds its elapsed time into
// the shared statistics under the operation's name, and returns the elapsed time
// in milliseconds.  An operation's elapsed time encloses that of its children;
// children additionally accumulate under their own names.  Stopping with no
// active operation is a no-op returning 0, with no notification.
func (sw *StopWatch) Stop() int64 {
	name, elapsed := sw.context().pop()
	if name == "" {
		return 0
	}

	sw.stats.add(name, elapsed)

	if sw.LoggingEnabled() {
		sw.loadSink().Log(name, fmt.Sprintf("Finished - elapsed time: %dms", elapsed))
	}

	return elapsed
}

// ElapsedTime returns the elapsed milliseconds of the current operation on this
// goroutine without stopping it, or 0 if no operation is active.
func (sw *StopWatch) ElapsedTime() int64 {
	return sw.context().elapsed()
}

// Reset discards the calling goroutine's timing stack.  Stacks owned by other
// goroutines and the accumulated statistics are unaffected.
func (sw *StopWatch) Reset() {
	sw.contexts.Delete(goid.Get())
}

// Stats returns a point-in-time copy of the accumulated elapsed milliseconds of
// every operation stopped so far, from any goroutine.  The returned map is owned
// by the caller.  Running operations do not contribute until stopped.
func (sw *StopWatch) Stats() map[string]int64 {
	return sw.stats.snapshot()
}

// EnableLogging turns on start/stop notifications to the sink, for all goroutines.
func (sw *StopWatch) EnableLogging() {
	atomic.StoreUint32(&sw.loggingEnabled, 1)
}

// DisableLogging turns off start/stop notifications.
func (sw *StopWatch) DisableLogging() {
	atomic.StoreUint32(&sw.loggingEnabled, 0)
}

// LoggingEnabled reports whether start/stop notifications are currently emitted.
func (sw *StopWatch) LoggingEnabled() bool {
	return atomic.LoadUint32(&sw.loggingEnabled) == 1
}

// SetSink atomically replaces the notification sink.  A nil sink is ignored,
// leaving the previous sink in place, so a StopWatch is never without a sink.
func (sw *StopWatch) SetSink(sink Sink) {
	if sink != nil {
		sw.sink.Store(sinkHolder{sink: sink})
	}
}

func (sw *StopWatch) loadSink() Sink {
	return sw.sink.Load().(sinkHolder).sink
}
