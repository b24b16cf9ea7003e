package timing

import "time"

// timingContext maintains the stack of active spans for a single goroutine.  The
// root node is a sentinel: it has no name, is never started or stopped, and never
// contributes to statistics.  The stack is modeled as a chain of parent links, so
// the current node is always reachable from the root.
type timingContext struct {
	root        *timingNode
	current     *timingNode
	lastStopped string

	now   func() time.Time
	since func(time.Time) time.Duration
}

func newTimingContext(now func() time.Time, since func(time.Time) time.Duration) *timingContext {
	root := newTimingNode("", nil, time.Time{})
	return &timingContext{
		root:    root,
		current: root,
		now:     now,
		since:   since,
	}
}

// push starts a new span as a child of the current one and makes it current.
func (tc *timingContext) push(name string) {
	node := newTimingNode(name, tc.current, tc.now())
	tc.current.addChild(node)
	tc.current = node
}

// pop stops the current span and makes its parent current.  Popping an empty
// stack is a no-op that clears the last stopped name and returns zero elapsed
// time.
func (tc *timingContext) pop() (string, int64) {
	if tc.current == tc.root {
		tc.lastStopped = ""
		return "", 0
	}

	tc.lastStopped = tc.current.name
	elapsed := tc.current.stop(tc.now())
	tc.current = tc.current.parent

	return tc.lastStopped, elapsed
}

// elapsed returns the elapsed time of the current span without stopping it,
// or 0 if the stack is empty.
func (tc *timingContext) elapsed() int64 {
	if tc.current == tc.root {
		return 0
	}

	return tc.current.elapsed(tc.since)
}

// depth returns the number of started-but-not-stopped spans.
func (tc *timingContext) depth() (d int) {
	for node := tc.current; node != tc.root; node = node.parent {
		d++
	}

	return
}
