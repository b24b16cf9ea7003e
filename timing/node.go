package timing

import "time"

// timingNode is a single span in the timing hierarchy.  A node is owned exclusively
// by one goroutine's context while it is on the stack.  Once popped, its elapsed
// time has already been folded into the shared statistics and the node can be
// discarded.
type timingNode struct {
	name     string
	parent   *timingNode
	children map[string]*timingNode
	start    time.Time
	end      time.Time
}

func newTimingNode(name string, parent *timingNode, start time.Time) *timingNode {
	return &timingNode{
		name:     name,
		parent:   parent,
		children: make(map[string]*timingNode),
		start:    start,
	}
}

// addChild registers a child under its name.  A second child with the same name
// replaces the first in this map.  The active stack is unaffected: the children
// map exists only for hierarchy introspection.
func (n *timingNode) addChild(child *timingNode) {
	n.children[child.name] = child
}

// stop sets the end time exactly once and returns the elapsed milliseconds.
// Subsequent calls leave the original end time intact.
func (n *timingNode) stop(end time.Time) int64 {
	if n.end.IsZero() {
		n.end = end
	}

	return n.end.Sub(n.start).Milliseconds()
}

// elapsed returns the elapsed milliseconds of this span.  A running span is
// measured against the supplied since function.
func (n *timingNode) elapsed(since func(time.Time) time.Duration) int64 {
	if n.end.IsZero() {
		return since(n.start).Milliseconds()
	}

	return n.end.Sub(n.start).Milliseconds()
}
