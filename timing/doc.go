/*
Package timing provides a goroutine-aware hierarchical stopwatch.  The key type in this
package is StopWatch, which tracks named operations as a per-goroutine stack and
accumulates total elapsed time per operation name across the whole process.

Operations nest: starting an operation while another is active on the same goroutine
makes the new operation a child of the active one.  Each goroutine's stack is isolated,
while the accumulated totals and the notification configuration are shared.
*/
package timing
