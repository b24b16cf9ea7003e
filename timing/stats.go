package timing

import (
	"sync"
	"sync/atomic"
)

// stats is the process-wide accumulation of elapsed times keyed by operation name.
// Buckets are created at zero on first use and only ever increase.
type stats struct {
	buckets sync.Map // string -> *int64
}

// add atomically folds elapsed milliseconds into the bucket for name, creating
// the bucket if absent.  Concurrent adds for the same name never lose updates.
func (s *stats) add(name string, elapsed int64) {
	bucket, ok := s.buckets.Load(name)
	if !ok {
		bucket, _ = s.buckets.LoadOrStore(name, new(int64))
	}

	atomic.AddInt64(bucket.(*int64), elapsed)
}

// snapshot returns a point-in-time copy of all buckets.  The copy is not atomic
// across names, but each value is a consistent read of its bucket.
func (s *stats) snapshot() map[string]int64 {
	out := make(map[string]int64)
	s.buckets.Range(func(key, value interface{}) bool {
		out[key.(string)] = atomic.LoadInt64(value.(*int64))
		return true
	})

	return out
}
