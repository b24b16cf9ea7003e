package timing_test

import (
	"fmt"
	"time"

	"github.com/xmidt-org/stopwatch/timing"
)

// Example measures a layered service call with a clock that advances a fixed
// amount on each reading, so the output is deterministic.
func Example() {
	var (
		current = time.Date(2009, 11, 10, 23, 0, 0, 0, time.UTC)
		sw      = timing.New(&timing.Options{
			Now: func() time.Time {
				current = current.Add(100 * time.Millisecond)
				return current
			},
		})
	)

	sw.Start("serviceCall")
	sw.Start("persistence")
	fmt.Println(sw.Stop())
	fmt.Println(sw.Stop())
	fmt.Println(sw.Stats()["serviceCall"])

	// Output:
	// 100
	// 300
	// 300
}

func ExampleStopWatch_logging() {
	var (
		current = time.Date(2009, 11, 10, 23, 0, 0, 0, time.UTC)
		sw      = timing.New(&timing.Options{
			Logging: true,
			Sink: timing.SinkFunc(func(operation, message string) {
				fmt.Printf("%s: %s\n", operation, message)
			}),
			Now: func() time.Time {
				current = current.Add(100 * time.Millisecond)
				return current
			},
		})
	)

	sw.Start("op1")
	sw.Stop()

	// Output:
	// op1: Started
	// op1: Finished - elapsed time: 100ms
}
