package timinghttp

import (
	"encoding/json"
	"net/http"

	"github.com/xmidt-org/stopwatch/timing"
)

// Source supplies point-in-time copies of accumulated operation timings in
// milliseconds.  *timing.StopWatch satisfies this interface.
type Source interface {
	Stats() map[string]int64
}

// Timed creates an Alice-style constructor that brackets each request handled by
// the decorated handler in a start/stop cycle under the given operation name.
// Elapsed times accumulate in the StopWatch's shared statistics like any other
// operation, and nest under any operation already active on the serving goroutine.
//
// A blank name leaves the decorated handler untimed.
func Timed(sw *timing.StopWatch, name string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(response http.ResponseWriter, request *http.Request) {
			if sw.Start(name) != nil {
				next.ServeHTTP(response, request)
				return
			}

			defer sw.Stop()
			next.ServeHTTP(response, request)
		})
	}
}

// StatsHandler is an http.Handler that renders a Source's statistics as a JSON
// object mapping operation names to accumulated milliseconds.
type StatsHandler struct {
	Source Source
}

func (sh StatsHandler) ServeHTTP(response http.ResponseWriter, request *http.Request) {
	jsonmsg, err := json.Marshal(sh.Source.Stats())
	response.Header().Set("Content-Type", "application/json")

	if err != nil {
		response.WriteHeader(http.StatusInternalServerError)
		return
	}

	response.Write(jsonmsg)
}
