package timingmetrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	DefaultNamespace = "stopwatch"
	DefaultSubsystem = "timing"
	DefaultName      = "operation_seconds_total"
	DefaultHelp      = "accumulated elapsed time of stopwatch operations"

	// OperationLabel is the label under which each operation name is reported.
	OperationLabel = "operation"
)

// Source supplies point-in-time copies of accumulated operation timings in
// milliseconds.  *timing.StopWatch satisfies this interface.
type Source interface {
	Stats() map[string]int64
}

// Options is the configurable options for the collector.  This type loosely
// corresponds with Prometheus' Opts struct.
type Options struct {
	// Namespace is the metric namespace.  If not supplied, DefaultNamespace is used.
	Namespace string `json:"namespace"`

	// Subsystem is the metric subsystem.  If not supplied, DefaultSubsystem is used.
	Subsystem string `json:"subsystem"`

	// Name is the metric name.  If not supplied, DefaultName is used.
	Name string `json:"name"`

	// Help is the metric help string.  If not supplied, DefaultHelp is used.
	Help string `json:"help"`
}

func (o *Options) namespace() string {
	if o != nil && len(o.Namespace) > 0 {
		return o.Namespace
	}

	return DefaultNamespace
}

func (o *Options) subsystem() string {
	if o != nil && len(o.Subsystem) > 0 {
		return o.Subsystem
	}

	return DefaultSubsystem
}

func (o *Options) name() string {
	if o != nil && len(o.Name) > 0 {
		return o.Name
	}

	return DefaultName
}

func (o *Options) help() string {
	if o != nil && len(o.Help) > 0 {
		return o.Help
	}

	return DefaultHelp
}

// collector bridges a Source into a Prometheus registry.  Each operation name
// appears as a label on a single counter whose value is the operation's
// accumulated elapsed time, in seconds per Prometheus convention.
type collector struct {
	source Source
	desc   *prometheus.Desc
}

// New constructs a prometheus.Collector exposing the accumulated timings of the
// given source.  The options object can be nil, in which case defaults are applied.
func New(source Source, o *Options) prometheus.Collector {
	return &collector{
		source: source,
		desc: prometheus.NewDesc(
			prometheus.BuildFQName(o.namespace(), o.subsystem(), o.name()),
			o.help(),
			[]string{OperationLabel},
			nil,
		),
	}
}

func (c *collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.desc
}

func (c *collector) Collect(ch chan<- prometheus.Metric) {
	for operation, elapsed := range c.source.Stats() {
		ch <- prometheus.MustNewConstMetric(
			c.desc,
			prometheus.CounterValue,
			float64(elapsed)/1000.0,
			operation,
		)
	}
}
